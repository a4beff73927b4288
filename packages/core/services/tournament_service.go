package services

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"core/models"

	"gorm.io/gorm"
)

var ErrTournamentNotFound = errors.New("tournament not found")

// phonePattern is deliberately permissive: international prefix plus digits,
// spaces, parentheses and dashes, 7 to 20 characters
var phonePattern = regexp.MustCompile(`^[+]?[0-9\s()-]{7,20}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type TournamentService struct {
	db *gorm.DB
}

func NewTournamentService(db *gorm.DB) *TournamentService {
	return &TournamentService{
		db: db,
	}
}

// ListTournaments returns tournaments ordered by date. status filters on one
// state, the special value "upcoming" keeps upcoming and ongoing together
// the way the public site shows them.
func (s *TournamentService) ListTournaments(status string) ([]models.Tournament, error) {
	query := s.db.Model(&models.Tournament{})

	switch status {
	case "":
		// no filter
	case models.TournamentUpcoming:
		query = query.Where("status IN ?", []string{models.TournamentUpcoming, models.TournamentOngoing})
	default:
		query = query.Where("status = ?", status)
	}

	var tournaments []models.Tournament
	if err := query.Order("date ASC").Find(&tournaments).Error; err != nil {
		return nil, err
	}
	return tournaments, nil
}

func (s *TournamentService) GetTournament(id uint) (*models.Tournament, error) {
	var tournament models.Tournament
	if err := s.db.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return &tournament, nil
}

func (s *TournamentService) CreateTournament(req models.CreateTournamentRequest) (*models.Tournament, error) {
	if _, err := time.Parse(models.BookingDateLayout, req.Date); err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
	}

	status := models.TournamentUpcoming
	if req.Status != nil {
		status = *req.Status
	}

	tournament := &models.Tournament{
		TournamentName:  req.TournamentName,
		Date:            req.Date,
		Description:     req.Description,
		EntryFee:        req.EntryFee,
		PrizePool:       req.PrizePool,
		MaxParticipants: req.MaxParticipants,
		Status:          status,
	}

	if err := s.db.Create(tournament).Error; err != nil {
		return nil, err
	}
	return tournament, nil
}

func (s *TournamentService) UpdateTournament(id uint, req models.UpdateTournamentRequest) (*models.Tournament, error) {
	if _, err := s.GetTournament(id); err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.TournamentName != nil {
		updates["tournament_name"] = *req.TournamentName
	}
	if req.Date != nil {
		if _, err := time.Parse(models.BookingDateLayout, *req.Date); err != nil {
			return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD")
		}
		updates["date"] = *req.Date
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.EntryFee != nil {
		updates["entry_fee"] = *req.EntryFee
	}
	if req.PrizePool != nil {
		updates["prize_pool"] = *req.PrizePool
	}
	if req.MaxParticipants != nil {
		updates["max_participants"] = *req.MaxParticipants
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(&models.Tournament{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	return s.GetTournament(id)
}

func (s *TournamentService) DeleteTournament(id uint) error {
	result := s.db.Delete(&models.Tournament{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTournamentNotFound
	}
	return nil
}

// RegisterPlayer validates and stores a public tournament registration.
// max_participants is a displayed soft cap; registrations are not rejected
// on count, staff close registration by flipping the tournament status.
func (s *TournamentService) RegisterPlayer(tournamentID uint, req models.RegisterPlayerRequest) (*models.TournamentRegistration, error) {
	tournament, err := s.GetTournament(tournamentID)
	if err != nil {
		return nil, err
	}

	if tournament.Status != models.TournamentUpcoming && tournament.Status != models.TournamentOngoing {
		return nil, errors.New("tournament is not open for registration")
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		return nil, errors.New("player name is required")
	}
	if len(name) > 100 {
		return nil, errors.New("player name must be less than 100 characters")
	}
	if !phonePattern.MatchString(strings.TrimSpace(req.PhoneNumber)) {
		return nil, errors.New("please enter a valid phone number")
	}

	var email *string
	if req.Email != nil && strings.TrimSpace(*req.Email) != "" {
		trimmed := strings.TrimSpace(*req.Email)
		if !emailPattern.MatchString(trimmed) {
			return nil, errors.New("please enter a valid email address")
		}
		email = &trimmed
	}

	registration := &models.TournamentRegistration{
		TournamentID: tournamentID,
		PlayerName:   name,
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Email:        email,
	}

	if err := s.db.Create(registration).Error; err != nil {
		return nil, err
	}
	return registration, nil
}

// ListRegistrations returns all registrations of a tournament, newest first
func (s *TournamentService) ListRegistrations(tournamentID uint) (*models.RegistrationListResponse, error) {
	if _, err := s.GetTournament(tournamentID); err != nil {
		return nil, err
	}

	var registrations []models.TournamentRegistration
	if err := s.db.Where("tournament_id = ?", tournamentID).
		Order("created_at DESC").
		Find(&registrations).Error; err != nil {
		return nil, err
	}

	return &models.RegistrationListResponse{
		Data:  registrations,
		Total: int64(len(registrations)),
	}, nil
}

func (s *TournamentService) DeleteRegistration(tournamentID, registrationID uint) error {
	result := s.db.Where("tournament_id = ?", tournamentID).
		Delete(&models.TournamentRegistration{}, registrationID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("registration not found")
	}
	return nil
}
