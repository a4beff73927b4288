package fixtures

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"core/models"

	"gorm.io/gorm"
)

type Fixtures struct {
	db *gorm.DB
}

func NewFixtures(db *gorm.DB) *Fixtures {
	return &Fixtures{db: db}
}

// GenerateTestData seeds pricing plans, tournaments with registrations,
// sample bookings and club settings for local development
func (f *Fixtures) GenerateTestData() error {
	log.Println("Starting fixtures generation...")

	if err := f.generateSettings(); err != nil {
		return fmt.Errorf("failed to generate settings: %w", err)
	}

	if err := f.generatePricing(); err != nil {
		return fmt.Errorf("failed to generate pricing: %w", err)
	}

	tournaments, err := f.generateTournaments()
	if err != nil {
		return fmt.Errorf("failed to generate tournaments: %w", err)
	}

	if err := f.generateRegistrations(tournaments); err != nil {
		return fmt.Errorf("failed to generate registrations: %w", err)
	}

	bookings, err := f.generateBookings()
	if err != nil {
		return fmt.Errorf("failed to generate bookings: %w", err)
	}

	log.Println("Fixtures generated successfully!")
	log.Printf("Created %d tournaments and %d bookings", len(tournaments), len(bookings))
	return nil
}

func (f *Fixtures) generateSettings() error {
	contact := "+91 98765 43210"
	whatsapp := "+91 98765 43210"

	settings := models.Settings{
		ClubName:       "Cue Club",
		Address:        "12 Baker Street, Downtown",
		OpeningHours:   "10:00 AM - 11:00 PM, all week",
		ContactNumber:  &contact,
		WhatsappNumber: &whatsapp,
	}
	return f.db.Create(&settings).Error
}

func (f *Fixtures) generatePricing() error {
	hourly := "per hour"
	daily := "per day"
	monthly := "per month"
	popular := true

	plans := []models.Pricing{
		{
			Title:     "Casual Play",
			Price:     200,
			Duration:  &hourly,
			Features:  models.StringList{"Any open table", "Cue and balls included"},
			SortOrder: 1,
			Active:    true,
		},
		{
			Title:     "Day Pass",
			Price:     900,
			Duration:  &daily,
			Features:  models.StringList{"Unlimited play", "Priority table pick", "One free drink"},
			IsPopular: popular,
			SortOrder: 2,
			Active:    true,
		},
		{
			Title:     "Club Membership",
			Price:     4500,
			Duration:  &monthly,
			Features:  models.StringList{"Unlimited play", "Tournament discounts", "Guest passes"},
			SortOrder: 3,
			Active:    true,
		},
	}

	for i := range plans {
		if err := f.db.Create(&plans[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (f *Fixtures) generateTournaments() ([]models.Tournament, error) {
	now := time.Now()
	fee := 500.0
	prize := "₹25,000 prize pool"
	maxPlayers := 32
	desc := "Open knockout, best of three frames until the semifinals."

	tournaments := []models.Tournament{
		{
			TournamentName:  "Monthly Open",
			Date:            now.AddDate(0, 0, 10).Format(models.BookingDateLayout),
			Description:     &desc,
			EntryFee:        &fee,
			PrizePool:       &prize,
			MaxParticipants: &maxPlayers,
			Status:          models.TournamentUpcoming,
		},
		{
			TournamentName: "Wednesday League",
			Date:           now.Format(models.BookingDateLayout),
			Status:         models.TournamentOngoing,
		},
		{
			TournamentName: "Summer Championship",
			Date:           now.AddDate(0, -1, 0).Format(models.BookingDateLayout),
			Status:         models.TournamentCompleted,
		},
	}

	for i := range tournaments {
		if err := f.db.Create(&tournaments[i]).Error; err != nil {
			return nil, err
		}
	}
	return tournaments, nil
}

func (f *Fixtures) generateRegistrations(tournaments []models.Tournament) error {
	names := []string{"Arjun Mehta", "Ravi Kumar", "Sana Shaikh", "Dev Patel", "Imran Ali"}

	for _, tournament := range tournaments {
		if tournament.Status == models.TournamentCompleted {
			continue
		}

		for i, name := range names {
			registration := models.TournamentRegistration{
				TournamentID: tournament.ID,
				PlayerName:   name,
				PhoneNumber:  fmt.Sprintf("+91 98%03d 5%04d", i, rand.Intn(10000)), // #nosec G404
			}
			if err := f.db.Create(&registration).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func (f *Fixtures) generateBookings() ([]models.Booking, error) {
	names := []string{"Rohan Gupta", "Priya Nair", "Kabir Singh", "Anita Desai"}
	now := time.Now()

	var bookings []models.Booking
	for day := 0; day < 3; day++ {
		date := now.AddDate(0, 0, day).Format(models.BookingDateLayout)

		for i, name := range names {
			booking := models.Booking{
				UserName:    name,
				PhoneNumber: fmt.Sprintf("+91 97%03d 4%04d", i, rand.Intn(10000)), // #nosec G404
				BookingDate: date,
				TimeSlot:    models.TimeSlots[(day*4+i*3)%len(models.TimeSlots)],
				TableNumber: models.Tables[i%len(models.Tables)],
				Status:      models.BookingConfirmed,
			}
			if err := f.db.Create(&booking).Error; err != nil {
				return nil, err
			}
			bookings = append(bookings, booking)
		}
	}
	return bookings, nil
}

// ClearAllData wipes fixture-managed tables, leaving users intact
func (f *Fixtures) ClearAllData() error {
	log.Println("Clearing fixture data...")

	tables := []string{
		"tournament_registrations",
		"tournaments",
		"bookings",
		"blocked_slots",
		"pricing",
		"contact_messages",
		"settings",
	}

	for _, table := range tables {
		if err := f.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	log.Println("Fixture data cleared")
	return nil
}
