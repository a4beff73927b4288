package handlers

import (
	"core/models"
	"core/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
	db                *gorm.DB
}

func NewTournamentHandler(db *gorm.DB) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: services.NewTournamentService(db),
		db:                db,
	}
}

// GetAllTournaments lists tournaments
// @Summary List tournaments
// @Description List tournaments with optional status filter
// @Tags tournaments
// @Produce json
// @Param status query string false "Filter by status" Enums(upcoming, ongoing, completed, cancelled)
// @Success 200 {array} models.Tournament
// @Failure 500 {object} map[string]string
// @Router /tournaments [get]
func (h *TournamentHandler) GetAllTournaments(c *gin.Context) {
	tournaments, err := h.tournamentService.ListTournaments(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tournaments)
}

// GetTournament gets a tournament by ID
// @Summary Get tournament by ID
// @Description Get one tournament's details
// @Tags tournaments
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id} [get]
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	tournament, err := h.tournamentService.GetTournament(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// CreateTournament creates a new tournament
// @Summary Create tournament
// @Description Create a new tournament (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param tournament body models.CreateTournamentRequest true "Tournament data"
// @Success 201 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/tournaments [post]
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req models.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.CreateTournament(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tournament)
}

// UpdateTournament updates a tournament
// @Summary Update tournament
// @Description Update tournament fields (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param tournament body models.UpdateTournamentRequest true "Tournament update data"
// @Success 200 {object} models.Tournament
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tournaments/{id} [patch]
func (h *TournamentHandler) UpdateTournament(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	var req models.UpdateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tournament, err := h.tournamentService.UpdateTournament(uint(id), req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrTournamentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tournament)
}

// DeleteTournament deletes a tournament
// @Summary Delete tournament
// @Description Delete a tournament and its registrations (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tournaments/{id} [delete]
func (h *TournamentHandler) DeleteTournament(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	if err := h.tournamentService.DeleteTournament(uint(id)); err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tournament deleted successfully"})
}

// RegisterPlayer registers a player for a tournament
// @Summary Register for tournament
// @Description Register a player for an open tournament
// @Tags tournaments
// @Accept json
// @Produce json
// @Param id path int true "Tournament ID"
// @Param registration body models.RegisterPlayerRequest true "Registration data"
// @Success 201 {object} models.TournamentRegistration
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /tournaments/{id}/register [post]
func (h *TournamentHandler) RegisterPlayer(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	var req models.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	registration, err := h.tournamentService.RegisterPlayer(uint(id), req)
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, registration)
}

// GetRegistrations lists a tournament's registrations
// @Summary List registrations
// @Description List all registrations of a tournament (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tournament ID"
// @Success 200 {object} models.RegistrationListResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tournaments/{id}/registrations [get]
func (h *TournamentHandler) GetRegistrations(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	result, err := h.tournamentService.ListRegistrations(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrTournamentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteRegistration removes a registration
// @Summary Delete registration
// @Description Remove a player's registration from a tournament (admin only)
// @Tags tournaments
// @Security BearerAuth
// @Produce json
// @Param id path int true "Tournament ID"
// @Param regId path int true "Registration ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/tournaments/{id}/registrations/{regId} [delete]
func (h *TournamentHandler) DeleteRegistration(c *gin.Context) {
	idParam := c.Param("id")
	tournamentID, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tournament ID"})
		return
	}

	regParam := c.Param("regId")
	registrationID, err := strconv.ParseUint(regParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration ID"})
		return
	}

	if err := h.tournamentService.DeleteRegistration(uint(tournamentID), uint(registrationID)); err != nil {
		if err.Error() == "registration not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration deleted successfully"})
}
