package services

import (
	"testing"
	"time"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTournament(t *testing.T, svc *TournamentService, status string, daysAhead int) *models.Tournament {
	t.Helper()

	tournament, err := svc.CreateTournament(models.CreateTournamentRequest{
		TournamentName: "Monthly Open",
		Date:           time.Now().AddDate(0, 0, daysAhead).Format(models.BookingDateLayout),
		Status:         &status,
	})
	require.NoError(t, err)
	return tournament
}

func TestCreateTournament(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))

	tournament, err := svc.CreateTournament(models.CreateTournamentRequest{
		TournamentName: "Monthly Open",
		Date:           "2026-10-15",
	})
	require.NoError(t, err)

	assert.NotZero(t, tournament.ID)
	assert.Equal(t, models.TournamentUpcoming, tournament.Status)

	_, err = svc.CreateTournament(models.CreateTournamentRequest{
		TournamentName: "Bad Date Cup",
		Date:           "15/10/2026",
	})
	assert.Error(t, err)
}

func TestListTournaments_StatusFilter(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))

	createTournament(t, svc, models.TournamentUpcoming, 10)
	createTournament(t, svc, models.TournamentOngoing, 0)
	createTournament(t, svc, models.TournamentCompleted, -10)

	all, err := svc.ListTournaments("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// "upcoming" keeps ongoing tournaments visible too
	open, err := svc.ListTournaments(models.TournamentUpcoming)
	require.NoError(t, err)
	assert.Len(t, open, 2)

	done, err := svc.ListTournaments(models.TournamentCompleted)
	require.NoError(t, err)
	assert.Len(t, done, 1)
}

func TestRegisterPlayer(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentUpcoming, 10)

	registration, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "  Arjun Mehta  ",
		PhoneNumber: "+91 98765 43210",
	})
	require.NoError(t, err)

	assert.Equal(t, "Arjun Mehta", registration.PlayerName, "name should be trimmed")
	assert.Nil(t, registration.Email)
}

func TestRegisterPlayer_Validation(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentUpcoming, 10)

	_, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "   ",
		PhoneNumber: "+91 98765 43210",
	})
	assert.Error(t, err, "blank name must be rejected")

	_, err = svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "Arjun Mehta",
		PhoneNumber: "call me",
	})
	assert.Error(t, err, "non-numeric phone must be rejected")

	badEmail := "not-an-email"
	_, err = svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "Arjun Mehta",
		PhoneNumber: "+91 98765 43210",
		Email:       &badEmail,
	})
	assert.Error(t, err, "malformed email must be rejected")

	empty := "   "
	registration, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "Sana Shaikh",
		PhoneNumber: "+91 98765 43211",
		Email:       &empty,
	})
	require.NoError(t, err, "blank email should be treated as absent")
	assert.Nil(t, registration.Email)
}

func TestRegisterPlayer_ClosedTournament(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentCompleted, -5)

	_, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "Arjun Mehta",
		PhoneNumber: "+91 98765 43210",
	})
	assert.Error(t, err)

	_, err = svc.RegisterPlayer(999, models.RegisterPlayerRequest{
		PlayerName:  "Arjun Mehta",
		PhoneNumber: "+91 98765 43210",
	})
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestListRegistrations(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentUpcoming, 10)

	for _, name := range []string{"Arjun Mehta", "Ravi Kumar", "Sana Shaikh"} {
		_, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
			PlayerName:  name,
			PhoneNumber: "+91 98765 43210",
		})
		require.NoError(t, err)
	}

	result, err := svc.ListRegistrations(tournament.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.Total)
	assert.Len(t, result.Data, 3)

	_, err = svc.ListRegistrations(999)
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}

func TestDeleteRegistration(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentUpcoming, 10)

	registration, err := svc.RegisterPlayer(tournament.ID, models.RegisterPlayerRequest{
		PlayerName:  "Arjun Mehta",
		PhoneNumber: "+91 98765 43210",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRegistration(tournament.ID, registration.ID))
	assert.Error(t, svc.DeleteRegistration(tournament.ID, registration.ID))
}

func TestUpdateTournament(t *testing.T) {
	svc := NewTournamentService(setupTestDB(t))
	tournament := createTournament(t, svc, models.TournamentUpcoming, 10)

	newStatus := models.TournamentCancelled
	updated, err := svc.UpdateTournament(tournament.ID, models.UpdateTournamentRequest{
		Status: &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TournamentCancelled, updated.Status)

	_, err = svc.UpdateTournament(999, models.UpdateTournamentRequest{Status: &newStatus})
	assert.ErrorIs(t, err, ErrTournamentNotFound)
}
