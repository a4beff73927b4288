package services

import (
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_CreatesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewSettingsService(db)

	settings, err := svc.GetSettings()
	require.NoError(t, err)
	assert.NotZero(t, settings.ID)
	assert.NotEmpty(t, settings.ClubName)

	// Second call returns the same row, not a new one
	again, err := svc.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)

	var count int64
	db.Model(&models.Settings{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	svc := NewSettingsService(setupTestDB(t))

	name := "Cue Club Downtown"
	contact := "+91 98765 43210"
	updated, err := svc.UpdateSettings(models.UpdateSettingsRequest{
		ClubName:      &name,
		ContactNumber: &contact,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cue Club Downtown", updated.ClubName)
	require.NotNil(t, updated.ContactNumber)
	assert.Equal(t, contact, *updated.ContactNumber)
	assert.NotEmpty(t, updated.OpeningHours, "untouched fields keep their defaults")
}
