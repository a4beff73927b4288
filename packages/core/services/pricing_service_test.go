package services

import (
	"testing"

	"core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingLifecycle(t *testing.T) {
	svc := NewPricingService(setupTestDB(t))

	duration := "per hour"
	plan, err := svc.Create(models.CreatePricingRequest{
		Title:    "Casual Play",
		Price:    200,
		Duration: &duration,
		Features: models.StringList{"Any open table", "Cue included"},
	})
	require.NoError(t, err)
	assert.True(t, plan.Active, "plans default to active")

	inactive := false
	order := 3
	_, err = svc.Create(models.CreatePricingRequest{
		Title:     "Retired Plan",
		Price:     100,
		Active:    &inactive,
		SortOrder: &order,
	})
	require.NoError(t, err)

	public, err := svc.ListActive()
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	newPrice := 250.0
	updated, err := svc.Update(plan.ID, models.UpdatePricingRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, 250.0, updated.Price)
	assert.Equal(t, models.StringList{"Any open table", "Cue included"}, updated.Features)

	require.NoError(t, svc.Delete(plan.ID))
	assert.ErrorIs(t, svc.Delete(plan.ID), ErrPricingNotFound)

	_, err = svc.Update(999, models.UpdatePricingRequest{Price: &newPrice})
	assert.ErrorIs(t, err, ErrPricingNotFound)
}
