//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/infrastructure/persistence"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyService_Create_References(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	_, err := services.PropertyService.Create(ctx, persistence.CreateTestProperty(t, uuid.NewString(), "Sem Dono"))
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	owner, _ := createOwnerAndProperty(t, services, "Casa do Mar")

	property := persistence.CreateTestProperty(t, owner.ID, "Outra Casa")
	missingTeam := uuid.NewString()
	property.CleaningTeamID = &missingTeam
	_, err = services.PropertyService.Create(ctx, property)
	assert.True(t, errors.Is(err, apperrors.ErrValidation))

	_, err = services.PropertyService.Create(ctx, persistence.CreateTestProperty(t, owner.ID, "CASA DO MAR"))
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestPropertyService_Update_KeepsOwnName(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	_, property := createOwnerAndProperty(t, services, "Casa do Mar")

	property.Aliases = []string{"Mar House"}
	updated, err := services.PropertyService.Update(ctx, property)
	require.NoError(t, err)
	assert.Equal(t, []string{"Mar House"}, updated.Aliases)
}

func TestPropertyService_DeleteByID_BlockedByUpcomingReservation(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	pinClock(t, persistence.Day(2026, time.March, 1))

	_, property := createOwnerAndProperty(t, services, "Casa do Mar")
	reservation, err := services.ReservationService.Create(ctx,
		persistence.CreateTestReservation(t, property.ID, persistence.Day(2026, time.March, 10), persistence.Day(2026, time.March, 12)))
	require.NoError(t, err)

	err = services.PropertyService.DeleteByID(ctx, property.ID)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))

	_, err = services.ReservationService.UpdateStatus(ctx, reservation.ID, "cancelled")
	require.NoError(t, err)
	assert.NoError(t, services.PropertyService.DeleteByID(ctx, property.ID))
}
