//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleaningTeamSqliteRepository_CRUD(t *testing.T) {
	ctx := SetupTestDB(t)

	team := CreateTestTeam(t, "Equipa Norte")
	require.NoError(t, ctx.TeamRepo.Create(context.Background(), team))

	found, err := ctx.TeamRepo.FindByName(context.Background(), "equipa norte")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, team.ID, found.ID)

	team.Status = cleaning.TeamStatusInactive
	require.NoError(t, ctx.TeamRepo.UpdateByID(context.Background(), team))

	list, total, err := ctx.TeamRepo.List(context.Background(), &cleaning.TeamQuery{Status: cleaning.TeamStatusInactive})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, team.ID, list[0].ID)

	require.NoError(t, ctx.TeamRepo.DeleteByID(context.Background(), team.ID))
	missing, err := ctx.TeamRepo.FindByName(context.Background(), "Equipa Norte")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCleaningScheduleSqliteRepository_FindByReservationAndDeleteDemo(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestOwner(t, "Demo Owner")
	owner.IsDemo = true
	require.NoError(t, ctx.OwnerRepo.Create(context.Background(), owner))
	property := CreateTestProperty(t, owner.ID, "Casa Demo")
	property.IsDemo = true
	require.NoError(t, ctx.PropertyRepo.Create(context.Background(), property))
	team := CreateTestTeam(t, "Equipa Demo")
	require.NoError(t, ctx.TeamRepo.Create(context.Background(), team))

	stay := CreateTestReservation(t, property.ID, Day(2026, time.March, 1), Day(2026, time.March, 4))
	stay.Source = reservations.SourceDemo
	require.NoError(t, ctx.ReservationRepo.Create(context.Background(), stay))
	reservationID := stay.ID
	schedule := &cleaning.Schedule{
		ID:              uuid.NewString(),
		TeamID:          team.ID,
		PropertyID:      property.ID,
		ReservationID:   &reservationID,
		ScheduledDate:   Day(2026, time.March, 4),
		Status:          cleaning.ScheduleStatusScheduled,
		DateTimeCreated: time.Now().UTC(),
	}
	require.NoError(t, ctx.ScheduleRepo.Create(context.Background(), schedule))

	found, err := ctx.ScheduleRepo.FindByReservation(context.Background(), reservationID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, schedule.ID, found.ID)

	list, total, err := ctx.ScheduleRepo.List(context.Background(), &cleaning.ScheduleQuery{
		From: Day(2026, time.March, 1),
		To:   Day(2026, time.March, 31),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)

	schedule.Status = cleaning.ScheduleStatusCancelled
	require.NoError(t, ctx.ScheduleRepo.UpdateByID(context.Background(), schedule))
	found, err = ctx.ScheduleRepo.FindByReservation(context.Background(), reservationID)
	require.NoError(t, err)
	assert.Nil(t, found)

	deleted, err := ctx.ScheduleRepo.DeleteDemo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestCleaningScheduleSqliteRepository_DeleteDemoKeepsOperatorSchedules(t *testing.T) {
	ctx := SetupTestDB(t)
	bg := context.Background()

	owner := CreateTestOwner(t, "Demo Owner")
	owner.IsDemo = true
	require.NoError(t, ctx.OwnerRepo.Create(bg, owner))
	property := CreateTestProperty(t, owner.ID, "Casa Demo")
	property.IsDemo = true
	require.NoError(t, ctx.PropertyRepo.Create(bg, property))
	team := CreateTestTeam(t, "Equipa Demo")
	team.IsDemo = true
	require.NoError(t, ctx.TeamRepo.Create(bg, team))

	manual := CreateTestReservation(t, property.ID, Day(2026, time.May, 1), Day(2026, time.May, 3))
	require.NoError(t, ctx.ReservationRepo.Create(bg, manual))
	schedule := &cleaning.Schedule{
		ID:              uuid.NewString(),
		TeamID:          team.ID,
		PropertyID:      property.ID,
		ReservationID:   &manual.ID,
		ScheduledDate:   Day(2026, time.May, 3),
		Status:          cleaning.ScheduleStatusScheduled,
		DateTimeCreated: time.Now().UTC(),
	}
	require.NoError(t, ctx.ScheduleRepo.Create(bg, schedule))

	deleted, err := ctx.ScheduleRepo.DeleteDemo(bg)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = ctx.TeamRepo.DeleteDemo(bg)
	require.NoError(t, err)
	assert.Zero(t, deleted, "the team still has a schedule")

	deleted, err = ctx.PropertyRepo.DeleteDemo(bg)
	require.NoError(t, err)
	assert.Zero(t, deleted, "the property still has a reservation")

	deleted, err = ctx.OwnerRepo.DeleteDemo(bg)
	require.NoError(t, err)
	assert.Zero(t, deleted, "the owner still has a property")
}
