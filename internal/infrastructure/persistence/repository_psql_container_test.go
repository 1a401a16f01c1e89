//go:build container
// +build container

package persistence

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/properties"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgresContainer starts a throwaway PostgreSQL and returns a migrated TestContext
func setupPostgresContainer(t *testing.T) *TestContext {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "Failed to start postgres container")

	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate postgres container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return SetupTestDBWithSettings(t, config.DatabaseSettings{
		Type: config.PostgresDbType,
		DSN:  fmt.Sprintf("host=%s port=%s user=postgres password=postgres sslmode=disable", host, port.Port()),
		Name: "mariafaz_test",
	})
}

func TestPostgresRepositories_ReservationLifecycle(t *testing.T) {
	ctx := setupPostgresContainer(t)
	bg := context.Background()

	owner := CreateTestOwner(t, "Maria Costa")
	require.NoError(t, ctx.OwnerRepo.Create(bg, owner))

	property := CreateTestProperty(t, owner.ID, "Casa do Mar")
	property.Aliases = []string{"Mar T2"}
	require.NoError(t, ctx.PropertyRepo.Create(bg, property))

	found, err := ctx.PropertyRepo.FindByName(bg, "CASA DO MAR")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, []string{"Mar T2"}, found.Aliases)

	reservation := CreateTestReservation(t, property.ID, Day(2026, time.March, 1), Day(2026, time.March, 4))
	reservation.ApplyCosts(property)
	require.NoError(t, ctx.ReservationRepo.Create(bg, reservation))

	fetched, err := ctx.ReservationRepo.GetByID(bg, reservation.ID)
	require.NoError(t, err)
	assert.True(t, reservation.NetAmount.Equal(fetched.NetAmount))

	overlapping, err := ctx.ReservationRepo.FindOverlapping(bg, property.ID, Day(2026, time.March, 3), Day(2026, time.March, 5), "")
	require.NoError(t, err)
	assert.Len(t, overlapping, 1)

	list, total, err := ctx.ReservationRepo.List(bg, &reservations.ReservationQuery{PropertyID: property.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, list, 1)
}

func TestPostgresRepositories_PropertyListPaging(t *testing.T) {
	ctx := setupPostgresContainer(t)
	bg := context.Background()

	owner := CreateTestOwner(t, "Maria Costa")
	require.NoError(t, ctx.OwnerRepo.Create(bg, owner))
	for _, name := range []string{"A Casa", "B Casa", "C Casa"} {
		require.NoError(t, ctx.PropertyRepo.Create(bg, CreateTestProperty(t, owner.ID, name)))
	}

	query := &properties.PropertyQuery{Name: "casa"}
	query.Limit = 2
	query.Offset = 2

	list, total, err := ctx.PropertyRepo.List(bg, query)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, list, 1)
	assert.Equal(t, "C Casa", list[0].Name)
}

func TestPostgresRepositories_ConcurrentBookingsOfOneStay(t *testing.T) {
	ctx := setupPostgresContainer(t)
	bg := context.Background()

	owner := CreateTestOwner(t, "Maria Costa")
	require.NoError(t, ctx.OwnerRepo.Create(bg, owner))
	property := CreateTestProperty(t, owner.ID, "Casa do Mar")
	require.NoError(t, ctx.PropertyRepo.Create(bg, property))

	const attempts = 5
	var wg sync.WaitGroup
	var saved atomic.Int32
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			reservation := CreateTestReservation(t, property.ID, Day(2026, time.March, 1), Day(2026, time.March, 4))
			overlapping, err := ctx.ReservationRepo.CreateIfAvailable(bg, reservation)
			assert.NoError(t, err)
			if err == nil && len(overlapping) == 0 {
				saved.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), saved.Load())
	_, total, err := ctx.ReservationRepo.List(bg, &reservations.ReservationQuery{PropertyID: property.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
