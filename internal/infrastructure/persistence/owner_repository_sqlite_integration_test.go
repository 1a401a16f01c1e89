//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/owners"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerSqliteRepository_CreateAndGetByID(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestOwner(t, "Maria Costa")
	require.NoError(t, ctx.OwnerRepo.Create(context.Background(), owner))

	fetched, err := ctx.OwnerRepo.GetByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.Name, fetched.Name)
	assert.Equal(t, owner.TaxID, fetched.TaxID)
}

func TestOwnerSqliteRepository_CreateRejectsInvalidNIF(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestOwner(t, "Maria Costa")
	owner.TaxID = "123456780"

	err := ctx.OwnerRepo.Create(context.Background(), owner)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestOwnerSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t)

	_, err := ctx.OwnerRepo.GetByID(context.Background(), "6f1c2a5e-8f7b-4c3d-9a1e-2b3c4d5e6f70")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOwnerSqliteRepository_ListFiltersAndPages(t *testing.T) {
	ctx := SetupTestDB(t)

	for _, name := range []string{"Ana Sousa", "Bruno Sousa", "Carla Mendes"} {
		require.NoError(t, ctx.OwnerRepo.Create(context.Background(), CreateTestOwner(t, name)))
	}

	query := &owners.OwnerQuery{Name: "sousa", Query: paging.Query{Limit: 1, SortBy: "name", SortOrder: paging.SortDesc}}
	list, total, err := ctx.OwnerRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, list, 1)
	assert.Equal(t, "Bruno Sousa", list[0].Name)
}

func TestOwnerSqliteRepository_ListRejectsUnknownSortColumn(t *testing.T) {
	ctx := SetupTestDB(t)

	query := &owners.OwnerQuery{Query: paging.Query{SortBy: "password"}}
	_, _, err := ctx.OwnerRepo.List(context.Background(), query)
	require.Error(t, err)
}

func TestOwnerSqliteRepository_UpdateAndDelete(t *testing.T) {
	ctx := SetupTestDB(t)

	owner := CreateTestOwner(t, "Maria Costa")
	require.NoError(t, ctx.OwnerRepo.Create(context.Background(), owner))

	owner.Company = "Costa Lda"
	require.NoError(t, ctx.OwnerRepo.UpdateByID(context.Background(), owner))

	fetched, err := ctx.OwnerRepo.GetByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "Costa Lda", fetched.Company)

	require.NoError(t, ctx.OwnerRepo.DeleteByID(context.Background(), owner.ID))
	err = ctx.OwnerRepo.DeleteByID(context.Background(), owner.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestOwnerSqliteRepository_DeleteDemo(t *testing.T) {
	ctx := SetupTestDB(t)

	demo := CreateTestOwner(t, "Demo Owner")
	demo.IsDemo = true
	kept := CreateTestOwner(t, "Real Owner")
	require.NoError(t, ctx.OwnerRepo.Create(context.Background(), demo))
	require.NoError(t, ctx.OwnerRepo.Create(context.Background(), kept))

	deleted, err := ctx.OwnerRepo.DeleteDemo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = ctx.OwnerRepo.GetByID(context.Background(), kept.ID)
	require.NoError(t, err)
}
