//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bootstrapAdmin(t *testing.T, services *TestServices) *auth.User {
	t.Helper()
	admin, err := services.AuthService.Register(context.Background(), nil, &auth.RegisterInput{
		Email: "Admin@MariaFaz.pt", Name: "Maria", Password: "segredo-forte", Role: auth.RoleViewer,
	})
	require.NoError(t, err)
	return admin
}

func TestAuthService_RegisterBootstrap(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()

	admin := bootstrapAdmin(t, services)
	assert.Equal(t, auth.RoleAdmin, admin.Role, "the first user is always admin")
	assert.Equal(t, "admin@mariafaz.pt", admin.Email)

	_, err := services.AuthService.Register(ctx, nil, &auth.RegisterInput{Email: "x@mariafaz.pt", Name: "X", Password: "segredo-forte"})
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	manager := &auth.Claims{UserID: admin.ID, Role: auth.RoleManager}
	_, err = services.AuthService.Register(ctx, manager, &auth.RegisterInput{Email: "x@mariafaz.pt", Name: "X", Password: "segredo-forte"})
	assert.True(t, errors.Is(err, apperrors.ErrForbidden))

	caller := &auth.Claims{UserID: admin.ID, Role: auth.RoleAdmin}
	viewer, err := services.AuthService.Register(ctx, caller, &auth.RegisterInput{Email: "x@mariafaz.pt", Name: "X", Password: "segredo-forte"})
	require.NoError(t, err)
	assert.Equal(t, auth.RoleViewer, viewer.Role)

	_, err = services.AuthService.Register(ctx, caller, &auth.RegisterInput{Email: "X@mariafaz.pt", Name: "X", Password: "segredo-forte"})
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
}

func TestAuthService_LoginAuthenticateLogout(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	admin := bootstrapAdmin(t, services)

	_, _, err := services.AuthService.Login(ctx, "admin@mariafaz.pt", "errada")
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	pair, user, err := services.AuthService.Login(ctx, "ADMIN@mariafaz.pt", "segredo-forte")
	require.NoError(t, err)
	assert.Equal(t, admin.ID, user.ID)

	claims, err := services.AuthService.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.UserID)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	me, err := services.AuthService.Me(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "Maria", me.Name)

	require.NoError(t, services.AuthService.Logout(ctx, claims))
	_, err = services.AuthService.Authenticate(ctx, pair.AccessToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestAuthService_RefreshRotatesSession(t *testing.T) {
	services := SetupTestServices(t)
	ctx := context.Background()
	bootstrapAdmin(t, services)

	pair, _, err := services.AuthService.Login(ctx, "admin@mariafaz.pt", "segredo-forte")
	require.NoError(t, err)

	rotated, err := services.AuthService.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	_, err = services.AuthService.Refresh(ctx, pair.RefreshToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized), "the old session is gone")

	_, err = services.AuthService.Authenticate(ctx, pair.AccessToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))

	_, err = services.AuthService.Authenticate(ctx, rotated.AccessToken)
	assert.NoError(t, err)

	_, err = services.AuthService.Refresh(ctx, rotated.AccessToken)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized), "access tokens cannot refresh")
}
