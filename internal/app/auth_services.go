package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/google/uuid"
)

// authService implements the AuthService interface
type authService struct {
	userRepository auth.UserRepository
	tokenIssuer    auth.TokenIssuer
	hasher         auth.PasswordHasher
	sessions       auth.SessionStore
	logger         logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(
	userRepository auth.UserRepository,
	tokenIssuer auth.TokenIssuer,
	hasher auth.PasswordHasher,
	sessions auth.SessionStore,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		hasher:         hasher,
		sessions:       sessions,
		logger:         logger,
	}, nil
}

var errInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)

// Login checks the credentials of an active user and opens a session
func (s *authService) Login(ctx context.Context, email, password string) (*auth.TokenPair, *auth.User, error) {
	user, err := s.userRepository.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, nil, fmt.Errorf("%w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, errInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, nil, errInvalidCredentials
	}

	pair, err := s.openSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	s.logger.With("user_id", user.ID).Info("user logged in")
	return pair, user, nil
}

// Refresh replaces the session behind a live refresh token with a new one
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	userID, sessionID, err := s.tokenIssuer.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if session == nil || session.UserID != userID {
		return nil, fmt.Errorf("%w: session has ended", apperrors.ErrUnauthorized)
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	if !user.Active {
		return nil, fmt.Errorf("%w: user is disabled", apperrors.ErrUnauthorized)
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.openSession(ctx, user)
}

// Logout ends the session of the claims
func (s *authService) Logout(ctx context.Context, claims *auth.Claims) error {
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return fmt.Errorf("%w", err)
	}
	s.logger.With("user_id", claims.UserID).Info("user logged out")
	return nil
}

// Register creates a user. The first user registers itself as admin; afterwards only admins may register users.
func (s *authService) Register(ctx context.Context, caller *auth.Claims, input *auth.RegisterInput) (*auth.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	count, err := s.userRepository.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	role := input.Role
	switch {
	case count == 0:
		role = auth.RoleAdmin
	case caller == nil:
		return nil, fmt.Errorf("%w: registration is closed, ask an administrator", apperrors.ErrUnauthorized)
	case !caller.HasRole(auth.RoleAdmin):
		return nil, fmt.Errorf("%w: only administrators can register users", apperrors.ErrForbidden)
	}
	if role == "" {
		role = auth.RoleViewer
	}

	existing, err := s.userRepository.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", apperrors.ErrConflict, input.Email)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	user := &auth.User{
		ID:              uuid.NewString(),
		Email:           input.Email,
		Name:            strings.TrimSpace(input.Name),
		PasswordHash:    hash,
		Role:            role,
		Active:          true,
		DateTimeCreated: clock(),
	}
	user.DateTimeUpdated = user.DateTimeCreated
	if err := s.userRepository.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

// Authenticate accepts an access token only while its session is alive
func (s *authService) Authenticate(ctx context.Context, accessToken string) (*auth.Claims, error) {
	claims, err := s.tokenIssuer.ParseAccessToken(accessToken)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	session, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if session == nil || session.UserID != claims.UserID {
		return nil, fmt.Errorf("%w: session has ended", apperrors.ErrUnauthorized)
	}
	return claims, nil
}

// Me returns the user behind the claims
func (s *authService) Me(ctx context.Context, claims *auth.Claims) (*auth.User, error) {
	user, err := s.userRepository.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return user, nil
}

func (s *authService) openSession(ctx context.Context, user *auth.User) (*auth.TokenPair, error) {
	session := &auth.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: clock().Add(s.tokenIssuer.RefreshTTL()),
	}

	access, err := s.tokenIssuer.IssueAccessToken(user, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	refresh, err := s.tokenIssuer.IssueRefreshToken(user, session.ID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return &auth.TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresIn: s.tokenIssuer.AccessTTL()}, nil
}
