package auth

import (
	"context"
	"time"
)

// AuthService defines the authentication use cases
type AuthService interface {
	// Login checks credentials and opens a session
	Login(ctx context.Context, email, password string) (*TokenPair, *User, error)
	// Refresh rotates the session behind a refresh token
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout closes the session of the access token claims
	Logout(ctx context.Context, claims *Claims) error
	// Register creates a user. Without caller it only succeeds while no user exists.
	Register(ctx context.Context, caller *Claims, input *RegisterInput) (*User, error)
	// Authenticate validates an access token and its live session
	Authenticate(ctx context.Context, accessToken string) (*Claims, error)
	// Me returns the user behind the claims
	Me(ctx context.Context, claims *Claims) (*User, error)
}

// TokenIssuer signs and parses access and refresh tokens
type TokenIssuer interface {
	IssueAccessToken(user *User, sessionID string) (string, error)
	IssueRefreshToken(user *User, sessionID string) (string, error)
	ParseAccessToken(token string) (*Claims, error)
	// ParseRefreshToken returns the user and session IDs of a refresh token
	ParseRefreshToken(token string) (userID, sessionID string, err error)
	AccessTTL() time.Duration
	RefreshTTL() time.Duration
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// SessionStore keeps live sessions
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	// Get returns the session or nil when it does not exist
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// UserRepository defines the interface for User-related operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID string) (*User, error)
	// FindByEmail returns the user with the case-insensitive email or nil
	FindByEmail(ctx context.Context, email string) (*User, error)
	Count(ctx context.Context) (int64, error)
	UpdateByID(ctx context.Context, user *User) error
}
