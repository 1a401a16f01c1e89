//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const userID = "0a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func sampleUser(role string) *auth.User {
	return &auth.User{ID: userID, Email: "maria@mariafaz.pt", Name: "Maria", Role: role, Active: true}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, testLogger(t))
	mockAuthService.On("Login", mock.Anything, "maria@mariafaz.pt", "s3gredo-forte").
		Return(&auth.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 15 * time.Minute}, sampleUser(auth.RoleAdmin), nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login", `{"email":"maria@mariafaz.pt","password":"s3gredo-forte"}`))
	handler.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response.TokenType)
	assert.Equal(t, int64(900), response.ExpiresIn)
	require.NotNil(t, response.User)
	assert.Equal(t, auth.RoleAdmin, response.User.Role)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, testLogger(t))
	mockAuthService.On("Login", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, fmt.Errorf("invalid credentials: %w", apperrors.ErrUnauthorized))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/login", `{"email":"maria@mariafaz.pt","password":"wrong"}`))
	handler.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Register_PassesCaller(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, testLogger(t))

	caller := &auth.Claims{UserID: userID, Role: auth.RoleAdmin}
	mockAuthService.On("Register", mock.Anything, caller, mock.MatchedBy(func(in *auth.RegisterInput) bool {
		return in.Email == "joao@mariafaz.pt" && in.Role == auth.RoleViewer
	})).Return(&auth.User{ID: "u2", Email: "joao@mariafaz.pt", Role: auth.RoleViewer}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", `{"email":"joao@mariafaz.pt","name":"João","password":"password1","role":"viewer"}`))
	c.Set(claimsKey, caller)
	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockAuthService.AssertExpectations(t)
}

func TestAuthHandler_Register_AnonymousAfterBootstrap(t *testing.T) {
	mockAuthService := new(MockAuthService)
	handler := NewAuthHandler(mockAuthService, testLogger(t))
	mockAuthService.On("Register", mock.Anything, (*auth.Claims)(nil), mock.Anything).
		Return(nil, fmt.Errorf("registration requires an admin: %w", apperrors.ErrUnauthorized))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/auth/register", `{"email":"x@y.pt","name":"X","password":"password1"}`))
	handler.Register(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_Middleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(m *MockAuthService)
		status int
	}{
		{"missing header", "", func(*MockAuthService) {}, http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", func(*MockAuthService) {}, http.StatusUnauthorized},
		{"expired token", "Bearer old", func(m *MockAuthService) {
			m.On("Authenticate", mock.Anything, "old").Return(nil, apperrors.ErrUnauthorized)
		}, http.StatusUnauthorized},
		{"valid token", "Bearer good", func(m *MockAuthService) {
			m.On("Authenticate", mock.Anything, "good").Return(&auth.Claims{UserID: userID, Role: auth.RoleViewer}, nil)
		}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAuthService := new(MockAuthService)
			tt.setup(mockAuthService)

			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/private", Authenticate(mockAuthService), func(ctx *gin.Context) {
				assert.Equal(t, userID, claimsFrom(ctx).UserID)
				ctx.Status(http.StatusOK)
			})

			req := testutil.NewJSONRequest(t, http.MethodGet, "/private", "")
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRequireRole_Middleware(t *testing.T) {
	tests := []struct {
		name   string
		claims *auth.Claims
		role   string
		status int
	}{
		{"no claims", nil, auth.RoleViewer, http.StatusUnauthorized},
		{"viewer reads", &auth.Claims{Role: auth.RoleViewer}, auth.RoleViewer, http.StatusOK},
		{"viewer writes", &auth.Claims{Role: auth.RoleViewer}, auth.RoleManager, http.StatusForbidden},
		{"manager writes", &auth.Claims{Role: auth.RoleManager}, auth.RoleManager, http.StatusOK},
		{"manager resets demo", &auth.Claims{Role: auth.RoleManager}, auth.RoleAdmin, http.StatusForbidden},
		{"admin resets demo", &auth.Claims{Role: auth.RoleAdmin}, auth.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/", ""))
			if tt.claims != nil {
				c.Set(claimsKey, tt.claims)
			}

			RequireRole(tt.role)(c)
			if !c.IsAborted() {
				c.Status(http.StatusOK)
			}
			c.Writer.WriteHeaderNow()

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
