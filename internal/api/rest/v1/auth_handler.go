package v1

import (
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/auth"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for login, tokens and users
type AuthHandler interface {
	Login(ctx *gin.Context)
	Refresh(ctx *gin.Context)
	Logout(ctx *gin.Context)
	Register(ctx *gin.Context)
	Me(ctx *gin.Context)
}

type authHandler struct {
	authService auth.AuthService
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService auth.AuthService, logger logger.Logger) AuthHandler {
	return &authHandler{authService: authService, logger: logger}
}

// Login handles the POST request exchanging credentials for tokens
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if !bindRequest(ctx, &request) {
		return
	}

	pair, user, err := handler.authService.Login(ctx, request.Email, request.Password)
	if err != nil {
		respondError(ctx, handler.logger, "login", err)
		return
	}
	ctx.JSON(http.StatusOK, newTokenResponse(pair, user))
}

// Refresh handles the POST request rotating a session
// @Summary Refresh tokens
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RefreshRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/refresh [post]
func (handler *authHandler) Refresh(ctx *gin.Context) {
	var request RefreshRequest
	if !bindRequest(ctx, &request) {
		return
	}

	pair, err := handler.authService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		respondError(ctx, handler.logger, "refresh", err)
		return
	}
	ctx.JSON(http.StatusOK, newTokenResponse(pair, nil))
}

// Logout handles the POST request closing the caller's session
// @Summary Log out
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Router /auth/logout [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	if err := handler.authService.Logout(ctx, claimsFrom(ctx)); err != nil {
		respondError(ctx, handler.logger, "logout", err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Register handles the POST request creating a user. Anonymous callers may only
// register the first user.
// @Summary Register a user
// @Tags Auth
// @Accept json
// @Produce json
// @Param requestBody body RegisterRequest true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /auth/register [post]
func (handler *authHandler) Register(ctx *gin.Context) {
	var request RegisterRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	user, err := handler.authService.Register(ctx, claimsFrom(ctx), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "register", err)
		return
	}
	ctx.JSON(http.StatusCreated, newUserResponse(user))
}

// Me handles the GET request returning the caller
// @Summary Current user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} UserResponse
// @Router /auth/me [get]
func (handler *authHandler) Me(ctx *gin.Context) {
	user, err := handler.authService.Me(ctx, claimsFrom(ctx))
	if err != nil {
		respondError(ctx, handler.logger, "get current user", err)
		return
	}
	ctx.JSON(http.StatusOK, newUserResponse(user))
}
