package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/project-management-api/internal/dto"
	apierrors "github.com/yukikurage/project-management-api/internal/errors"
	"github.com/yukikurage/project-management-api/internal/middleware"
	"github.com/yukikurage/project-management-api/internal/services"
	"go.uber.org/zap"
)

const passwordPolicyMessage = "Password must be at least 8 characters long and include at least one uppercase, one lowercase, one digit and one special character."

// TokenRevoker invalidates an access token before it expires.
type TokenRevoker interface {
	Revoke(ctx context.Context, header string) error
}

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
	revoker     TokenRevoker
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, revoker TokenRevoker, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{
		authService: authService,
		revoker:     revoker,
		logger:      logger,
	}
}

// Signup registers a new user.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), services.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

// Signin authenticates a user and returns an access token.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	signed, err := h.authService.Signin(c.Request.Context(), services.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{Token: signed})
}

// Signout revokes the token the request was authenticated with.
func (h *AuthHandler) Signout(c *gin.Context) {
	if err := h.revoker.Revoke(c.Request.Context(), middleware.GetToken(c)); err != nil {
		h.logger.Error("failed to revoke token", zap.Error(err))
		apierrors.ServiceUnavailable(c, "Failed to sign out")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signed out successfully",
	})
}

// GetCurrentUser returns the authenticated user.
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "No token provided.")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.respondAuthError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}

func (h *AuthHandler) respondAuthError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingSignupFields):
		apierrors.BadRequest(c, "All fields are required.")
	case errors.Is(err, services.ErrInvalidEmail):
		apierrors.BadRequest(c, "Invalid email format.")
	case errors.Is(err, services.ErrWeakPassword):
		apierrors.BadRequest(c, passwordPolicyMessage)
	case errors.Is(err, services.ErrEmailTaken):
		apierrors.BadRequest(c, "Email already exists.")
	case errors.Is(err, services.ErrInvalidCredentials):
		apierrors.InvalidCredentials(c, "Invalid email or password.")
	case errors.Is(err, services.ErrUserNotFound):
		apierrors.NotFound(c, "User not found.")
	default:
		h.logger.Error("auth request failed", zap.Error(err))
		apierrors.InternalError(c, "Internal server error")
	}
}
