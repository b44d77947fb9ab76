package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aimeevoice/aimee-web-app/internal/auth"
	"github.com/aimeevoice/aimee-web-app/internal/dto"
	"github.com/aimeevoice/aimee-web-app/internal/middleware"
)

// loginThrottle — пауза после неудачной попытки логина с одного клиента.
const loginThrottle = 3 * time.Second

// RateLimitStore — опциональный троттлинг логина. Реализуется Redis-клиентом
// (internal/cache); nil отключает лимит.
type RateLimitStore interface {
	SetRateLimit(ctx context.Context, key string, ttl time.Duration) error
	CheckRateLimit(ctx context.Context, key string) (bool, error)
}

type AuthHandler struct {
	svc *auth.Service
	rl  RateLimitStore
	log *zap.Logger
}

func NewAuthHandler(svc *auth.Service, rl RateLimitStore, log *zap.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, rl: rl, log: log}
}

// Login godoc
// @Summary Staff login
// @Description Issues an access token for a staff user
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request"
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Bad credentials"
// @Failure 429 {object} dto.RateLimitedErrorResponse "Too many attempts"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	key := "login:" + c.ClientIP()
	if h.rl != nil {
		limited, err := h.rl.CheckRateLimit(c.Request.Context(), key)
		if err != nil {
			h.log.Warn("rate limit check failed", zap.Error(err))
		} else if limited {
			c.JSON(http.StatusTooManyRequests, dto.NewRateLimitedError("too many login attempts, slow down"))
			return
		}
	}

	token, exp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			if h.rl != nil {
				if rlErr := h.rl.SetRateLimit(c.Request.Context(), key, loginThrottle); rlErr != nil {
					h.log.Warn("rate limit set failed", zap.Error(rlErr))
				}
			}
			h.log.Warn("login rejected", zap.String("email", req.Email))
			c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("invalid email or password"))
			return
		}
		h.log.Error("login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{AccessToken: token, ExpiresAt: exp})
}

// Logout godoc
// @Summary Logout
// @Description Revokes the presented access token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} dto.UnauthorizedErrorResponse "Not authenticated"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	v, ok := c.Get(middleware.CtxClaims)
	claims, _ := v.(*auth.Claims)
	if !ok || claims == nil {
		c.JSON(http.StatusUnauthorized, dto.NewUnauthorizedError("not authenticated"))
		return
	}
	if err := h.svc.Logout(c.Request.Context(), claims); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
