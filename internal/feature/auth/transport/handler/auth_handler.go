// Package handler provides the HTTP handlers of the auth feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"garden_backend/internal/api"
	"garden_backend/internal/feature/auth/domain/entity"
	"garden_backend/internal/feature/auth/transport/http/dto"
	"garden_backend/internal/feature/auth/usecase"
	jwtmw "garden_backend/internal/platform/jwt"
	"garden_backend/internal/shared/apperror"
)

// AuthUsecase defines the account operations the handler needs.
// Interfaces are declared by the consumer (handler), not by the usecase package.
type AuthUsecase interface {
	Register(ctx context.Context, r usecase.Registration) (*entity.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	CurrentUser(ctx context.Context, username string) (*entity.User, error)
}

// AuthHandler serves registration, login and the current user.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Registration handles POST /registration.
//   - binding errors return 422
//   - a taken username returns 400
//   - success returns 201 with the new user
func (h *AuthHandler) Registration(c *gin.Context) {
	var req dto.RegistrationReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("registration validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), req.ToRegistration())
	if err != nil {
		h.fail(c, "registration failed", err, "username", req.Username)
		return
	}
	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegistrationRes{User: dto.NewUserRes(user)})
}

// Login handles POST /login and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBind(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnprocessableEntity, api.ErrorResponse{Error: err.Error()})
		return
	}
	token, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// the reason is only logged so that usernames cannot be enumerated
		h.fail(c, "login failed", err, "username", req.Username)
		return
	}
	slog.Info("user login successful", "username", req.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, api.TokenResponse{Token: token})
}

// Current handles GET /users/current. It must run behind jwtmw.AuthRequired.
func (h *AuthHandler) Current(c *gin.Context) {
	username, ok := jwtmw.Username(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Could not validate credentials"})
		return
	}
	user, err := h.auth.CurrentUser(c.Request.Context(), username)
	if err != nil {
		h.fail(c, "current user failed", err, "username", username)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserRes(user))
}

func (h *AuthHandler) fail(c *gin.Context, msg string, err error, args ...any) {
	status := apperror.HTTPStatus(err)
	args = append(args, "error", err, "remote_addr", c.ClientIP())
	if status >= http.StatusInternalServerError {
		slog.Error(msg, args...)
	} else {
		slog.Warn(msg, args...)
	}
	c.JSON(status, api.ErrorResponse{Error: apperror.Detail(err)})
}
