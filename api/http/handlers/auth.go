package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/kaustubh-git5/my-mvp-startup-backend/api/http/presenter"
	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/auth"
	securityjwt "github.com/kaustubh-git5/my-mvp-startup-backend/pkg/security/jwt"
)

type AuthHandler struct {
	useCase auth.AuthUseCase
}

func NewAuthHandler(useCase auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{useCase: useCase}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func newUserResponse(user auth.User) userResponse {
	return userResponse{
		ID:       user.ID.String(),
		Username: user.Username,
		Email:    user.Email,
	}
}

// Register handles user registration.
// @Summary Register user
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body registerRequest true "registration payload"
// @Success 200 {object} userResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	user, err := h.useCase.Register(c.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusBadRequest, "username or email already exists")
		case errors.Is(err, auth.ErrValidation):
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register user")
		}
	}

	return presenter.JSON(c, http.StatusOK, newUserResponse(user))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles user login.
// @Summary Login
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   input body loginRequest true "login payload"
// @Success 200 {object} loginResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.useCase.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			// One generic message whether the username exists or not.
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}

	return presenter.JSON(c, http.StatusOK, loginResponse{
		AccessToken: result.AccessToken,
		TokenType:   result.TokenType,
	})
}

// Me returns the authenticated caller's profile.
// @Summary Current user
// @Tags    auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Security BearerAuth
// @Router  /me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := securityjwt.UserFromContext(c)
	if !ok {
		return presenter.Error(c, http.StatusUnauthorized, "Invalid token")
	}
	return presenter.JSON(c, http.StatusOK, newUserResponse(user))
}
