package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/driving-records/internal/api/dto"
	"github.com/spec-kit/driving-records/internal/service"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /auth/login. The token is returned in the Authorization header.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := parseBody(c, &req, "Invalid credentials"); err != nil {
		return err
	}

	result, err := h.auth.Authenticate(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderAuthorization, result.Token)
	return c.JSON(dto.MessageResponse{Message: dto.MessageLoginSuccess})
}
