package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/flogin/flogin-api/internal/application/auth"
	"github.com/flogin/flogin-api/internal/application/dto"
)

// AuthHandler handles login requests.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler builds the auth handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.LoginResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}

	// Authenticate never errors: failures come back as a structured result
	// and map to 400 with the same body shape as success.
	out := h.uc.Authenticate(in)
	if !out.Success {
		return c.Status(fiber.StatusBadRequest).JSON(out)
	}
	return c.JSON(out)
}
