package handler

import (
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler serves the auth resource: registration, login and the
// caller's profile.
type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Post dispatches the auth POST body on its action field.
// @Summary Register or log in
// @Description Registers a new account (action=register) or logs an existing one in (action=login).
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.AuthRequest true "Auth request"
// @Success 200 {object} dto.AuthResponse "Login succeeded"
// @Success 201 {object} dto.AuthResponse "Account created"
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 401 {object} middleware.ErrorResponse "Invalid credentials"
// @Failure 409 {object} middleware.ErrorResponse "Email already registered"
// @Router /auth [post]
func (h *AuthHandler) Post(c *fiber.Ctx) error {
	var req dto.AuthRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	switch req.Action {
	case "register":
		resp, err := h.authService.Register(c.Context(), &req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	case "login":
		resp, err := h.authService.Login(c.Context(), &req)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
}

// GetProfile returns the caller's account joined with their progress logs.
// @Summary Get my profile
// @Tags auth
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Failure 404 {object} middleware.ErrorResponse "User not found"
// @Router /auth [get]
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	resp, err := h.authService.GetProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
