package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/service"
)

// HeaderAdminInvite carries the invite code for admin signup.
const HeaderAdminInvite = "X-Admin-Invite"

// AuthHandler exposes signup and signin.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, token, err := h.auth.Signup(c.UserContext(), signupInput(req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAuthResponse(user, token))
}

// AdminSignup handles POST /admin/signup.
func (h *AuthHandler) AdminSignup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, token, err := h.auth.AdminSignup(c.UserContext(), signupInput(req), c.Get(HeaderAdminInvite))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAuthResponse(user, token))
}

// Signin handles POST /signin.
func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req dto.SigninRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	user, token, err := h.auth.Signin(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAuthResponse(user, token))
}

func signupInput(req dto.SignupRequest) service.SignupInput {
	return service.SignupInput{Name: req.Name, Email: req.Email, Password: req.Password}
}
