package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/jobboard-admin/internal/api/dto"
	"github.com/spec-kit/jobboard-admin/internal/service"
)

// SettingsHandler serves platform settings.
type SettingsHandler struct {
	settings *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settingsService}
}

// Get handles GET /settings.
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	settings, err := h.settings.Get(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSettingsResponse(settings))
}

// Update handles PUT /settings.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateSettingsRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}
	settings, err := h.settings.Update(c.UserContext(), service.SettingsPatch{
		PlatformName: req.PlatformName,
		SupportEmail: req.SupportEmail,
		Maintenance:  req.Maintenance,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSettingsResponse(settings))
}
