package handler

import (
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// MaterialHandler serves the materials resource. Listing is open to both
// roles; mutations are teacher-only and gated by the route middleware.
type MaterialHandler struct {
	materialService service.MaterialService
}

func NewMaterialHandler(materialService service.MaterialService) *MaterialHandler {
	return &MaterialHandler{materialService: materialService}
}

// List returns the materials visible to the caller.
// @Summary List materials
// @Tags materials
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.MaterialsResponse
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}
	role, err := callerRole(c)
	if err != nil {
		return err
	}

	resp, err := h.materialService.List(c.Context(), userID, role)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Post dispatches the materials POST body on its action field.
// @Summary Create an inline material or upload a file one
// @Tags materials
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.MaterialRequest true "Material request"
// @Success 201 {object} dto.CreateMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 403 {object} middleware.ErrorResponse "Not a teacher"
// @Router /materials [post]
func (h *MaterialHandler) Post(c *fiber.Ctx) error {
	teacherID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.MaterialRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var resp *dto.CreateMaterialResponse
	switch req.Action {
	case "create":
		resp, err = h.materialService.Create(c.Context(), teacherID, &req)
	case "upload":
		resp, err = h.materialService.Upload(c.Context(), teacherID, &req)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Delete removes one of the caller's materials. A miss still reports
// success.
// @Summary Delete a material
// @Tags materials
// @Security ApiKeyAuth
// @Produce json
// @Param material_id query string true "Material id"
// @Success 200 {object} dto.DeleteMaterialResponse
// @Failure 400 {object} middleware.ErrorResponse "Missing material_id"
// @Failure 403 {object} middleware.ErrorResponse "Not a teacher"
// @Router /materials [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	teacherID, err := callerID(c)
	if err != nil {
		return err
	}

	materialID := c.Query("material_id")
	if materialID == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("material_id")}
	}

	resp, err := h.materialService.Delete(c.Context(), teacherID, materialID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
