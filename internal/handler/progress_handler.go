package handler

import (
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ProgressHandler serves the progress resource: the caller's learning
// log writes, their enrolled-teacher roster and their profile.
type ProgressHandler struct {
	progressService service.ProgressService
	authService     service.AuthService
}

func NewProgressHandler(progressService service.ProgressService, authService service.AuthService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
		authService:     authService,
	}
}

// Get returns the caller's teachers (action=get_teachers) or, without an
// action, their profile joined with all progress logs.
// @Summary List the caller's teachers or get their progress profile
// @Tags progress
// @Security ApiKeyAuth
// @Produce json
// @Param action query string false "get_teachers, or omit for the profile"
// @Success 200 {object} dto.TeachersResponse
// @Failure 400 {object} middleware.ErrorResponse "Unknown action"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /progress [get]
func (h *ProgressHandler) Get(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	switch c.Query("action") {
	case "get_teachers":
		resp, err := h.progressService.GetTeachers(c.Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	case "":
		resp, err := h.authService.GetProfile(c.Context(), userID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
}

// Post dispatches the progress POST body on its action field.
// @Summary Record a test result, completed topic or viewed lecture
// @Tags progress
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.ProgressRequest true "Progress request"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 401 {object} middleware.ErrorResponse "Unauthorized"
// @Router /progress [post]
func (h *ProgressHandler) Post(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.ProgressRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	var resp *dto.SuccessResponse
	switch req.Action {
	case "save_test_result":
		resp, err = h.progressService.SaveTestResult(c.Context(), userID, &req)
	case "save_completed_topic":
		resp, err = h.progressService.SaveCompletedTopic(c.Context(), userID, &req)
	case "mark_lecture_viewed":
		resp, err = h.progressService.MarkLectureViewed(c.Context(), userID, &req)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
