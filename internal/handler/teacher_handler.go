package handler

import (
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TeacherHandler serves the teacher-only resource. The route middleware
// guarantees the caller holds the teacher role.
type TeacherHandler struct {
	teacherService service.TeacherService
}

func NewTeacherHandler(teacherService service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherService: teacherService}
}

// Get returns the full roster, or one student when student_id is given.
// @Summary List students or get one student's detail
// @Tags teacher
// @Security ApiKeyAuth
// @Produce json
// @Param student_id query string false "Student id for the detail view"
// @Success 200 {object} dto.StudentsResponse "Roster"
// @Failure 403 {object} middleware.ErrorResponse "Not a teacher"
// @Failure 404 {object} middleware.ErrorResponse "Student not found"
// @Router /teacher [get]
func (h *TeacherHandler) Get(c *fiber.Ctx) error {
	if studentID := c.Query("student_id"); studentID != "" {
		resp, err := h.teacherService.GetStudent(c.Context(), studentID)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	}

	resp, err := h.teacherService.ListStudents(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Post dispatches the teacher POST body on its action field.
// @Summary Teacher actions
// @Description Sends a message (send_message), enrolls a student (add_student), updates a material review state (update_material_status) or lists review states (get_material_statuses).
// @Tags teacher
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body dto.TeacherRequest true "Teacher request"
// @Success 200 {object} dto.SuccessResponse
// @Success 201 {object} dto.TeacherMessageResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid request"
// @Failure 403 {object} middleware.ErrorResponse "Not a teacher"
// @Failure 404 {object} middleware.ErrorResponse "Target not found"
// @Router /teacher [post]
func (h *TeacherHandler) Post(c *fiber.Ctx) error {
	teacherID, err := callerID(c)
	if err != nil {
		return err
	}

	var req dto.TeacherRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}

	switch req.Action {
	case "send_message":
		resp, err := h.teacherService.SendMessage(c.Context(), teacherID, &req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	case "add_student":
		resp, err := h.teacherService.AddStudent(c.Context(), teacherID, &req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(resp)
	case "update_material_status":
		resp, err := h.teacherService.UpdateMaterialStatus(c.Context(), teacherID, &req)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	case "get_material_statuses":
		resp, err := h.teacherService.GetMaterialStatuses(c.Context(), teacherID, &req)
		if err != nil {
			return err
		}
		return c.JSON(resp)
	default:
		return domain.NewInvalidInputError("unknown action")
	}
}
