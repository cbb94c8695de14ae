package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
	"github.com/rafabene/academia-backend/internal/services"
)

// StudentHandler lida com alunos, seus instrutores e suas entradas
type StudentHandler struct {
	studentService *services.StudentService
}

// NewStudentHandler cria um novo StudentHandler
func NewStudentHandler(studentService *services.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// CreateStudent cria o perfil de aluno
// @Summary Criar aluno
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Dados do aluno"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /students [post]
func (h *StudentHandler) CreateStudent(c *gin.Context) {
	var req dto.CreateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	student, err := h.studentService.CreateStudent(c.Request.Context(), services.CreateStudentInput{
		UserID:    req.UserID,
		PlanType:  entities.PlanType(req.PlanType),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Height:    req.Height,
		Weight:    req.Weight,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentResponse(student))
}

// GetStudent busca um aluno
// @Summary Buscar aluno
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Success 200 {object} dto.StudentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [get]
func (h *StudentHandler) GetStudent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	student, err := h.studentService.GetStudent(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// ListStudents lista alunos
// @Summary Listar alunos
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param payment_status query string false "Situação financeira"
// @Param plan_type query string false "Plano"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ListResponse[dto.StudentResponse]
// @Router /students [get]
func (h *StudentHandler) ListStudents(c *gin.Context) {
	var query dto.StudentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	filters := repositories.StudentFilters{Pagination: query.Pagination()}
	if query.PaymentStatus != "" {
		status := entities.PaymentStatus(query.PaymentStatus)
		filters.PaymentStatus = &status
	}
	if query.PlanType != "" {
		plan := entities.PlanType(query.PlanType)
		filters.PlanType = &plan
	}

	students, err := h.studentService.ListStudents(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := filters.LimitOffset()
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToStudentResponses(students), limit, offset))
}

// UpdateStudent atualiza um aluno
// @Summary Atualizar aluno
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Param request body dto.UpdateStudentRequest true "Campos alterados"
// @Success 200 {object} dto.StudentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [put]
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	input := services.UpdateStudentInput{
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		NextPaymentDate: req.NextPaymentDate,
		Height:          req.Height,
		Weight:          req.Weight,
	}
	if req.PlanType != nil {
		plan := entities.PlanType(*req.PlanType)
		input.PlanType = &plan
	}
	if req.PaymentStatus != nil {
		status := entities.PaymentStatus(*req.PaymentStatus)
		input.PaymentStatus = &status
	}

	student, err := h.studentService.UpdateStudent(c.Request.Context(), id, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStudentResponse(student))
}

// DeleteStudent remove o perfil de aluno
// @Summary Remover aluno
// @Tags students
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id} [delete]
func (h *StudentHandler) DeleteStudent(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignInstructor vincula um instrutor ao aluno
// @Summary Vincular instrutor
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Param request body dto.AssignInstructorRequest true "Instrutor"
// @Success 201 {object} dto.StudentInstructorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /students/{id}/instructors [post]
func (h *StudentHandler) AssignInstructor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.AssignInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	link, err := h.studentService.AssignInstructor(c.Request.Context(), id, req.InstructorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToStudentInstructorResponse(link))
}

// ListInstructors lista os instrutores do aluno
// @Summary Instrutores do aluno
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Success 200 {array} dto.InstructorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/instructors [get]
func (h *StudentHandler) ListInstructors(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	instructors, err := h.studentService.ListInstructors(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInstructorResponses(instructors))
}

// CheckIn registra a entrada do aluno na academia
// @Summary Registrar entrada
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/checkins [post]
func (h *StudentHandler) CheckIn(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	attendance, err := h.studentService.CheckIn(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.AttendanceResponse{
		ID:        attendance.ID,
		StudentID: attendance.StudentID,
		CheckIn:   attendance.CheckIn,
	})
}

// ListCheckIns lista as entradas do aluno, mais recentes primeiro
// @Summary Entradas do aluno
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do aluno"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ListResponse[dto.AttendanceResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /students/{id}/checkins [get]
func (h *StudentHandler) ListCheckIns(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var query dto.PageQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	page := query.Pagination()
	items, err := h.studentService.ListCheckIns(c.Request.Context(), id, page)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := page.LimitOffset()
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToAttendanceResponses(items), limit, offset))
}
