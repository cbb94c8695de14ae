package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
	"github.com/rafabene/academia-backend/internal/services"
)

// InstructorHandler lida com instrutores
type InstructorHandler struct {
	instructorService *services.InstructorService
}

// NewInstructorHandler cria um novo InstructorHandler
func NewInstructorHandler(instructorService *services.InstructorService) *InstructorHandler {
	return &InstructorHandler{instructorService: instructorService}
}

// CreateInstructor cria o perfil de instrutor
// @Summary Criar instrutor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateInstructorRequest true "Dados do instrutor"
// @Success 201 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /instructors [post]
func (h *InstructorHandler) CreateInstructor(c *gin.Context) {
	var req dto.CreateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	instructor, err := h.instructorService.CreateInstructor(c.Request.Context(), services.InstructorInput{
		UserID:         req.UserID,
		Phone:          req.Phone,
		Bio:            req.Bio,
		PhotoURL:       req.PhotoURL,
		Specialization: req.Specialization,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInstructorResponse(instructor))
}

// GetInstructor busca um instrutor
// @Summary Buscar instrutor
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do instrutor"
// @Success 200 {object} dto.InstructorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [get]
func (h *InstructorHandler) GetInstructor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	instructor, err := h.instructorService.GetInstructor(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInstructorResponse(instructor))
}

// ListInstructors lista instrutores
// @Summary Listar instrutores
// @Tags instructors
// @Produce json
// @Security BearerAuth
// @Param specialization query string false "Especialização"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ListResponse[dto.InstructorResponse]
// @Router /instructors [get]
func (h *InstructorHandler) ListInstructors(c *gin.Context) {
	var query dto.InstructorListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	filters := repositories.InstructorFilters{
		Specialization: query.Specialization,
		Pagination:     query.Pagination(),
	}
	instructors, err := h.instructorService.ListInstructors(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := filters.LimitOffset()
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToInstructorResponses(instructors), limit, offset))
}

// UpdateInstructor atualiza um instrutor
// @Summary Atualizar instrutor
// @Tags instructors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do instrutor"
// @Param request body dto.UpdateInstructorRequest true "Campos alterados"
// @Success 200 {object} dto.InstructorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [put]
func (h *InstructorHandler) UpdateInstructor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateInstructorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	instructor, err := h.instructorService.UpdateInstructor(c.Request.Context(), id, services.UpdateInstructorInput{
		Phone:          req.Phone,
		Bio:            req.Bio,
		PhotoURL:       req.PhotoURL,
		Specialization: req.Specialization,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToInstructorResponse(instructor))
}

// DeleteInstructor remove o perfil de instrutor
// @Summary Remover instrutor
// @Tags instructors
// @Security BearerAuth
// @Param id path int true "ID do instrutor"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /instructors/{id} [delete]
func (h *InstructorHandler) DeleteInstructor(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.instructorService.DeleteInstructor(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
