package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
	"github.com/rafabene/academia-backend/internal/handlers/middleware"
	"github.com/rafabene/academia-backend/internal/services"
)

// TreinoHandler lida com fichas de treino
type TreinoHandler struct {
	treinoService *services.TreinoService
}

// NewTreinoHandler cria um novo TreinoHandler
func NewTreinoHandler(treinoService *services.TreinoService) *TreinoHandler {
	return &TreinoHandler{treinoService: treinoService}
}

// CreateTreino cria uma ficha. Sem instrutor_id, o autor da requisição é o instrutor.
// @Summary Criar treino
// @Tags treinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTreinoRequest true "Ficha de treino"
// @Success 201 {object} dto.TreinoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /treinos [post]
func (h *TreinoHandler) CreateTreino(c *gin.Context) {
	var req dto.CreateTreinoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	instrutorID := req.InstrutorID
	if instrutorID == 0 {
		if user, ok := middleware.CurrentUser(c); ok {
			instrutorID = user.ID
		}
	}

	treino, err := h.treinoService.CreateTreino(c.Request.Context(), services.TreinoInput{
		Titulo:      req.Titulo,
		Descricao:   req.Descricao,
		Categoria:   req.Categoria,
		Exercicios:  dto.ToExercicios(req.Exercicios),
		AlunoID:     req.AlunoID,
		InstrutorID: instrutorID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTreinoResponse(treino))
}

// GetTreino busca uma ficha
// @Summary Buscar treino
// @Tags treinos
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treino (uuid)"
// @Success 200 {object} dto.TreinoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /treinos/{id} [get]
func (h *TreinoHandler) GetTreino(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	treino, err := h.treinoService.GetTreino(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTreinoResponse(treino))
}

// ListTreinos lista fichas
// @Summary Listar treinos
// @Tags treinos
// @Produce json
// @Security BearerAuth
// @Param aluno_id query int false "Aluno"
// @Param instrutor_id query int false "Instrutor"
// @Param categoria query string false "Categoria"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ListResponse[dto.TreinoResponse]
// @Router /treinos [get]
func (h *TreinoHandler) ListTreinos(c *gin.Context) {
	var query dto.TreinoListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	filters := repositories.TreinoFilters{
		Categoria:  query.Categoria,
		Pagination: query.Pagination(),
	}
	if query.AlunoID != 0 {
		filters.AlunoID = &query.AlunoID
	}
	if query.InstrutorID != 0 {
		filters.InstrutorID = &query.InstrutorID
	}

	treinos, err := h.treinoService.ListTreinos(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := filters.LimitOffset()
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToTreinoResponses(treinos), limit, offset))
}

// UpdateTreino atualiza uma ficha
// @Summary Atualizar treino
// @Tags treinos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do treino (uuid)"
// @Param request body dto.UpdateTreinoRequest true "Campos alterados"
// @Success 200 {object} dto.TreinoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /treinos/{id} [put]
func (h *TreinoHandler) UpdateTreino(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdateTreinoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	treino, err := h.treinoService.UpdateTreino(c.Request.Context(), id, services.UpdateTreinoInput{
		Titulo:     req.Titulo,
		Descricao:  req.Descricao,
		Categoria:  req.Categoria,
		Exercicios: dto.ToExercicios(req.Exercicios),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTreinoResponse(treino))
}

// DeleteTreino remove uma ficha
// @Summary Remover treino
// @Tags treinos
// @Security BearerAuth
// @Param id path string true "ID do treino (uuid)"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /treinos/{id} [delete]
func (h *TreinoHandler) DeleteTreino(c *gin.Context) {
	id, err := parseUUID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.treinoService.DeleteTreino(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseUUID(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errInvalidID
	}
	return id, nil
}
