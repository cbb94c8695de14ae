package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
	"github.com/rafabene/academia-backend/internal/services"
)

// PaymentHandler lida com lançamentos financeiros
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler cria um novo PaymentHandler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// CreatePayment lança um pagamento. Pagamentos confirmados atualizam o aluno
// e geram uma notificação de pagamento.
// @Summary Lançar pagamento
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentRequest true "Pagamento"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), services.CreatePaymentInput{
		StudentID:   req.StudentID,
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Status:      entities.PaymentRecordStatus(req.Status),
		Method:      req.Method,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// GetPayment busca um lançamento
// @Summary Buscar pagamento
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pagamento"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// ListPayments lista lançamentos
// @Summary Listar pagamentos
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param student_id query int false "Aluno"
// @Param status query string false "Situação"
// @Param from query string false "Data inicial (AAAA-MM-DD)"
// @Param to query string false "Data final (AAAA-MM-DD)"
// @Param page query int false "Página"
// @Param page_size query int false "Itens por página"
// @Success 200 {object} dto.ListResponse[dto.PaymentResponse]
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var query dto.PaymentListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		_ = c.Error(err)
		return
	}

	filters := repositories.PaymentFilters{
		From:       query.From,
		To:         query.To,
		Pagination: query.Pagination(),
	}
	if query.StudentID != 0 {
		filters.StudentID = &query.StudentID
	}
	if query.Status != "" {
		status := entities.PaymentRecordStatus(query.Status)
		filters.Status = &status
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	limit, offset := filters.LimitOffset()
	c.JSON(http.StatusOK, dto.NewListResponse(dto.ToPaymentResponses(payments), limit, offset))
}

// UpdatePayment corrige um lançamento
// @Summary Atualizar pagamento
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID do pagamento"
// @Param request body dto.UpdatePaymentRequest true "Campos alterados"
// @Success 200 {object} dto.PaymentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id} [put]
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		return
	}

	input := services.UpdatePaymentInput{
		Amount:      req.Amount,
		PaymentDate: req.PaymentDate,
		Method:      req.Method,
	}
	if req.Status != nil {
		status := entities.PaymentRecordStatus(*req.Status)
		input.Status = &status
	}

	payment, err := h.paymentService.UpdatePayment(c.Request.Context(), id, input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// DeletePayment remove um lançamento
// @Summary Remover pagamento
// @Tags payments
// @Security BearerAuth
// @Param id path int true "ID do pagamento"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
