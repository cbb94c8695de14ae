package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// CreatePaymentRequest lança um pagamento para o aluno
type CreatePaymentRequest struct {
	StudentID   uint64     `json:"student_id" binding:"required,gt=0"`
	Amount      float64    `json:"amount" binding:"required,gt=0"`
	PaymentDate *time.Time `json:"payment_date"`
	Status      string     `json:"status" binding:"omitempty,oneof=paid pending overdue cancelled"`
	Method      string     `json:"method" binding:"omitempty,max=50"`
}

// UpdatePaymentRequest corrige um lançamento
type UpdatePaymentRequest struct {
	Amount      *float64   `json:"amount" binding:"omitempty,gt=0"`
	PaymentDate *time.Time `json:"payment_date"`
	Status      *string    `json:"status" binding:"omitempty,oneof=paid pending overdue cancelled"`
	Method      *string    `json:"method" binding:"omitempty,max=50"`
}

// PaymentListQuery são os filtros aceitos na listagem de pagamentos
type PaymentListQuery struct {
	PageQuery
	StudentID uint64     `form:"student_id"`
	Status    string     `form:"status" binding:"omitempty,oneof=paid pending overdue cancelled"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
}

// PaymentResponse representa um lançamento
type PaymentResponse struct {
	ID          uint64    `json:"id"`
	StudentID   uint64    `json:"student_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Status      string    `json:"status"`
	Method      string    `json:"method,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPaymentResponse converte uma entidade Payment
func ToPaymentResponse(p *entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		StudentID:   p.StudentID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      string(p.Status),
		Method:      p.Method,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPaymentResponses converte uma lista de pagamentos
func ToPaymentResponses(payments []*entities.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}
