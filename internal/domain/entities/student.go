package entities

import (
	"errors"
	"time"
)

// PlanType representa o plano contratado pelo aluno
type PlanType string

const (
	PlanMensal     PlanType = "mensal"
	PlanTrimestral PlanType = "trimestral"
	PlanSemestral  PlanType = "semestral"
	PlanAnual      PlanType = "anual"
)

// Months retorna a duração do plano em meses (0 para plano desconhecido)
func (p PlanType) Months() int {
	switch p {
	case PlanMensal:
		return 1
	case PlanTrimestral:
		return 3
	case PlanSemestral:
		return 6
	case PlanAnual:
		return 12
	default:
		return 0
	}
}

// PaymentStatus é a situação financeira do aluno
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Student estende um User com os dados de matrícula
type Student struct {
	ID              uint64
	UserID          uint64
	User            *User
	PlanType        PlanType
	StartDate       *time.Time
	EndDate         *time.Time
	PaymentStatus   PaymentStatus
	LastPaymentDate *time.Time
	NextPaymentDate *time.Time
	Height          *float64
	Weight          *float64
	PaymentMethod   *string
	AmountPaid      *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RegisterPayment atualiza os campos financeiros após um pagamento confirmado.
// O próximo vencimento avança a duração do plano a partir da data do pagamento.
func (s *Student) RegisterPayment(amount float64, method string, paidAt time.Time) {
	paid := truncateDay(paidAt)
	s.LastPaymentDate = &paid

	months := s.PlanType.Months()
	if months == 0 {
		months = 1
	}
	next := paid.AddDate(0, months, 0)
	s.NextPaymentDate = &next

	s.AmountPaid = &amount
	if method != "" {
		s.PaymentMethod = &method
	}
	s.PaymentStatus = PaymentStatusPaid
}

// IsOverdue indica se o vencimento já passou na data informada
func (s *Student) IsOverdue(now time.Time) bool {
	if s.NextPaymentDate == nil {
		return false
	}
	return truncateDay(now).After(*s.NextPaymentDate)
}

// Validate valida regras de negócio da entidade Student
func (s *Student) Validate() error {
	if s.UserID == 0 {
		return errors.New("user_id is required")
	}

	switch s.PaymentStatus {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusOverdue:
	default:
		return errors.New("invalid payment status")
	}

	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		return errors.New("end_date must be after start_date")
	}

	return nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
