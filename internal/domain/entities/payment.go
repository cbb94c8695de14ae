package entities

import (
	"errors"
	"time"
)

// PaymentRecordStatus é a situação de um lançamento de pagamento
type PaymentRecordStatus string

const (
	PaymentRecordPaid      PaymentRecordStatus = "paid"
	PaymentRecordPending   PaymentRecordStatus = "pending"
	PaymentRecordOverdue   PaymentRecordStatus = "overdue"
	PaymentRecordCancelled PaymentRecordStatus = "cancelled"
)

// Payment é um lançamento financeiro de um aluno
type Payment struct {
	ID          uint64
	StudentID   uint64
	Amount      float64
	PaymentDate time.Time
	Status      PaymentRecordStatus
	Method      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Payment
func (p *Payment) Validate() error {
	if p.StudentID == 0 {
		return errors.New("student_id is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	switch p.Status {
	case PaymentRecordPaid, PaymentRecordPending, PaymentRecordOverdue, PaymentRecordCancelled:
	default:
		return errors.New("invalid payment status")
	}
	return nil
}

// Attendance registra a entrada de um aluno na academia
type Attendance struct {
	ID        uint64
	StudentID uint64
	CheckIn   time.Time
}

// DashboardSummary agrega os números exibidos no painel administrativo
type DashboardSummary struct {
	TotalStudents       int64     `json:"total_students"`
	ActiveStudents      int64     `json:"active_students"`
	TotalInstructors    int64     `json:"total_instructors"`
	MonthlyRevenue      float64   `json:"monthly_revenue"`
	OverduePayments     int64     `json:"overdue_payments"`
	CheckInsToday       int64     `json:"check_ins_today"`
	UnreadNotifications int64     `json:"unread_notifications"`
	GeneratedAt         time.Time `json:"generated_at"`
}
