package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// CreateStudentRequest cria o perfil de aluno de um usuário existente
type CreateStudentRequest struct {
	UserID    uint64     `json:"user_id" binding:"required,gt=0"`
	PlanType  string     `json:"plan_type" binding:"omitempty,oneof=mensal trimestral semestral anual"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Height    *float64   `json:"height" binding:"omitempty,gt=0"`
	Weight    *float64   `json:"weight" binding:"omitempty,gt=0"`
}

// UpdateStudentRequest atualiza campos do aluno
type UpdateStudentRequest struct {
	PlanType        *string    `json:"plan_type" binding:"omitempty,oneof=mensal trimestral semestral anual"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
	PaymentStatus   *string    `json:"payment_status" binding:"omitempty,oneof=paid pending overdue"`
	NextPaymentDate *time.Time `json:"next_payment_date"`
	Height          *float64   `json:"height" binding:"omitempty,gt=0"`
	Weight          *float64   `json:"weight" binding:"omitempty,gt=0"`
}

// StudentListQuery são os filtros aceitos na listagem de alunos
type StudentListQuery struct {
	PageQuery
	PaymentStatus string `form:"payment_status" binding:"omitempty,oneof=paid pending overdue"`
	PlanType      string `form:"plan_type" binding:"omitempty,oneof=mensal trimestral semestral anual"`
}

// AssignInstructorRequest vincula um instrutor ao aluno
type AssignInstructorRequest struct {
	InstructorID uint64 `json:"instructor_id" binding:"required,gt=0"`
}

// StudentResponse representa um aluno
type StudentResponse struct {
	ID              uint64        `json:"id"`
	UserID          uint64        `json:"user_id"`
	User            *UserResponse `json:"user,omitempty"`
	PlanType        string        `json:"plan_type,omitempty"`
	StartDate       *time.Time    `json:"start_date,omitempty"`
	EndDate         *time.Time    `json:"end_date,omitempty"`
	PaymentStatus   string        `json:"payment_status"`
	LastPaymentDate *time.Time    `json:"last_payment_date,omitempty"`
	NextPaymentDate *time.Time    `json:"next_payment_date,omitempty"`
	Height          *float64      `json:"height,omitempty"`
	Weight          *float64      `json:"weight,omitempty"`
	PaymentMethod   *string       `json:"payment_method,omitempty"`
	AmountPaid      *float64      `json:"amount_paid,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// StudentInstructorResponse representa o vínculo aluno-instrutor
type StudentInstructorResponse struct {
	ID           uint64    `json:"id"`
	StudentID    uint64    `json:"student_id"`
	InstructorID uint64    `json:"instructor_id"`
	AssignedDate time.Time `json:"assigned_date"`
}

// AttendanceResponse representa uma entrada na academia
type AttendanceResponse struct {
	ID        uint64    `json:"id"`
	StudentID uint64    `json:"student_id"`
	CheckIn   time.Time `json:"check_in"`
}

// ToStudentResponse converte uma entidade Student
func ToStudentResponse(s *entities.Student) StudentResponse {
	resp := StudentResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		PlanType:        string(s.PlanType),
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		PaymentStatus:   string(s.PaymentStatus),
		LastPaymentDate: s.LastPaymentDate,
		NextPaymentDate: s.NextPaymentDate,
		Height:          s.Height,
		Weight:          s.Weight,
		PaymentMethod:   s.PaymentMethod,
		AmountPaid:      s.AmountPaid,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.User != nil {
		user := ToUserResponse(s.User)
		resp.User = &user
	}
	return resp
}

// ToStudentResponses converte uma lista de alunos
func ToStudentResponses(students []*entities.Student) []StudentResponse {
	responses := make([]StudentResponse, len(students))
	for i, s := range students {
		responses[i] = ToStudentResponse(s)
	}
	return responses
}

// ToStudentInstructorResponse converte o vínculo aluno-instrutor
func ToStudentInstructorResponse(link *entities.StudentInstructor) StudentInstructorResponse {
	return StudentInstructorResponse{
		ID:           link.ID,
		StudentID:    link.StudentID,
		InstructorID: link.InstructorID,
		AssignedDate: link.AssignedDate,
	}
}

// ToAttendanceResponses converte as entradas de um aluno
func ToAttendanceResponses(items []*entities.Attendance) []AttendanceResponse {
	responses := make([]AttendanceResponse, len(items))
	for i, a := range items {
		responses[i] = AttendanceResponse{ID: a.ID, StudentID: a.StudentID, CheckIn: a.CheckIn}
	}
	return responses
}
