package repositories

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// StudentRepository define a interface para persistência de alunos
type StudentRepository interface {
	Create(ctx context.Context, student *entities.Student) error
	FindByID(ctx context.Context, id uint64) (*entities.Student, error)
	FindByUserID(ctx context.Context, userID uint64) (*entities.Student, error)
	Update(ctx context.Context, student *entities.Student) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, filters StudentFilters) ([]*entities.Student, error)

	AssignInstructor(ctx context.Context, link *entities.StudentInstructor) error
	ListInstructors(ctx context.Context, studentID uint64) ([]*entities.Instructor, error)
}

// StudentFilters contém filtros para listagem de alunos
type StudentFilters struct {
	PaymentStatus *entities.PaymentStatus
	PlanType      *entities.PlanType
	Pagination
}

// AttendanceRepository registra as entradas dos alunos
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *entities.Attendance) error
	ListByStudent(ctx context.Context, studentID uint64, page Pagination) ([]*entities.Attendance, error)
}
