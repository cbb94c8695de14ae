package services

import (
	"context"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// StudentService contém a lógica de negócio para alunos
type StudentService struct {
	studentRepo    repositories.StudentRepository
	userRepo       repositories.UserRepository
	instructorRepo repositories.InstructorRepository
	attendanceRepo repositories.AttendanceRepository
	logger         ports.Logger
	now            func() time.Time
}

// NewStudentService cria um novo StudentService
func NewStudentService(
	studentRepo repositories.StudentRepository,
	userRepo repositories.UserRepository,
	instructorRepo repositories.InstructorRepository,
	attendanceRepo repositories.AttendanceRepository,
	logger ports.Logger,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		userRepo:       userRepo,
		instructorRepo: instructorRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// CreateStudentInput representa os dados de matrícula
type CreateStudentInput struct {
	UserID    uint64
	PlanType  entities.PlanType
	StartDate *time.Time
	EndDate   *time.Time
	Height    *float64
	Weight    *float64
}

// UpdateStudentInput contém os campos alteráveis; nil mantém o valor atual
type UpdateStudentInput struct {
	PlanType        *entities.PlanType
	StartDate       *time.Time
	EndDate         *time.Time
	PaymentStatus   *entities.PaymentStatus
	NextPaymentDate *time.Time
	Height          *float64
	Weight          *float64
}

// CreateStudent cria o perfil de aluno para um usuário existente
func (s *StudentService) CreateStudent(ctx context.Context, input CreateStudentInput) (*entities.Student, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	existing, err := s.studentRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrProfileAlreadyExists
	}

	student := &entities.Student{
		UserID:        input.UserID,
		User:          user,
		PlanType:      input.PlanType,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		PaymentStatus: entities.PaymentStatusPending,
		Height:        input.Height,
		Weight:        input.Weight,
	}
	if err := student.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("student created", "student_id", student.ID, "user_id", student.UserID)
	return student, nil
}

// GetStudent busca um aluno por ID
func (s *StudentService) GetStudent(ctx context.Context, id uint64) (*entities.Student, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, errors.ErrStudentNotFound
	}
	return student, nil
}

// ListStudents lista alunos com filtros
func (s *StudentService) ListStudents(ctx context.Context, filters repositories.StudentFilters) ([]*entities.Student, error) {
	return s.studentRepo.List(ctx, filters)
}

// UpdateStudent aplica as alterações informadas
func (s *StudentService) UpdateStudent(ctx context.Context, id uint64, input UpdateStudentInput) (*entities.Student, error) {
	student, err := s.GetStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.PlanType != nil {
		student.PlanType = *input.PlanType
	}
	if input.StartDate != nil {
		student.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		student.EndDate = input.EndDate
	}
	if input.PaymentStatus != nil {
		student.PaymentStatus = *input.PaymentStatus
	}
	if input.NextPaymentDate != nil {
		student.NextPaymentDate = input.NextPaymentDate
	}
	if input.Height != nil {
		student.Height = input.Height
	}
	if input.Weight != nil {
		student.Weight = input.Weight
	}

	if err := student.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// DeleteStudent remove o perfil de aluno (vínculos, pagamentos e presenças em cascata)
func (s *StudentService) DeleteStudent(ctx context.Context, id uint64) error {
	if _, err := s.GetStudent(ctx, id); err != nil {
		return err
	}
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("student deleted", "student_id", id)
	return nil
}

// AssignInstructor vincula um instrutor ao aluno
func (s *StudentService) AssignInstructor(ctx context.Context, studentID, instructorID uint64) (*entities.StudentInstructor, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	instructor, err := s.instructorRepo.FindByID(ctx, instructorID)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, errors.ErrInstructorNotFound
	}

	link := &entities.StudentInstructor{StudentID: studentID, InstructorID: instructorID}
	if err := s.studentRepo.AssignInstructor(ctx, link); err != nil {
		return nil, err
	}
	s.logger.Info("instructor assigned", "student_id", studentID, "instructor_id", instructorID)
	return link, nil
}

// ListInstructors lista os instrutores vinculados ao aluno
func (s *StudentService) ListInstructors(ctx context.Context, studentID uint64) ([]*entities.Instructor, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.studentRepo.ListInstructors(ctx, studentID)
}

// CheckIn registra a entrada do aluno na academia
func (s *StudentService) CheckIn(ctx context.Context, studentID uint64) (*entities.Attendance, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}

	attendance := &entities.Attendance{StudentID: studentID, CheckIn: s.now().UTC()}
	if err := s.attendanceRepo.Create(ctx, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}

// ListCheckIns lista as entradas do aluno, mais recentes primeiro
func (s *StudentService) ListCheckIns(ctx context.Context, studentID uint64, page repositories.Pagination) ([]*entities.Attendance, error) {
	if _, err := s.GetStudent(ctx, studentID); err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByStudent(ctx, studentID, page)
}
