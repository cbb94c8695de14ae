package services

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// InstructorService contém a lógica de negócio para instrutores
type InstructorService struct {
	instructorRepo repositories.InstructorRepository
	userRepo       repositories.UserRepository
	logger         ports.Logger
}

// NewInstructorService cria um novo InstructorService
func NewInstructorService(
	instructorRepo repositories.InstructorRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *InstructorService {
	return &InstructorService{
		instructorRepo: instructorRepo,
		userRepo:       userRepo,
		logger:         logger,
	}
}

// InstructorInput contém os dados de perfil do instrutor
type InstructorInput struct {
	UserID         uint64
	Phone          string
	Bio            string
	PhotoURL       *string
	Specialization string
}

// UpdateInstructorInput contém os campos alteráveis; nil mantém o valor atual
type UpdateInstructorInput struct {
	Phone          *string
	Bio            *string
	PhotoURL       *string
	Specialization *string
}

// CreateInstructor cria o perfil de instrutor para um usuário existente
func (s *InstructorService) CreateInstructor(ctx context.Context, input InstructorInput) (*entities.Instructor, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	existing, err := s.instructorRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrProfileAlreadyExists
	}

	instructor := &entities.Instructor{
		UserID:         input.UserID,
		User:           user,
		Phone:          input.Phone,
		Bio:            input.Bio,
		PhotoURL:       input.PhotoURL,
		Specialization: input.Specialization,
	}
	if err := instructor.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.instructorRepo.Create(ctx, instructor); err != nil {
		return nil, err
	}

	s.logger.Info("instructor created", "instructor_id", instructor.ID, "user_id", instructor.UserID)
	return instructor, nil
}

// GetInstructor busca um instrutor por ID
func (s *InstructorService) GetInstructor(ctx context.Context, id uint64) (*entities.Instructor, error) {
	instructor, err := s.instructorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if instructor == nil {
		return nil, errors.ErrInstructorNotFound
	}
	return instructor, nil
}

// ListInstructors lista instrutores com filtros
func (s *InstructorService) ListInstructors(ctx context.Context, filters repositories.InstructorFilters) ([]*entities.Instructor, error) {
	return s.instructorRepo.List(ctx, filters)
}

// UpdateInstructor aplica as alterações informadas
func (s *InstructorService) UpdateInstructor(ctx context.Context, id uint64, input UpdateInstructorInput) (*entities.Instructor, error) {
	instructor, err := s.GetInstructor(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Phone != nil {
		instructor.Phone = *input.Phone
	}
	if input.Bio != nil {
		instructor.Bio = *input.Bio
	}
	if input.PhotoURL != nil {
		instructor.PhotoURL = input.PhotoURL
	}
	if input.Specialization != nil {
		instructor.Specialization = *input.Specialization
	}

	if err := instructor.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.instructorRepo.Update(ctx, instructor); err != nil {
		return nil, err
	}
	return instructor, nil
}

// DeleteInstructor remove o perfil de instrutor
func (s *InstructorService) DeleteInstructor(ctx context.Context, id uint64) error {
	if _, err := s.GetInstructor(ctx, id); err != nil {
		return err
	}
	return s.instructorRepo.Delete(ctx, id)
}
