package repositories

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// InstructorRepository define a interface para persistência de instrutores
type InstructorRepository interface {
	Create(ctx context.Context, instructor *entities.Instructor) error
	FindByID(ctx context.Context, id uint64) (*entities.Instructor, error)
	FindByUserID(ctx context.Context, userID uint64) (*entities.Instructor, error)
	Update(ctx context.Context, instructor *entities.Instructor) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, filters InstructorFilters) ([]*entities.Instructor, error)
}

// InstructorFilters contém filtros para listagem de instrutores
type InstructorFilters struct {
	Specialization string
	Pagination
}
