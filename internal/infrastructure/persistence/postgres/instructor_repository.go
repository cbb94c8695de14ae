package postgres

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// InstructorRepository implementa repositories.InstructorRepository
type InstructorRepository struct {
	db *gorm.DB
}

// NewInstructorRepository cria um novo InstructorRepository
func NewInstructorRepository(db *gorm.DB) repositories.InstructorRepository {
	return &InstructorRepository{db: db}
}

func (r *InstructorRepository) Create(ctx context.Context, instructor *entities.Instructor) error {
	model := toInstructorModel(instructor)

	if err := getDB(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileAlreadyExists)
	}

	instructor.ID = model.ID
	instructor.CreatedAt = model.CreatedAt
	instructor.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *InstructorRepository) FindByID(ctx context.Context, id uint64) (*entities.Instructor, error) {
	return r.findOne(ctx, "instructors.id = ?", id)
}

func (r *InstructorRepository) FindByUserID(ctx context.Context, userID uint64) (*entities.Instructor, error) {
	return r.findOne(ctx, "instructors.user_id = ?", userID)
}

func (r *InstructorRepository) findOne(ctx context.Context, where string, args ...any) (*entities.Instructor, error) {
	var model InstructorModel

	if err := getDB(ctx, r.db).Preload("User").Where(where, args...).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toInstructorEntity(&model)
}

func (r *InstructorRepository) Update(ctx context.Context, instructor *entities.Instructor) error {
	model := toInstructorModel(instructor)

	if err := getDB(ctx, r.db).Omit(clause.Associations).Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrProfileAlreadyExists)
	}
	instructor.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *InstructorRepository) Delete(ctx context.Context, id uint64) error {
	return getDB(ctx, r.db).Delete(&InstructorModel{}, id).Error
}

func (r *InstructorRepository) List(ctx context.Context, filters repositories.InstructorFilters) ([]*entities.Instructor, error) {
	var models []*InstructorModel

	query := getDB(ctx, r.db).Model(&InstructorModel{}).Preload("User")
	if filters.Specialization != "" {
		query = query.Where("specialization ILIKE ?", "%"+filters.Specialization+"%")
	}

	limit, offset := filters.LimitOffset()
	if err := paginate(query.Order("id"), limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	instructors := make([]*entities.Instructor, 0, len(models))
	for _, model := range models {
		instructor, err := toInstructorEntity(model)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}
	return instructors, nil
}

// Conversores
func toInstructorModel(i *entities.Instructor) *InstructorModel {
	return &InstructorModel{
		ID:             i.ID,
		UserID:         i.UserID,
		Phone:          i.Phone,
		Bio:            i.Bio,
		PhotoURL:       i.PhotoURL,
		Specialization: i.Specialization,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
}

func toInstructorEntity(m *InstructorModel) (*entities.Instructor, error) {
	instructor := &entities.Instructor{
		ID:             m.ID,
		UserID:         m.UserID,
		Phone:          m.Phone,
		Bio:            m.Bio,
		PhotoURL:       m.PhotoURL,
		Specialization: m.Specialization,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}

	if m.User != nil {
		user, err := toUserEntity(m.User)
		if err != nil {
			return nil, err
		}
		instructor.User = user
	}
	return instructor, nil
}
