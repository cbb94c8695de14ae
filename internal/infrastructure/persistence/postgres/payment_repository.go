package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// PaymentRepository implementa repositories.PaymentRepository
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository cria um novo PaymentRepository
func NewPaymentRepository(db *gorm.DB) repositories.PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entities.Payment) error {
	model := toPaymentModel(payment)

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}

	payment.ID = model.ID
	payment.CreatedAt = model.CreatedAt
	payment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint64) (*entities.Payment, error) {
	var model PaymentModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toPaymentEntity(&model), nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment *entities.Payment) error {
	model := toPaymentModel(payment)

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}
	payment.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint64) error {
	return getDB(ctx, r.db).Delete(&PaymentModel{}, id).Error
}

func (r *PaymentRepository) List(ctx context.Context, filters repositories.PaymentFilters) ([]*entities.Payment, error) {
	var models []*PaymentModel

	query := getDB(ctx, r.db).Model(&PaymentModel{})
	if filters.StudentID != nil {
		query = query.Where("student_id = ?", *filters.StudentID)
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.From != nil {
		query = query.Where("payment_date >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where("payment_date <= ?", *filters.To)
	}

	limit, offset := filters.LimitOffset()
	if err := paginate(query.Order("payment_date DESC, id DESC"), limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	payments := make([]*entities.Payment, 0, len(models))
	for _, model := range models {
		payments = append(payments, toPaymentEntity(model))
	}
	return payments, nil
}

// Conversores
func toPaymentModel(p *entities.Payment) *PaymentModel {
	var method *string
	if p.Method != "" {
		m := p.Method
		method = &m
	}
	return &PaymentModel{
		ID:          p.ID,
		StudentID:   p.StudentID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Status:      string(p.Status),
		Method:      method,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toPaymentEntity(m *PaymentModel) *entities.Payment {
	payment := &entities.Payment{
		ID:          m.ID,
		StudentID:   m.StudentID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Status:      entities.PaymentRecordStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Method != nil {
		payment.Method = *m.Method
	}
	return payment
}
