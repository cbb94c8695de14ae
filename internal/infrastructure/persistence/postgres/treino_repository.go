package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// TreinoRepository implementa repositories.TreinoRepository
type TreinoRepository struct {
	db *gorm.DB
}

// NewTreinoRepository cria um novo TreinoRepository
func NewTreinoRepository(db *gorm.DB) repositories.TreinoRepository {
	return &TreinoRepository{db: db}
}

func (r *TreinoRepository) Create(ctx context.Context, treino *entities.Treino) error {
	if treino.ID == uuid.Nil {
		treino.ID = uuid.New()
	}

	model, err := toTreinoModel(treino)
	if err != nil {
		return err
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}

	treino.CreatedAt = model.CreatedAt
	treino.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *TreinoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Treino, error) {
	var model TreinoModel

	if err := getDB(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if notFound(err) {
			return nil, nil
		}
		return nil, err
	}

	return toTreinoEntity(&model)
}

func (r *TreinoRepository) Update(ctx context.Context, treino *entities.Treino) error {
	model, err := toTreinoModel(treino)
	if err != nil {
		return err
	}

	if err := getDB(ctx, r.db).Save(model).Error; err != nil {
		return translateError(err, domainerrors.ErrConflict)
	}
	treino.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *TreinoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return getDB(ctx, r.db).Where("id = ?", id).Delete(&TreinoModel{}).Error
}

func (r *TreinoRepository) List(ctx context.Context, filters repositories.TreinoFilters) ([]*entities.Treino, error) {
	var models []*TreinoModel

	query := getDB(ctx, r.db).Model(&TreinoModel{})
	if filters.AlunoID != nil {
		query = query.Where("aluno_id = ?", *filters.AlunoID)
	}
	if filters.InstrutorID != nil {
		query = query.Where("instrutor_id = ?", *filters.InstrutorID)
	}
	if filters.Categoria != "" {
		query = query.Where("categoria = ?", filters.Categoria)
	}

	limit, offset := filters.LimitOffset()
	if err := paginate(query.Order("created_at DESC"), limit, offset).Find(&models).Error; err != nil {
		return nil, err
	}

	treinos := make([]*entities.Treino, 0, len(models))
	for _, model := range models {
		treino, err := toTreinoEntity(model)
		if err != nil {
			return nil, err
		}
		treinos = append(treinos, treino)
	}
	return treinos, nil
}

// Conversores
func toTreinoModel(t *entities.Treino) (*TreinoModel, error) {
	exercicios := t.Exercicios
	if exercicios == nil {
		exercicios = []entities.Exercicio{}
	}
	raw, err := json.Marshal(exercicios)
	if err != nil {
		return nil, fmt.Errorf("failed to encode exercicios: %w", err)
	}

	return &TreinoModel{
		ID:          t.ID,
		Titulo:      t.Titulo,
		Descricao:   t.Descricao,
		Categoria:   t.Categoria,
		Exercicios:  datatypes.JSON(raw),
		AlunoID:     t.AlunoID,
		InstrutorID: t.InstrutorID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}, nil
}

func toTreinoEntity(m *TreinoModel) (*entities.Treino, error) {
	exercicios := []entities.Exercicio{}
	if len(m.Exercicios) > 0 {
		if err := json.Unmarshal(m.Exercicios, &exercicios); err != nil {
			return nil, fmt.Errorf("failed to decode exercicios of treino %s: %w", m.ID, err)
		}
	}

	return &entities.Treino{
		ID:          m.ID,
		Titulo:      m.Titulo,
		Descricao:   m.Descricao,
		Categoria:   m.Categoria,
		Exercicios:  exercicios,
		AlunoID:     m.AlunoID,
		InstrutorID: m.InstrutorID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}, nil
}
