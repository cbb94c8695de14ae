package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// TreinoRepository define a interface para persistência de treinos
type TreinoRepository interface {
	Create(ctx context.Context, treino *entities.Treino) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Treino, error)
	Update(ctx context.Context, treino *entities.Treino) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filters TreinoFilters) ([]*entities.Treino, error)
}

// TreinoFilters contém filtros para listagem de treinos
type TreinoFilters struct {
	AlunoID     *uint64
	InstrutorID *uint64
	Categoria   string
	Pagination
}
