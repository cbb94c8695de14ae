package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// TreinoService contém a lógica de negócio para fichas de treino
type TreinoService struct {
	treinoRepo repositories.TreinoRepository
	userRepo   repositories.UserRepository
	logger     ports.Logger
}

// NewTreinoService cria um novo TreinoService
func NewTreinoService(
	treinoRepo repositories.TreinoRepository,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *TreinoService {
	return &TreinoService{
		treinoRepo: treinoRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// TreinoInput contém os dados de uma ficha
type TreinoInput struct {
	Titulo      string
	Descricao   string
	Categoria   string
	Exercicios  []entities.Exercicio
	AlunoID     uint64
	InstrutorID uint64
}

// UpdateTreinoInput contém os campos alteráveis; nil mantém o valor atual
type UpdateTreinoInput struct {
	Titulo     *string
	Descricao  *string
	Categoria  *string
	Exercicios []entities.Exercicio
}

// CreateTreino cria uma ficha para um aluno
func (s *TreinoService) CreateTreino(ctx context.Context, input TreinoInput) (*entities.Treino, error) {
	for _, id := range []uint64{input.AlunoID, input.InstrutorID} {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, errors.ErrUserNotFound
		}
	}

	exercicios := input.Exercicios
	if exercicios == nil {
		exercicios = []entities.Exercicio{}
	}
	treino := &entities.Treino{
		Titulo:      input.Titulo,
		Descricao:   input.Descricao,
		Categoria:   input.Categoria,
		Exercicios:  exercicios,
		AlunoID:     input.AlunoID,
		InstrutorID: input.InstrutorID,
	}
	if err := treino.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.treinoRepo.Create(ctx, treino); err != nil {
		return nil, err
	}

	s.logger.Info("treino created", "treino_id", treino.ID, "aluno_id", treino.AlunoID)
	return treino, nil
}

// GetTreino busca uma ficha por ID
func (s *TreinoService) GetTreino(ctx context.Context, id uuid.UUID) (*entities.Treino, error) {
	treino, err := s.treinoRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if treino == nil {
		return nil, errors.ErrTreinoNotFound
	}
	return treino, nil
}

// ListTreinos lista fichas com filtros
func (s *TreinoService) ListTreinos(ctx context.Context, filters repositories.TreinoFilters) ([]*entities.Treino, error) {
	return s.treinoRepo.List(ctx, filters)
}

// UpdateTreino aplica as alterações informadas
func (s *TreinoService) UpdateTreino(ctx context.Context, id uuid.UUID, input UpdateTreinoInput) (*entities.Treino, error) {
	treino, err := s.GetTreino(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Titulo != nil {
		treino.Titulo = *input.Titulo
	}
	if input.Descricao != nil {
		treino.Descricao = *input.Descricao
	}
	if input.Categoria != nil {
		treino.Categoria = *input.Categoria
	}
	if input.Exercicios != nil {
		treino.Exercicios = input.Exercicios
	}

	if err := treino.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.treinoRepo.Update(ctx, treino); err != nil {
		return nil, err
	}
	return treino, nil
}

// DeleteTreino remove uma ficha
func (s *TreinoService) DeleteTreino(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTreino(ctx, id); err != nil {
		return err
	}
	return s.treinoRepo.Delete(ctx, id)
}
