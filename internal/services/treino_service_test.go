package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
)

func TestTreinoService(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewTreinoService(newFakeTreinoRepo(), users, testLogger())

	var ids []uint64
	for _, addr := range []string{"aluno@academia.com", "prof@academia.com"} {
		e, _ := valueobjects.NewEmail(addr)
		u := &entities.User{Email: e, Name: "Pessoa", Role: entities.RoleStudent, Status: entities.UserStatusActive}
		_ = users.Create(ctx, u)
		ids = append(ids, u.ID)
	}

	treino, err := svc.CreateTreino(ctx, TreinoInput{
		Titulo:      "Treino A",
		Categoria:   "hipertrofia",
		AlunoID:     ids[0],
		InstrutorID: ids[1],
		Exercicios:  []entities.Exercicio{{Nome: "Supino", Series: 4, Repeticoes: 10}},
	})
	if err != nil {
		t.Fatalf("esperava treino criado, obteve %v", err)
	}
	if treino.ID == uuid.Nil {
		t.Error("esperava id gerado")
	}

	t.Run("aluno inexistente", func(t *testing.T) {
		_, err := svc.CreateTreino(ctx, TreinoInput{Titulo: "B", AlunoID: 999, InstrutorID: ids[1]})
		if !errors.Is(err, domainerrors.ErrUserNotFound) {
			t.Errorf("esperava ErrUserNotFound, obteve %v", err)
		}
	})

	t.Run("exercício sem nome", func(t *testing.T) {
		_, err := svc.UpdateTreino(ctx, treino.ID, UpdateTreinoInput{Exercicios: []entities.Exercicio{{Series: 3}}})
		var de *domainerrors.DomainError
		if !errors.As(err, &de) || de.Type != domainerrors.ProblemTypeValidation {
			t.Errorf("esperava erro de validação, obteve %v", err)
		}
	})

	t.Run("remoção", func(t *testing.T) {
		if err := svc.DeleteTreino(ctx, treino.ID); err != nil {
			t.Fatal(err)
		}
		if _, err := svc.GetTreino(ctx, treino.ID); !errors.Is(err, domainerrors.ErrTreinoNotFound) {
			t.Errorf("esperava ErrTreinoNotFound, obteve %v", err)
		}
	})
}
