package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// ExercicioRequest é um exercício da ficha
type ExercicioRequest struct {
	Nome        string   `json:"nome" binding:"required,max=255"`
	Series      int      `json:"series" binding:"gte=0"`
	Repeticoes  int      `json:"repeticoes" binding:"gte=0"`
	Carga       *float64 `json:"carga" binding:"omitempty,gte=0"`
	Descanso    int      `json:"descanso" binding:"gte=0"`
	Observacoes string   `json:"observacoes"`
}

// CreateTreinoRequest cria uma ficha de treino
type CreateTreinoRequest struct {
	Titulo      string             `json:"titulo" binding:"required,max=255"`
	Descricao   string             `json:"descricao"`
	Categoria   string             `json:"categoria" binding:"omitempty,max=100"`
	Exercicios  []ExercicioRequest `json:"exercicios" binding:"omitempty,dive"`
	AlunoID     uint64             `json:"aluno_id" binding:"required,gt=0"`
	InstrutorID uint64             `json:"instrutor_id" binding:"omitempty,gt=0"`
}

// UpdateTreinoRequest atualiza uma ficha de treino. Exercicios substitui a lista inteira.
type UpdateTreinoRequest struct {
	Titulo     *string            `json:"titulo" binding:"omitempty,min=1,max=255"`
	Descricao  *string            `json:"descricao"`
	Categoria  *string            `json:"categoria" binding:"omitempty,max=100"`
	Exercicios []ExercicioRequest `json:"exercicios" binding:"omitempty,dive"`
}

// TreinoListQuery são os filtros aceitos na listagem de treinos
type TreinoListQuery struct {
	PageQuery
	AlunoID     uint64 `form:"aluno_id"`
	InstrutorID uint64 `form:"instrutor_id"`
	Categoria   string `form:"categoria"`
}

// TreinoResponse representa uma ficha de treino
type TreinoResponse struct {
	ID          string               `json:"id"`
	Titulo      string               `json:"titulo"`
	Descricao   string               `json:"descricao,omitempty"`
	Categoria   string               `json:"categoria,omitempty"`
	Exercicios  []entities.Exercicio `json:"exercicios"`
	AlunoID     uint64               `json:"aluno_id"`
	InstrutorID uint64               `json:"instrutor_id"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToExercicios converte os exercícios da requisição para o domínio
func ToExercicios(items []ExercicioRequest) []entities.Exercicio {
	if items == nil {
		return nil
	}
	result := make([]entities.Exercicio, len(items))
	for i, e := range items {
		result[i] = entities.Exercicio{
			Nome:        e.Nome,
			Series:      e.Series,
			Repeticoes:  e.Repeticoes,
			Carga:       e.Carga,
			Descanso:    e.Descanso,
			Observacoes: e.Observacoes,
		}
	}
	return result
}

// ToTreinoResponse converte uma entidade Treino
func ToTreinoResponse(t *entities.Treino) TreinoResponse {
	exercicios := t.Exercicios
	if exercicios == nil {
		exercicios = []entities.Exercicio{}
	}
	return TreinoResponse{
		ID:          t.ID.String(),
		Titulo:      t.Titulo,
		Descricao:   t.Descricao,
		Categoria:   t.Categoria,
		Exercicios:  exercicios,
		AlunoID:     t.AlunoID,
		InstrutorID: t.InstrutorID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// ToTreinoResponses converte uma lista de treinos
func ToTreinoResponses(treinos []*entities.Treino) []TreinoResponse {
	responses := make([]TreinoResponse, len(treinos))
	for i, t := range treinos {
		responses[i] = ToTreinoResponse(t)
	}
	return responses
}
