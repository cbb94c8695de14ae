package entities

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Exercicio é um item da ficha de treino, persistido dentro do JSON de exercícios
type Exercicio struct {
	Nome        string   `json:"nome"`
	Series      int      `json:"series"`
	Repeticoes  int      `json:"repeticoes"`
	Carga       *float64 `json:"carga,omitempty"`
	Descanso    int      `json:"descanso,omitempty"` // segundos
	Observacoes string   `json:"observacoes,omitempty"`
}

// Treino é uma ficha de treino atribuída por um instrutor a um aluno
type Treino struct {
	ID          uuid.UUID
	Titulo      string
	Descricao   string
	Categoria   string
	Exercicios  []Exercicio
	AlunoID     uint64
	InstrutorID uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Treino
func (t *Treino) Validate() error {
	if t.Titulo == "" {
		return errors.New("titulo is required")
	}
	if t.AlunoID == 0 || t.InstrutorID == 0 {
		return errors.New("aluno_id and instrutor_id are required")
	}
	for _, e := range t.Exercicios {
		if e.Nome == "" {
			return errors.New("exercise name is required")
		}
		if e.Series < 0 || e.Repeticoes < 0 {
			return errors.New("series and repeticoes must not be negative")
		}
	}
	return nil
}
