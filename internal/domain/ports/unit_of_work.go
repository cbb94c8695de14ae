package ports

import "context"

// UnitOfWork define a interface para gerenciamento de transações. A transação
// viaja no contexto; Begin ou WithTransaction sobre um contexto que já está em
// uma transação abrem um trecho aninhado que pode ser desfeito sozinho.
type UnitOfWork interface {
	Begin(ctx context.Context) (context.Context, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	WithTransaction(ctx context.Context, fn func(context.Context) error) error
}
