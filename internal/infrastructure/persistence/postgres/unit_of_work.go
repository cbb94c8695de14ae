package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/domain/ports"
)

type contextKey string

const txKey contextKey = "tx"

// txScope é o que fica no contexto durante uma transação. Escopos aninhados
// compartilham a mesma *gorm.DB e marcam um SAVEPOINT próprio.
type txScope struct {
	tx        *gorm.DB
	depth     int
	savepoint string
}

func scopeFrom(ctx context.Context) (*txScope, bool) {
	scope, ok := ctx.Value(txKey).(*txScope)
	return scope, ok
}

// UnitOfWork implementa ports.UnitOfWork. Repositórios chamados com o contexto
// devolvido por Begin ou recebido em WithTransaction usam a transação aberta.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

// Begin abre uma transação, ou um SAVEPOINT quando ctx já está em uma
func (uow *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if outer, ok := scopeFrom(ctx); ok {
		name := fmt.Sprintf("academia_sp_%d", outer.depth+1)
		if err := outer.tx.SavePoint(name).Error; err != nil {
			return ctx, fmt.Errorf("savepoint %s: %w", name, err)
		}
		return context.WithValue(ctx, txKey, &txScope{tx: outer.tx, depth: outer.depth + 1, savepoint: name}), nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ctx, fmt.Errorf("begin transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txKey, &txScope{tx: tx}), nil
}

// Commit confirma a transação de ctx. Em um escopo aninhado não faz nada:
// o SAVEPOINT vale até o commit da transação externa.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	scope, ok := scopeFrom(ctx)
	if !ok || scope.savepoint != "" {
		return nil
	}
	return scope.tx.Commit().Error
}

// Rollback desfaz a transação de ctx, ou só o que veio depois do SAVEPOINT
func (uow *UnitOfWork) Rollback(ctx context.Context) error {
	scope, ok := scopeFrom(ctx)
	if !ok {
		return nil
	}
	if scope.savepoint != "" {
		return scope.tx.RollbackTo(scope.savepoint).Error
	}
	return scope.tx.Rollback().Error
}

// WithTransaction roda fn dentro de uma transação e confirma se fn não falhar.
// Chamado dentro de outra transação, um erro de fn desfaz apenas o trecho
// aninhado; cabe ao chamador externo decidir se propaga o erro.
func (uow *UnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			_ = uow.Rollback(txCtx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		if rbErr := uow.Rollback(txCtx); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return uow.Commit(txCtx)
}

// getDB devolve a transação de ctx, se houver, ou o pool
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if scope, ok := scopeFrom(ctx); ok {
		return scope.tx
	}
	return db.WithContext(ctx)
}

// paginate aplica limit/offset normalizados
func paginate(query *gorm.DB, limit, offset int) *gorm.DB {
	return query.Limit(limit).Offset(offset)
}
