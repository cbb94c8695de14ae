package postgres

import (
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
)

// translateError converte erros traduzidos pelo GORM em erros de domínio.
// Erros desconhecidos são devolvidos sem alteração.
func translateError(err error, conflict *domainerrors.DomainError) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return conflict.Wrap(err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domainerrors.Validation(err)
	default:
		return err
	}
}

// notFound devolve (nil, nil) quando o registro não existe
func notFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
