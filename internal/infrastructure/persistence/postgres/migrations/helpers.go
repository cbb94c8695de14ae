package migrations

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// exec executa as instruções em sequência, parando no primeiro erro
func exec(tx *gorm.DB, statements ...string) error {
	for _, stmt := range statements {
		if err := tx.Exec(stmt).Error; err != nil {
			return fmt.Errorf("%s: %w", firstLine(stmt), err)
		}
	}
	return nil
}

// createEnum cria o tipo enum apenas se ele ainda não existir
func createEnum(tx *gorm.DB, name string, values ...string) error {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + strings.ReplaceAll(v, "'", "''") + "'"
	}
	return exec(tx, fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = '%s') THEN
		CREATE TYPE %s AS ENUM (%s);
	END IF;
END $$;`, name, name, strings.Join(quoted, ", ")))
}

// addColumnIfMissing adiciona a coluna quando ela não existe, tolerando schemas
// que já receberam a alteração manualmente
func addColumnIfMissing(tx *gorm.DB, table, column, definition string) error {
	if tx.Migrator().HasColumn(table, column) {
		return nil
	}
	return exec(tx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s", table, column, definition))
}

// dropColumnIfExists remove a coluna quando ela existe
func dropColumnIfExists(tx *gorm.DB, table, column string) error {
	if !tx.Migrator().HasColumn(table, column) {
		return nil
	}
	return exec(tx, fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", table, column))
}

// addForeignKeyIfMissing cria a FK com ON DELETE CASCADE se a constraint não existir
func addForeignKeyIfMissing(tx *gorm.DB, table, name, column, refTable string) error {
	return exec(tx, fmt.Sprintf(`DO $$
BEGIN
	IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%s') THEN
		ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s(id) ON DELETE CASCADE;
	END IF;
END $$;`, name, table, name, column, refTable))
}

func firstLine(stmt string) string {
	stmt = strings.TrimSpace(stmt)
	if idx := strings.IndexByte(stmt, '\n'); idx != -1 {
		return stmt[:idx]
	}
	return stmt
}

// ownershipMark é gravado como COMMENT nos objetos que a migration criou, para
// que Down não apague tabelas ou colunas que já existiam antes dela.
func ownershipMark(version int64) string {
	return fmt.Sprintf("created by migration %d", version)
}

func markTable(tx *gorm.DB, table string, version int64) error {
	return exec(tx, fmt.Sprintf("COMMENT ON TABLE %s IS '%s'", table, ownershipMark(version)))
}

func markColumn(tx *gorm.DB, table, column string, version int64) error {
	return exec(tx, fmt.Sprintf("COMMENT ON COLUMN %s.%s IS '%s'", table, column, ownershipMark(version)))
}

// ownsTable indica se a tabela existe e foi criada pela migration version
func ownsTable(tx *gorm.DB, table string, version int64) (bool, error) {
	var comment string
	err := tx.Raw(`SELECT COALESCE(obj_description(to_regclass(?::text), 'pg_class'), '')`, table).
		Scan(&comment).Error
	if err != nil {
		return false, fmt.Errorf("read comment on %s: %w", table, err)
	}
	return comment == ownershipMark(version), nil
}

// ownsColumn indica se a coluna existe e foi adicionada pela migration version
func ownsColumn(tx *gorm.DB, table, column string, version int64) (bool, error) {
	var comment string
	err := tx.Raw(`SELECT COALESCE(col_description(a.attrelid, a.attnum), '')
		FROM pg_attribute a
		WHERE a.attrelid = to_regclass(?::text) AND a.attname = ? AND NOT a.attisdropped`, table, column).
		Scan(&comment).Error
	if err != nil {
		return false, fmt.Errorf("read comment on %s.%s: %w", table, column, err)
	}
	return comment == ownershipMark(version), nil
}
