package migrations

import "gorm.io/gorm"

// addMissingColumnsToStudents completa bancos criados antes das colunas de
// avaliação física e pagamento. Down não remove nada: as colunas podem ter
// existido antes desta migration e conter dados.
var addMissingColumnsToStudents = Migration{
	Version: 1712000500000,
	Name:    "add_missing_columns_to_students",
	Up: func(tx *gorm.DB) error {
		columns := []struct{ name, definition string }{
			{"height", "NUMERIC(5,2)"},
			{"weight", "NUMERIC(5,2)"},
			{"payment_method", "VARCHAR(50)"},
			{"amount_paid", "DOUBLE PRECISION"},
		}
		for _, c := range columns {
			if err := addColumnIfMissing(tx, "students", c.name, c.definition); err != nil {
				return err
			}
		}
		return nil
	},
	Down: func(tx *gorm.DB) error {
		return nil
	},
}

// IrreversibleVersions lista as migrations cujo Down é intencionalmente vazio
var IrreversibleVersions = map[int64]bool{
	addMissingColumnsToStudents.Version: true,
}
