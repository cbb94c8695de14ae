package migrations

import "gorm.io/gorm"

var retypeStudentsAmountPaid = Migration{
	Version: 1712000600000,
	Name:    "retype_students_amount_paid",
	Up: func(tx *gorm.DB) error {
		return exec(tx, `ALTER TABLE students ALTER COLUMN amount_paid TYPE NUMERIC(10,2) USING amount_paid::numeric(10,2)`)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx, `ALTER TABLE students ALTER COLUMN amount_paid TYPE DOUBLE PRECISION USING amount_paid::double precision`)
	},
}
