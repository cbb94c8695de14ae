package migrations

import "gorm.io/gorm"

var createStudentInstructorsTable = Migration{
	Version: 1712000400000,
	Name:    "create_student_instructors_table",
	Up: func(tx *gorm.DB) error {
		if err := exec(tx, `CREATE TABLE IF NOT EXISTS student_instructors (
	id BIGSERIAL PRIMARY KEY,
	student_id BIGINT NOT NULL,
	instructor_id BIGINT NOT NULL,
	assigned_date TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
			return err
		}
		if err := addForeignKeyIfMissing(tx, "student_instructors", "fk_student_instructors_student", "student_id", "students"); err != nil {
			return err
		}
		if err := addForeignKeyIfMissing(tx, "student_instructors", "fk_student_instructors_instructor", "instructor_id", "instructors"); err != nil {
			return err
		}
		return exec(tx, `CREATE UNIQUE INDEX IF NOT EXISTS uq_student_instructor ON student_instructors (student_id, instructor_id)`)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx, `DROP TABLE IF EXISTS student_instructors`)
	},
}
