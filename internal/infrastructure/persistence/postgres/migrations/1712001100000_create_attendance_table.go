package migrations

import "gorm.io/gorm"

const attendanceVersion = 1712001100000

// createAttendanceTable não toca em uma tabela attendance já existente;
// Down só a remove quando foi esta migration que a criou.
var createAttendanceTable = Migration{
	Version: attendanceVersion,
	Name:    "create_attendance_table",
	Up: func(tx *gorm.DB) error {
		if tx.Migrator().HasTable("attendance") {
			return nil
		}
		if err := exec(tx,
			`CREATE TABLE attendance (
	id BIGSERIAL PRIMARY KEY,
	student_id BIGINT NOT NULL,
	check_in TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT fk_attendance_student FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_attendance_check_in ON attendance (check_in)`,
		); err != nil {
			return err
		}
		return markTable(tx, "attendance", attendanceVersion)
	},
	Down: func(tx *gorm.DB) error {
		created, err := ownsTable(tx, "attendance", attendanceVersion)
		if err != nil || !created {
			return err
		}
		return exec(tx, `DROP TABLE attendance`)
	},
}
