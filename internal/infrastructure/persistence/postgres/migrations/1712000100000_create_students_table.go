package migrations

import "gorm.io/gorm"

var createStudentsTable = Migration{
	Version: 1712000100000,
	Name:    "create_students_table",
	Up: func(tx *gorm.DB) error {
		return exec(tx, `CREATE TABLE IF NOT EXISTS students (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	plan_type VARCHAR(50),
	start_date DATE,
	end_date DATE,
	payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
	last_payment_date DATE,
	next_payment_date DATE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uq_students_user UNIQUE (user_id),
	CONSTRAINT fk_students_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
)`)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx, `DROP TABLE IF EXISTS students`)
	},
}
