package migrations

import "gorm.io/gorm"

var createInstructorsTable = Migration{
	Version: 1712000200000,
	Name:    "create_instructors_table",
	Up: func(tx *gorm.DB) error {
		return exec(tx, `CREATE TABLE IF NOT EXISTS instructors (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	phone VARCHAR(20),
	bio TEXT,
	specialization VARCHAR(255),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uq_instructors_user UNIQUE (user_id),
	CONSTRAINT fk_instructors_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
)`)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx, `DROP TABLE IF EXISTS instructors`)
	},
}
