package migrations

import "gorm.io/gorm"

var createUsersTable = Migration{
	Version: 1712000000000,
	Name:    "create_users_table",
	Up: func(tx *gorm.DB) error {
		if err := createEnum(tx, "user_role", "admin", "instructor", "student"); err != nil {
			return err
		}
		if err := createEnum(tx, "user_status", "active", "inactive"); err != nil {
			return err
		}
		return exec(tx, `CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	password VARCHAR(255) NOT NULL,
	role user_role NOT NULL DEFAULT 'student',
	status user_status NOT NULL DEFAULT 'active',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT uq_users_email UNIQUE (email)
)`)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx,
			`DROP TABLE IF EXISTS users`,
			`DROP TYPE IF EXISTS user_status`,
			`DROP TYPE IF EXISTS user_role`,
		)
	},
}
