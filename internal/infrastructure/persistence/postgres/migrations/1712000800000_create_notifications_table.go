package migrations

import "gorm.io/gorm"

// createNotificationsTable cria diretamente o schema final de notificações:
// coluna "read" (não is_read), enum payment/system/alert, FK e índice com
// nomes estáveis.
var createNotificationsTable = Migration{
	Version: 1712000800000,
	Name:    "create_notifications_table",
	Up: func(tx *gorm.DB) error {
		if err := createEnum(tx, "notification_type", "payment", "system", "alert"); err != nil {
			return err
		}
		return exec(tx,
			`CREATE TABLE IF NOT EXISTS notifications (
	id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL,
	type notification_type NOT NULL DEFAULT 'system',
	title VARCHAR(255) NOT NULL,
	"read" BOOLEAN NOT NULL DEFAULT false,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT fk_notifications_user FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_notifications_user_read ON notifications (user_id, "read")`,
		)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx,
			`DROP TABLE IF EXISTS notifications`,
			`DROP TYPE IF EXISTS notification_type`,
		)
	},
}
