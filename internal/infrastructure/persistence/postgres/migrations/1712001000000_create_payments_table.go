package migrations

import "gorm.io/gorm"

const paymentsVersion = 1712001000000

// createPaymentsTable só cria a tabela quando ela não existe; instalações
// antigas já a tinham criado fora das migrations. Nesse caso só a coluna
// method pode ser acrescentada, e Down desfaz apenas o que Up criou.
var createPaymentsTable = Migration{
	Version: paymentsVersion,
	Name:    "create_payments_table",
	Up: func(tx *gorm.DB) error {
		if tx.Migrator().HasTable("payments") {
			if tx.Migrator().HasColumn("payments", "method") {
				return nil
			}
			if err := addColumnIfMissing(tx, "payments", "method", "VARCHAR(50)"); err != nil {
				return err
			}
			return markColumn(tx, "payments", "method", paymentsVersion)
		}
		if err := exec(tx,
			`CREATE TABLE payments (
	id BIGSERIAL PRIMARY KEY,
	student_id BIGINT NOT NULL,
	amount NUMERIC(10,2) NOT NULL,
	payment_date DATE NOT NULL DEFAULT CURRENT_DATE,
	status VARCHAR(20) NOT NULL DEFAULT 'paid',
	method VARCHAR(50),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT chk_payments_status CHECK (status IN ('paid', 'pending', 'overdue', 'cancelled')),
	CONSTRAINT fk_payments_student FOREIGN KEY (student_id) REFERENCES students(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_payments_student_date ON payments (student_id, payment_date)`,
		); err != nil {
			return err
		}
		return markTable(tx, "payments", paymentsVersion)
	},
	Down: func(tx *gorm.DB) error {
		created, err := ownsTable(tx, "payments", paymentsVersion)
		if err != nil {
			return err
		}
		if created {
			return exec(tx, `DROP TABLE payments`)
		}
		added, err := ownsColumn(tx, "payments", "method", paymentsVersion)
		if err != nil || !added {
			return err
		}
		return dropColumnIfExists(tx, "payments", "method")
	},
}
