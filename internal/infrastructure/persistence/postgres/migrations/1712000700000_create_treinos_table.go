package migrations

import "gorm.io/gorm"

var createTreinosTable = Migration{
	Version: 1712000700000,
	Name:    "create_treinos_table",
	Up: func(tx *gorm.DB) error {
		return exec(tx,
			`CREATE TABLE IF NOT EXISTS treinos (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	titulo VARCHAR(255) NOT NULL,
	descricao TEXT,
	categoria VARCHAR(100),
	exercicios JSONB NOT NULL DEFAULT '[]'::jsonb,
	aluno_id BIGINT NOT NULL,
	instrutor_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	CONSTRAINT fk_treinos_aluno FOREIGN KEY (aluno_id) REFERENCES users(id) ON DELETE CASCADE,
	CONSTRAINT fk_treinos_instrutor FOREIGN KEY (instrutor_id) REFERENCES users(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_treinos_aluno ON treinos (aluno_id)`,
			`CREATE INDEX IF NOT EXISTS idx_treinos_instrutor ON treinos (instrutor_id)`,
			`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS TRIGGER AS $$
BEGIN
	NEW.updated_at = now();
	RETURN NEW;
END;
$$ LANGUAGE plpgsql`,
			`DROP TRIGGER IF EXISTS trg_treinos_updated_at ON treinos`,
			`CREATE TRIGGER trg_treinos_updated_at BEFORE UPDATE ON treinos
	FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,
		)
	},
	Down: func(tx *gorm.DB) error {
		return exec(tx,
			`DROP TABLE IF EXISTS treinos`,
			`DROP FUNCTION IF EXISTS set_updated_at()`,
		)
	},
}
