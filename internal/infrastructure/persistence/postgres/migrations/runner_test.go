package migrations_test

import (
	"context"
	"errors"
	"sort"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"

	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres/migrations"
)

// schemaSnapshot descreve os objetos do schema public, exceto schema_migrations
func schemaSnapshot() []string {
	queries := []string{
		`SELECT 'column ' || table_name || '.' || column_name || ' ' || data_type || ' ' || udt_name || ' ' ||
			is_nullable || ' ' || COALESCE(column_default, '') || ' ' || COALESCE(numeric_precision::text, '') || ',' || COALESCE(numeric_scale::text, '')
		FROM information_schema.columns
		WHERE table_schema = 'public' AND table_name <> 'schema_migrations'`,
		`SELECT 'type ' || t.typname FROM pg_type t JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE n.nspname = 'public' AND t.typtype = 'e'`,
		`SELECT 'index ' || indexname FROM pg_indexes
		WHERE schemaname = 'public' AND tablename <> 'schema_migrations'`,
		`SELECT 'constraint ' || c.conname FROM pg_constraint c JOIN pg_namespace n ON n.oid = c.connamespace
		WHERE n.nspname = 'public' AND c.conrelid::regclass::text <> 'schema_migrations'`,
		`SELECT 'function ' || p.proname FROM pg_proc p JOIN pg_namespace n ON n.oid = p.pronamespace
		WHERE n.nspname = 'public'`,
		`SELECT 'trigger ' || tgname FROM pg_trigger WHERE NOT tgisinternal`,
	}

	var out []string
	for _, q := range queries {
		var rows []string
		Expect(db.Raw(q).Scan(&rows).Error).To(Succeed())
		out = append(out, rows...)
	}
	sort.Strings(out)
	return out
}

// withoutColumns remove do snapshot as colunas indicadas (tabela.coluna)
func withoutColumns(snapshot []string, columns ...string) []string {
	var out []string
	for _, item := range snapshot {
		skip := false
		for _, c := range columns {
			if strings.HasPrefix(item, "column "+c+" ") {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, item)
		}
	}
	return out
}

func newRunner(ms []migrations.Migration) *migrations.Runner {
	r, err := migrations.NewRunner(db, logger, ms)
	Expect(err).NotTo(HaveOccurred())
	return r
}

func insertUser(email string) int64 {
	var id int64
	Expect(db.Raw(`INSERT INTO users (name, email, password) VALUES ('Teste', ?, 'hash') RETURNING id`, email).
		Scan(&id).Error).To(Succeed())
	return id
}

var _ = Describe("Runner", func() {
	ctx := context.Background()

	It("aplica todas as migrations e registra cada uma", func() {
		r := newRunner(migrations.All())

		ran, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(HaveLen(len(migrations.All())))

		statuses, err := r.Status(ctx)
		Expect(err).NotTo(HaveOccurred())
		for _, s := range statuses {
			Expect(s.Applied).To(BeTrue(), "migration %d", s.Version)
			Expect(s.AppliedAt).NotTo(BeNil())
		}

		again, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(BeEmpty())
	})

	It("desfaz apenas a migration mais recente", func() {
		all := migrations.All()
		r := newRunner(all)
		_, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())

		undone, err := r.Down(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(undone.Version).To(Equal(all[len(all)-1].Version))

		statuses, err := r.Status(ctx)
		Expect(err).NotTo(HaveOccurred())
		for i, s := range statuses {
			Expect(s.Applied).To(Equal(i < len(all)-1), "migration %d", s.Version)
		}
	})

	It("retorna ErrNoMigrationsApplied quando não há o que desfazer", func() {
		_, err := newRunner(migrations.All()).Down(ctx)
		Expect(err).To(MatchError(migrations.ErrNoMigrationsApplied))
	})

	It("interrompe na primeira falha mantendo as anteriores aplicadas", func() {
		noop := func(*gorm.DB) error { return nil }
		ms := []migrations.Migration{
			{Version: 1, Name: "create_probe", Down: noop, Up: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE probe (id INT)`).Error
			}},
			{Version: 2, Name: "broken", Down: noop, Up: func(tx *gorm.DB) error {
				if err := tx.Exec(`CREATE TABLE half_done (id INT)`).Error; err != nil {
					return err
				}
				return errors.New("boom")
			}},
			{Version: 3, Name: "never", Down: noop, Up: func(tx *gorm.DB) error {
				return tx.Exec(`CREATE TABLE never_created (id INT)`).Error
			}},
		}
		r := newRunner(ms)

		ran, err := r.Up(ctx)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("2_broken"))
		Expect(ran).To(HaveLen(1))

		Expect(db.Migrator().HasTable("probe")).To(BeTrue())
		Expect(db.Migrator().HasTable("half_done")).To(BeFalse())
		Expect(db.Migrator().HasTable("never_created")).To(BeFalse())

		statuses, err := r.Status(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(statuses[0].Applied).To(BeTrue())
		Expect(statuses[1].Applied).To(BeFalse())
		Expect(statuses[2].Applied).To(BeFalse())
	})
})

var _ = Describe("Schema migrations", func() {
	ctx := context.Background()

	It("restaura o schema anterior ao desfazer cada migration", func() {
		all := migrations.All()
		before := make(map[int64][]string, len(all))

		for i, m := range all {
			before[m.Version] = schemaSnapshot()
			ran, err := newRunner(all[:i+1]).Up(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ran).To(HaveLen(1))
		}

		irreversibleColumns := []string{"students.height", "students.weight", "students.payment_method", "students.amount_paid"}
		pastIrreversible := false
		r := newRunner(all)
		for i := len(all) - 1; i >= 0; i-- {
			undone, err := r.Down(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(undone.Version).To(Equal(all[i].Version))

			if migrations.IrreversibleVersions[undone.Version] {
				pastIrreversible = true
				continue
			}
			after := schemaSnapshot()
			expected := before[undone.Version]
			if pastIrreversible {
				after = withoutColumns(after, irreversibleColumns...)
				expected = withoutColumns(expected, irreversibleColumns...)
			}
			Expect(after).To(Equal(expected), "rollback of %s", undone.ID())
		}

		Expect(schemaSnapshot()).To(BeEmpty())
	})

	Context("com o schema completo", func() {
		BeforeEach(func() {
			_, err := newRunner(migrations.All()).Up(ctx)
			Expect(err).NotTo(HaveOccurred())
		})

		It("impede o mesmo par aluno/instrutor duas vezes", func() {
			studentUser := insertUser("aluno@academia.com")
			instructorUser := insertUser("instrutor@academia.com")

			var studentID, instructorID int64
			Expect(db.Raw(`INSERT INTO students (user_id) VALUES (?) RETURNING id`, studentUser).Scan(&studentID).Error).To(Succeed())
			Expect(db.Raw(`INSERT INTO instructors (user_id) VALUES (?) RETURNING id`, instructorUser).Scan(&instructorID).Error).To(Succeed())

			Expect(db.Exec(`INSERT INTO student_instructors (student_id, instructor_id) VALUES (?, ?)`, studentID, instructorID).Error).To(Succeed())
			err := db.Exec(`INSERT INTO student_instructors (student_id, instructor_id) VALUES (?, ?)`, studentID, instructorID).Error
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})

		It("rejeita e-mail duplicado", func() {
			insertUser("dup@academia.com")
			err := db.Exec(`INSERT INTO users (name, email, password) VALUES ('Outro', 'dup@academia.com', 'hash')`).Error
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})

		It("remove em cascata os registros dependentes do usuário", func() {
			studentUser := insertUser("cascata@academia.com")
			instructorUser := insertUser("prof@academia.com")

			var studentID, instructorID int64
			Expect(db.Raw(`INSERT INTO students (user_id) VALUES (?) RETURNING id`, studentUser).Scan(&studentID).Error).To(Succeed())
			Expect(db.Raw(`INSERT INTO instructors (user_id) VALUES (?) RETURNING id`, instructorUser).Scan(&instructorID).Error).To(Succeed())
			Expect(db.Exec(`INSERT INTO student_instructors (student_id, instructor_id) VALUES (?, ?)`, studentID, instructorID).Error).To(Succeed())
			Expect(db.Exec(`INSERT INTO treinos (titulo, aluno_id, instrutor_id) VALUES ('A', ?, ?)`, studentUser, instructorUser).Error).To(Succeed())
			Expect(db.Exec(`INSERT INTO notifications (user_id, title) VALUES (?, 'Olá')`, studentUser).Error).To(Succeed())
			Expect(db.Exec(`INSERT INTO payments (student_id, amount) VALUES (?, 99.90)`, studentID).Error).To(Succeed())
			Expect(db.Exec(`INSERT INTO attendance (student_id) VALUES (?)`, studentID).Error).To(Succeed())

			Expect(db.Exec(`DELETE FROM users WHERE id = ?`, studentUser).Error).To(Succeed())

			for _, table := range []string{"students", "student_instructors", "treinos", "notifications", "payments", "attendance"} {
				var count int64
				Expect(db.Table(table).Count(&count).Error).To(Succeed())
				Expect(count).To(BeZero(), "table %s", table)
			}
			var instructors int64
			Expect(db.Table("instructors").Count(&instructors).Error).To(Succeed())
			Expect(instructors).To(Equal(int64(1)))
		})

		It("cria notificações com a coluna read, enum de tipo, FK e índice nomeados", func() {
			var columns []string
			Expect(db.Raw(`SELECT column_name FROM information_schema.columns WHERE table_name = 'notifications'`).
				Scan(&columns).Error).To(Succeed())
			Expect(columns).To(ContainElements("id", "user_id", "type", "title", "read", "created_at", "updated_at"))
			Expect(columns).NotTo(ContainElement("is_read"))

			var udt string
			Expect(db.Raw(`SELECT udt_name FROM information_schema.columns WHERE table_name = 'notifications' AND column_name = 'type'`).
				Scan(&udt).Error).To(Succeed())
			Expect(udt).To(Equal("notification_type"))

			var labels []string
			Expect(db.Raw(`SELECT enumlabel FROM pg_enum e JOIN pg_type t ON t.oid = e.enumtypid
				WHERE t.typname = 'notification_type' ORDER BY e.enumsortorder`).Scan(&labels).Error).To(Succeed())
			Expect(labels).To(Equal([]string{"payment", "system", "alert"}))

			var fk int64
			Expect(db.Raw(`SELECT COUNT(*) FROM pg_constraint WHERE conname = 'fk_notifications_user'`).Scan(&fk).Error).To(Succeed())
			Expect(fk).To(Equal(int64(1)))

			var idx int64
			Expect(db.Raw(`SELECT COUNT(*) FROM pg_indexes WHERE indexname = 'idx_notifications_user_read'`).Scan(&idx).Error).To(Succeed())
			Expect(idx).To(Equal(int64(1)))
		})

		It("atualiza updated_at de treinos via trigger", func() {
			alunoID := insertUser("treino-aluno@academia.com")
			instrutorID := insertUser("treino-prof@academia.com")

			var id string
			Expect(db.Raw(`INSERT INTO treinos (titulo, aluno_id, instrutor_id, updated_at)
				VALUES ('Peito', ?, ?, '2000-01-01T00:00:00Z') RETURNING id`, alunoID, instrutorID).Scan(&id).Error).To(Succeed())
			Expect(db.Exec(`UPDATE treinos SET titulo = 'Peito e tríceps' WHERE id = ?`, id).Error).To(Succeed())

			var stale bool
			Expect(db.Raw(`SELECT updated_at = '2000-01-01T00:00:00Z'::timestamptz FROM treinos WHERE id = ?`, id).
				Scan(&stale).Error).To(Succeed())
			Expect(stale).To(BeFalse())
		})

		It("rejeita status de pagamento fora da lista", func() {
			userID := insertUser("pagador@academia.com")
			var studentID int64
			Expect(db.Raw(`INSERT INTO students (user_id) VALUES (?) RETURNING id`, userID).Scan(&studentID).Error).To(Succeed())

			err := db.Exec(`INSERT INTO payments (student_id, amount, status) VALUES (?, 10, 'refunded')`, studentID).Error
			Expect(err).To(HaveOccurred())
		})
	})
})

var _ = Describe("Schema pré-existente", func() {
	ctx := context.Background()
	var studentID int64

	count := func(table string) int64 {
		var n int64
		Expect(db.Table(table).Count(&n).Error).To(Succeed())
		return n
	}

	// monta um banco antigo: users e students sem histórico de migrations,
	// students com height preenchido, payments sem method e attendance com dados
	BeforeEach(func() {
		all := migrations.All()
		_, err := newRunner(all[:2]).Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(db.Exec(`DROP TABLE schema_migrations`).Error).To(Succeed())

		Expect(db.Exec(`ALTER TABLE students ADD COLUMN height NUMERIC(5,2)`).Error).To(Succeed())
		userID := insertUser("legado@academia.com")
		Expect(db.Raw(`INSERT INTO students (user_id, height) VALUES (?, 1.82) RETURNING id`, userID).
			Scan(&studentID).Error).To(Succeed())

		Expect(db.Exec(`CREATE TABLE payments (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL,
			payment_date DATE NOT NULL DEFAULT CURRENT_DATE,
			status VARCHAR(20) NOT NULL DEFAULT 'paid',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`).Error).To(Succeed())
		Expect(db.Exec(`CREATE TABLE attendance (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			check_in TIMESTAMPTZ NOT NULL DEFAULT now()
		)`).Error).To(Succeed())
		Expect(db.Exec(`INSERT INTO payments (student_id, amount) VALUES (?, 120), (?, 130)`, studentID, studentID).Error).To(Succeed())
		Expect(db.Exec(`INSERT INTO attendance (student_id) VALUES (?), (?), (?)`, studentID, studentID, studentID).Error).To(Succeed())
	})

	It("aplica todas as migrations preservando tabelas e dados", func() {
		ran, err := newRunner(migrations.All()).Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(HaveLen(len(migrations.All())))

		Expect(count("payments")).To(Equal(int64(2)))
		Expect(count("attendance")).To(Equal(int64(3)))
		Expect(db.Migrator().HasColumn("payments", "method")).To(BeTrue())
		Expect(db.Migrator().HasColumn("students", "weight")).To(BeTrue())
		Expect(db.Migrator().HasColumn("students", "amount_paid")).To(BeTrue())

		var height string
		Expect(db.Raw(`SELECT height::text FROM students WHERE id = ?`, studentID).Scan(&height).Error).To(Succeed())
		Expect(height).To(Equal("1.82"))
	})

	It("desfaz attendance e payments sem apagar as tabelas que já existiam", func() {
		r := newRunner(migrations.All())
		_, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())

		undone, err := r.Down(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(undone.Name).To(Equal("create_attendance_table"))
		Expect(db.Migrator().HasTable("attendance")).To(BeTrue())
		Expect(count("attendance")).To(Equal(int64(3)))

		undone, err = r.Down(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(undone.Name).To(Equal("create_payments_table"))
		Expect(db.Migrator().HasTable("payments")).To(BeTrue())
		Expect(count("payments")).To(Equal(int64(2)))
		Expect(db.Migrator().HasColumn("payments", "method")).To(BeFalse())

		ran, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ran).To(HaveLen(2))
		Expect(db.Migrator().HasColumn("payments", "method")).To(BeTrue())
	})

	It("mantém a coluna method quando ela já existia", func() {
		Expect(db.Exec(`ALTER TABLE payments ADD COLUMN method VARCHAR(50)`).Error).To(Succeed())
		Expect(db.Exec(`UPDATE payments SET method = 'pix'`).Error).To(Succeed())

		r := newRunner(migrations.All())
		_, err := r.Up(ctx)
		Expect(err).NotTo(HaveOccurred())
		for i := 0; i < 2; i++ {
			_, err := r.Down(ctx)
			Expect(err).NotTo(HaveOccurred())
		}

		var methods []string
		Expect(db.Raw(`SELECT method FROM payments`).Scan(&methods).Error).To(Succeed())
		Expect(methods).To(ConsistOf("pix", "pix"))
	})
})
