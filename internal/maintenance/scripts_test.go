package maintenance_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/academia-backend/internal/infrastructure/config"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres/migrations"
	"github.com/rafabene/academia-backend/internal/infrastructure/security"
	"github.com/rafabene/academia-backend/internal/maintenance"
)

var _ = Describe("Scripts de manutenção", func() {
	var (
		ctx     context.Context
		session *maintenance.Session
	)

	BeforeEach(func() {
		ctx = context.Background()
		migrate()

		var err error
		session, err = maintenance.OpenDSN(ctx, pg.DSN)
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(func() {
			Expect(session.Close()).To(Succeed())
		})
	})

	Describe("EnsureAdmin", func() {
		admin := config.AdminConfig{Name: "Administrador", Email: "Admin@Academia.com", Password: "admin123"}
		hasher := security.NewBcryptHasher(bcrypt.MinCost)

		It("cria o administrador uma vez e pula na segunda execução", func() {
			first, err := maintenance.EnsureAdmin(ctx, session.Conn, hasher, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Created).To(BeTrue())
			Expect(first.Email).To(Equal("admin@academia.com"))

			second, err := maintenance.EnsureAdmin(ctx, session.Conn, hasher, admin)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Created).To(BeFalse())
			Expect(second.ID).To(Equal(first.ID))

			var count int
			Expect(session.Conn.QueryRowContext(ctx,
				`SELECT COUNT(*) FROM users WHERE email = 'admin@academia.com'`).Scan(&count)).To(Succeed())
			Expect(count).To(Equal(1))
		})

		It("grava o papel admin com hash bcrypt", func() {
			_, err := maintenance.EnsureAdmin(ctx, session.Conn, hasher, admin)
			Expect(err).NotTo(HaveOccurred())

			var role, status, hash string
			Expect(session.Conn.QueryRowContext(ctx,
				`SELECT role::text, status::text, password FROM users WHERE email = 'admin@academia.com'`).
				Scan(&role, &status, &hash)).To(Succeed())
			Expect(role).To(Equal("admin"))
			Expect(status).To(Equal("active"))
			Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("admin123"))).To(Succeed())
		})

		It("rejeita e-mail inválido sem tocar na tabela", func() {
			_, err := maintenance.EnsureAdmin(ctx, session.Conn, hasher, config.AdminConfig{Name: "x", Email: "nope", Password: "x"})
			Expect(err).To(HaveOccurred())

			var count int
			Expect(session.Conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)).To(Succeed())
			Expect(count).To(BeZero())
		})
	})

	Describe("InspectSettings", func() {
		It("informa as configurações do servidor e as migrations aplicadas", func() {
			settings, err := maintenance.InspectSettings(ctx, session.Conn)
			Expect(err).NotTo(HaveOccurred())
			Expect(settings.ServerVersion).To(HavePrefix("16"))
			Expect(settings.Database).To(Equal("academia_test"))
			Expect(settings.MaxConnections).NotTo(BeEmpty())
			Expect(settings.MigrationsTracked).To(BeTrue())
			Expect(settings.AppliedMigrations).To(Equal(int64(len(migrations.All()))))
		})
	})

	Describe("resumo do painel em uma única conexão", func() {
		It("agrega alunos, pagamentos, check-ins e notificações", func() {
			now := time.Now().UTC()
			exec := func(query string, args ...any) {
				_, err := session.Conn.ExecContext(ctx, query, args...)
				Expect(err).NotTo(HaveOccurred())
			}

			exec(`INSERT INTO users (id, name, email, password, role, status) VALUES
				(1, 'Ana', 'ana@academia.com', 'x', 'student', 'active'),
				(2, 'Bia', 'bia@academia.com', 'x', 'student', 'inactive'),
				(3, 'Caio', 'caio@academia.com', 'x', 'instructor', 'active')`)
			exec(`INSERT INTO students (id, user_id, payment_status) VALUES (1, 1, 'paid'), (2, 2, 'overdue')`)
			exec(`INSERT INTO instructors (user_id) VALUES (3)`)
			exec(`INSERT INTO payments (student_id, amount, payment_date, status) VALUES
				(1, 120.50, $1::date, 'paid'),
				(1, 80, $1::date, 'pending'),
				(2, 99, ($1::date - interval '2 months')::date, 'paid')`, now)
			exec(`INSERT INTO attendance (student_id, check_in) VALUES (1, $1), (1, $1)`, now)
			exec(`INSERT INTO notifications (user_id, title) VALUES (1, 'Bem-vindo'), (2, 'Pagamento atrasado')`)
			exec(`UPDATE notifications SET "read" = true WHERE title = 'Bem-vindo'`)

			summary, err := postgres.LoadDashboardSummary(ctx, session.Conn, now)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.TotalStudents).To(Equal(int64(2)))
			Expect(summary.ActiveStudents).To(Equal(int64(1)))
			Expect(summary.TotalInstructors).To(Equal(int64(1)))
			Expect(summary.MonthlyRevenue).To(BeNumerically("~", 120.50, 0.001))
			Expect(summary.OverduePayments).To(Equal(int64(1)))
			Expect(summary.CheckInsToday).To(Equal(int64(2)))
			Expect(summary.UnreadNotifications).To(Equal(int64(1)))
		})
	})
})
