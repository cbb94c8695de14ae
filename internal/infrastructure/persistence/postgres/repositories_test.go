package postgres_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
	"github.com/rafabene/academia-backend/internal/infrastructure/persistence/postgres"
)

var _ = Describe("UserRepository", func() {
	var (
		ctx   context.Context
		users repositories.UserRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		users = postgres.NewUserRepository(db)
	})

	It("encontra o usuário pelo e-mail", func() {
		created := createUser("ana@academia.com", entities.RoleStudent)

		found, err := users.FindByEmail(ctx, "ana@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(created.ID))
		Expect(found.Role).To(Equal(entities.RoleStudent))
		Expect(found.CreatedAt).NotTo(BeZero())
	})

	It("devolve nil quando o usuário não existe", func() {
		found, err := users.FindByID(ctx, 999)
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())
	})

	It("traduz e-mail duplicado em conflito", func() {
		createUser("ana@academia.com", entities.RoleStudent)

		addr, _ := valueobjects.NewEmail("ana@academia.com")
		err := users.Create(ctx, &entities.User{Email: addr, Name: "Outra", PasswordHash: "x", Role: entities.RoleStudent, Status: entities.UserStatusActive})
		Expect(errors.Is(err, domainerrors.ErrEmailAlreadyExists)).To(BeTrue())
	})

	It("filtra por role e status com paginação", func() {
		createUser("admin@academia.com", entities.RoleAdmin)
		createUser("bia@academia.com", entities.RoleStudent)
		inactive := createUser("caio@academia.com", entities.RoleStudent)
		inactive.Deactivate()
		Expect(users.Update(ctx, inactive)).To(Succeed())

		role := entities.RoleStudent
		status := entities.UserStatusActive
		list, err := users.List(ctx, repositories.UserFilters{Role: &role, Status: &status})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].Email.String()).To(Equal("bia@academia.com"))

		page, err := users.List(ctx, repositories.UserFilters{Pagination: repositories.Pagination{Page: 2, PageSize: 2}})
		Expect(err).NotTo(HaveOccurred())
		Expect(page).To(HaveLen(1))
	})

	It("remove aluno e instrutor junto com o usuário", func() {
		student := createStudent("aluno@academia.com")
		instructor := createInstructor("instrutor@academia.com")

		Expect(users.Delete(ctx, student.UserID)).To(Succeed())
		Expect(users.Delete(ctx, instructor.UserID)).To(Succeed())

		gone, err := postgres.NewStudentRepository(db).FindByID(ctx, student.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(gone).To(BeNil())
		goneInstructor, err := postgres.NewInstructorRepository(db).FindByID(ctx, instructor.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(goneInstructor).To(BeNil())
	})
})

var _ = Describe("StudentRepository", func() {
	var (
		ctx      context.Context
		students repositories.StudentRepository
	)

	BeforeEach(func() {
		ctx = context.Background()
		students = postgres.NewStudentRepository(db)
	})

	It("carrega o usuário junto com o aluno", func() {
		student := createStudent("ana@academia.com")

		found, err := students.FindByUserID(ctx, student.UserID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.ID).To(Equal(student.ID))
		Expect(found.User).NotTo(BeNil())
		Expect(found.User.Email.String()).To(Equal("ana@academia.com"))
	})

	It("rejeita um segundo perfil de aluno para o mesmo usuário", func() {
		student := createStudent("ana@academia.com")

		err := students.Create(ctx, &entities.Student{UserID: student.UserID, PaymentStatus: entities.PaymentStatusPending})
		Expect(errors.Is(err, domainerrors.ErrProfileAlreadyExists)).To(BeTrue())
	})

	It("persiste os campos financeiros do pagamento", func() {
		student := createStudent("ana@academia.com")
		student.RegisterPayment(120.5, "pix", time.Date(2024, 5, 10, 14, 0, 0, 0, time.UTC))
		Expect(students.Update(ctx, student)).To(Succeed())

		found, err := students.FindByID(ctx, student.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.PaymentStatus).To(Equal(entities.PaymentStatusPaid))
		Expect(*found.AmountPaid).To(BeNumerically("~", 120.5, 0.001))
		Expect(*found.PaymentMethod).To(Equal("pix"))
		Expect(found.NextPaymentDate.Format("2006-01-02")).To(Equal("2024-06-10"))

		status := entities.PaymentStatusPaid
		list, err := students.List(ctx, repositories.StudentFilters{PaymentStatus: &status})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
	})

	It("vincula instrutor uma única vez", func() {
		student := createStudent("ana@academia.com")
		instructor := createInstructor("caio@academia.com")

		link := &entities.StudentInstructor{StudentID: student.ID, InstructorID: instructor.ID}
		Expect(students.AssignInstructor(ctx, link)).To(Succeed())
		Expect(link.ID).NotTo(BeZero())
		Expect(link.AssignedDate).NotTo(BeZero())

		err := students.AssignInstructor(ctx, &entities.StudentInstructor{StudentID: student.ID, InstructorID: instructor.ID})
		Expect(errors.Is(err, domainerrors.ErrInstructorAlreadyAssigned)).To(BeTrue())

		instructors, err := students.ListInstructors(ctx, student.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(instructors).To(HaveLen(1))
		Expect(instructors[0].ID).To(Equal(instructor.ID))
	})

	It("registra e lista as entradas do aluno", func() {
		student := createStudent("ana@academia.com")
		attendance := postgres.NewAttendanceRepository(db)

		for i := 0; i < 3; i++ {
			Expect(attendance.Create(ctx, &entities.Attendance{StudentID: student.ID})).To(Succeed())
		}

		items, err := attendance.ListByStudent(ctx, student.ID, repositories.Pagination{PageSize: 2})
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(2))
		Expect(items[0].CheckIn).NotTo(BeZero())
	})
})

var _ = Describe("TreinoRepository", func() {
	It("guarda os exercícios em jsonb e filtra por aluno", func() {
		ctx := context.Background()
		treinos := postgres.NewTreinoRepository(db)
		student := createStudent("ana@academia.com")
		instructor := createUser("caio@academia.com", entities.RoleInstructor)
		carga := 40.0

		treino := &entities.Treino{
			Titulo:      "Treino A",
			Categoria:   "hipertrofia",
			AlunoID:     student.UserID,
			InstrutorID: instructor.ID,
			Exercicios: []entities.Exercicio{
				{Nome: "Supino", Series: 4, Repeticoes: 10, Carga: &carga, Descanso: 60},
				{Nome: "Remada", Series: 3, Repeticoes: 12},
			},
		}
		Expect(treinos.Create(ctx, treino)).To(Succeed())

		found, err := treinos.FindByID(ctx, treino.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(found.Exercicios).To(HaveLen(2))
		Expect(*found.Exercicios[0].Carga).To(Equal(40.0))
		Expect(found.Exercicios[1].Carga).To(BeNil())

		aluno := student.UserID
		list, err := treinos.List(ctx, repositories.TreinoFilters{AlunoID: &aluno})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))

		other := instructor.ID
		list, err = treinos.List(ctx, repositories.TreinoFilters{AlunoID: &other})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(BeEmpty())

		Expect(treinos.Delete(ctx, treino.ID)).To(Succeed())
		gone, err := treinos.FindByID(ctx, treino.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(gone).To(BeNil())
	})
})

var _ = Describe("NotificationRepository", func() {
	It("marca como lida e conta as não lidas", func() {
		ctx := context.Background()
		notifications := postgres.NewNotificationRepository(db)
		user := createUser("ana@academia.com", entities.RoleStudent)

		first := &entities.Notification{UserID: user.ID, Type: entities.NotificationPayment, Title: "Pagamento confirmado"}
		second := &entities.Notification{UserID: user.ID, Type: entities.NotificationSystem, Title: "Bem-vinda"}
		Expect(notifications.Create(ctx, first)).To(Succeed())
		Expect(notifications.Create(ctx, second)).To(Succeed())

		Expect(notifications.MarkAsRead(ctx, first.ID)).To(Succeed())

		unread, err := notifications.CountUnread(ctx, user.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(unread).To(Equal(int64(1)))

		list, err := notifications.List(ctx, repositories.NotificationFilters{UserID: user.ID, UnreadOnly: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].ID).To(Equal(second.ID))

		err = notifications.MarkAsRead(ctx, 999)
		Expect(errors.Is(err, domainerrors.ErrNotificationNotFound)).To(BeTrue())
	})
})

var _ = Describe("PaymentRepository", func() {
	It("filtra por aluno, status e período", func() {
		ctx := context.Background()
		payments := postgres.NewPaymentRepository(db)
		student := createStudent("ana@academia.com")

		for _, p := range []entities.Payment{
			{StudentID: student.ID, Amount: 100, PaymentDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Status: entities.PaymentRecordPaid, Method: "pix"},
			{StudentID: student.ID, Amount: 100, PaymentDate: time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC), Status: entities.PaymentRecordPaid},
			{StudentID: student.ID, Amount: 100, PaymentDate: time.Date(2024, 5, 5, 0, 0, 0, 0, time.UTC), Status: entities.PaymentRecordPending},
		} {
			payment := p
			Expect(payments.Create(ctx, &payment)).To(Succeed())
		}

		status := entities.PaymentRecordPaid
		from := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
		list, err := payments.List(ctx, repositories.PaymentFilters{StudentID: &student.ID, Status: &status, From: &from})
		Expect(err).NotTo(HaveOccurred())
		Expect(list).To(HaveLen(1))
		Expect(list[0].PaymentDate.Format("2006-01-02")).To(Equal("2024-04-05"))

		err = payments.Create(ctx, &entities.Payment{StudentID: 999, Amount: 10, PaymentDate: from, Status: entities.PaymentRecordPaid})
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("UnitOfWork", func() {
	It("desfaz tudo o que foi gravado quando a função falha", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)
		boom := errors.New("falha no meio")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			addr, _ := valueobjects.NewEmail("ana@academia.com")
			user := &entities.User{Email: addr, Name: "Ana", PasswordHash: "x", Role: entities.RoleStudent, Status: entities.UserStatusActive}
			if err := users.Create(txCtx, user); err != nil {
				return err
			}
			return boom
		})
		Expect(err).To(MatchError(boom))

		found, err := users.FindByEmail(ctx, "ana@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())
	})

	It("confirma as gravações quando a função termina sem erro", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			addr, _ := valueobjects.NewEmail("ana@academia.com")
			return users.Create(txCtx, &entities.User{Email: addr, Name: "Ana", PasswordHash: "x", Role: entities.RoleStudent, Status: entities.UserStatusActive})
		})
		Expect(err).NotTo(HaveOccurred())

		found, err := users.FindByEmail(ctx, "ana@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).NotTo(BeNil())
	})

	newUser := func(email string) *entities.User {
		addr, err := valueobjects.NewEmail(email)
		Expect(err).NotTo(HaveOccurred())
		return &entities.User{Email: addr, Name: "Teste", PasswordHash: "x", Role: entities.RoleStudent, Status: entities.UserStatusActive}
	}

	It("desfaz só o trecho aninhado quando a transação interna falha", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)
		boom := errors.New("falha interna")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := users.Create(txCtx, newUser("externo@academia.com")); err != nil {
				return err
			}
			innerErr := uow.WithTransaction(txCtx, func(innerCtx context.Context) error {
				if err := users.Create(innerCtx, newUser("interno@academia.com")); err != nil {
					return err
				}
				return boom
			})
			Expect(innerErr).To(MatchError(boom))
			return nil
		})
		Expect(err).NotTo(HaveOccurred())

		outer, err := users.FindByEmail(ctx, "externo@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(outer).NotTo(BeNil())
		inner, err := users.FindByEmail(ctx, "interno@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(inner).To(BeNil())
	})

	It("continua usável depois de um erro de SQL no trecho aninhado", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := users.Create(txCtx, newUser("primeiro@academia.com")); err != nil {
				return err
			}
			dupErr := uow.WithTransaction(txCtx, func(innerCtx context.Context) error {
				return users.Create(innerCtx, newUser("primeiro@academia.com"))
			})
			Expect(dupErr).To(MatchError(domainerrors.ErrEmailAlreadyExists))
			return users.Create(txCtx, newUser("segundo@academia.com"))
		})
		Expect(err).NotTo(HaveOccurred())

		all, err := users.List(ctx, repositories.UserFilters{})
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(2))
	})

	It("desfaz tudo quando o erro aninhado é propagado", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)
		boom := errors.New("falha propagada")

		err := uow.WithTransaction(ctx, func(txCtx context.Context) error {
			if err := users.Create(txCtx, newUser("externo@academia.com")); err != nil {
				return err
			}
			return uow.WithTransaction(txCtx, func(context.Context) error { return boom })
		})
		Expect(err).To(MatchError(boom))

		found, err := users.FindByEmail(ctx, "externo@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(found).To(BeNil())
	})

	It("aceita Begin, Rollback e Commit manuais", func() {
		ctx := context.Background()
		uow := postgres.NewUnitOfWork(db)
		users := postgres.NewUserRepository(db)

		txCtx, err := uow.Begin(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(users.Create(txCtx, newUser("mantido@academia.com"))).To(Succeed())

		spCtx, err := uow.Begin(txCtx)
		Expect(err).NotTo(HaveOccurred())
		Expect(users.Create(spCtx, newUser("descartado@academia.com"))).To(Succeed())
		Expect(uow.Rollback(spCtx)).To(Succeed())

		Expect(uow.Commit(txCtx)).To(Succeed())

		kept, err := users.FindByEmail(ctx, "mantido@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(kept).NotTo(BeNil())
		dropped, err := users.FindByEmail(ctx, "descartado@academia.com")
		Expect(err).NotTo(HaveOccurred())
		Expect(dropped).To(BeNil())
	})
})
