package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
)

type paymentFixture struct {
	svc           *PaymentService
	payments      *fakePaymentRepo
	students      *fakeStudentRepo
	notifications *fakeNotificationRepo
	publisher     *recordingPublisher
	uow           *fakeUnitOfWork
	student       *entities.Student
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	f := &paymentFixture{
		payments:      newFakePaymentRepo(),
		students:      newFakeStudentRepo(),
		notifications: newFakeNotificationRepo(),
		publisher:     &recordingPublisher{},
		uow:           &fakeUnitOfWork{},
	}
	notificationSvc := NewNotificationService(f.notifications, newFakeUserRepo(), f.publisher, testLogger())
	f.svc = NewPaymentService(f.payments, f.students, f.notifications, notificationSvc, f.uow, testLogger())
	f.svc.now = func() time.Time { return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC) }

	f.student = &entities.Student{UserID: 7, PlanType: entities.PlanTrimestral, PaymentStatus: entities.PaymentStatusOverdue}
	if err := f.students.Create(context.Background(), f.student); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestPaymentService_CreatePaidPayment(t *testing.T) {
	f := newPaymentFixture(t)

	payment, err := f.svc.CreatePayment(context.Background(), CreatePaymentInput{
		StudentID: f.student.ID, Amount: 249.90, Method: "pix",
	})
	if err != nil {
		t.Fatalf("esperava sucesso, obteve %v", err)
	}
	if payment.Status != entities.PaymentRecordPaid {
		t.Errorf("esperava status paid, obteve %s", payment.Status)
	}

	student, _ := f.students.FindByID(context.Background(), f.student.ID)
	if student.PaymentStatus != entities.PaymentStatusPaid {
		t.Errorf("esperava aluno em dia, obteve %s", student.PaymentStatus)
	}
	wantNext := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if student.NextPaymentDate == nil || !student.NextPaymentDate.Equal(wantNext) {
		t.Errorf("esperava próximo vencimento %v, obteve %v", wantNext, student.NextPaymentDate)
	}
	if student.PaymentMethod == nil || *student.PaymentMethod != "pix" {
		t.Errorf("esperava método pix, obteve %v", student.PaymentMethod)
	}

	if len(f.notifications.items) != 1 {
		t.Fatalf("esperava 1 notificação, obteve %d", len(f.notifications.items))
	}
	for _, n := range f.notifications.items {
		if n.UserID != 7 || n.Type != entities.NotificationPayment {
			t.Errorf("esperava notificação payment para o usuário 7, obteve %+v", n)
		}
	}
	if len(f.publisher.published) != 1 {
		t.Errorf("esperava 1 publicação, obteve %d", len(f.publisher.published))
	}
}

func TestPaymentService_CreatePendingPayment(t *testing.T) {
	f := newPaymentFixture(t)

	_, err := f.svc.CreatePayment(context.Background(), CreatePaymentInput{
		StudentID: f.student.ID, Amount: 100, Status: entities.PaymentRecordPending,
	})
	if err != nil {
		t.Fatalf("esperava sucesso, obteve %v", err)
	}
	if f.students.updates != 0 {
		t.Errorf("esperava aluno inalterado, obteve %d updates", f.students.updates)
	}
	if len(f.notifications.items) != 0 || len(f.publisher.published) != 0 {
		t.Error("esperava nenhuma notificação para pagamento pendente")
	}
}

func TestPaymentService_CreatePaymentErrors(t *testing.T) {
	t.Run("aluno inexistente", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.svc.CreatePayment(context.Background(), CreatePaymentInput{StudentID: 999, Amount: 10})
		if !errors.Is(err, domainerrors.ErrStudentNotFound) {
			t.Errorf("esperava ErrStudentNotFound, obteve %v", err)
		}
		if f.uow.rollbacks != 1 {
			t.Errorf("esperava rollback, obteve %d", f.uow.rollbacks)
		}
	})

	t.Run("valor não positivo", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.svc.CreatePayment(context.Background(), CreatePaymentInput{StudentID: f.student.ID, Amount: 0})
		var de *domainerrors.DomainError
		if !errors.As(err, &de) || de.Type != domainerrors.ProblemTypeValidation {
			t.Errorf("esperava erro de validação, obteve %v", err)
		}
	})

	t.Run("falha ao gravar não publica", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.payments.createErr = errors.New("db down")
		if _, err := f.svc.CreatePayment(context.Background(), CreatePaymentInput{StudentID: f.student.ID, Amount: 10}); err == nil {
			t.Fatal("esperava erro, obteve nil")
		}
		if len(f.publisher.published) != 0 {
			t.Error("esperava nenhuma publicação após falha")
		}
	})
}
