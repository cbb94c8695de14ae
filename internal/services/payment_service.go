package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
)

// PaymentService registra pagamentos e mantém a situação financeira do aluno
type PaymentService struct {
	paymentRepo      repositories.PaymentRepository
	studentRepo      repositories.StudentRepository
	notificationRepo repositories.NotificationRepository
	notifications    *NotificationService
	uow              ports.UnitOfWork
	logger           ports.Logger
	now              func() time.Time
}

// NewPaymentService cria um novo PaymentService
func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	studentRepo repositories.StudentRepository,
	notificationRepo repositories.NotificationRepository,
	notifications *NotificationService,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *PaymentService {
	return &PaymentService{
		paymentRepo:      paymentRepo,
		studentRepo:      studentRepo,
		notificationRepo: notificationRepo,
		notifications:    notifications,
		uow:              uow,
		logger:           logger,
		now:              time.Now,
	}
}

// CreatePaymentInput representa um novo lançamento
type CreatePaymentInput struct {
	StudentID   uint64
	Amount      float64
	PaymentDate *time.Time
	Status      entities.PaymentRecordStatus
	Method      string
}

// UpdatePaymentInput contém os campos alteráveis; nil mantém o valor atual
type UpdatePaymentInput struct {
	Amount      *float64
	PaymentDate *time.Time
	Status      *entities.PaymentRecordStatus
	Method      *string
}

// CreatePayment grava o pagamento. Quando pago, atualiza os campos financeiros
// do aluno e cria uma notificação do tipo payment na mesma transação.
func (s *PaymentService) CreatePayment(ctx context.Context, input CreatePaymentInput) (*entities.Payment, error) {
	status := input.Status
	if status == "" {
		status = entities.PaymentRecordPaid
	}
	paidAt := s.now().UTC()
	if input.PaymentDate != nil {
		paidAt = *input.PaymentDate
	}

	payment := &entities.Payment{
		StudentID:   input.StudentID,
		Amount:      input.Amount,
		PaymentDate: paidAt,
		Status:      status,
		Method:      strings.TrimSpace(input.Method),
	}
	if err := payment.Validate(); err != nil {
		return nil, errors.Validation(err)
	}

	var notification *entities.Notification
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		student, err := s.studentRepo.FindByID(txCtx, input.StudentID)
		if err != nil {
			return err
		}
		if student == nil {
			return errors.ErrStudentNotFound
		}

		if err := s.paymentRepo.Create(txCtx, payment); err != nil {
			return err
		}
		if payment.Status != entities.PaymentRecordPaid {
			return nil
		}

		student.RegisterPayment(payment.Amount, payment.Method, payment.PaymentDate)
		if err := s.studentRepo.Update(txCtx, student); err != nil {
			return err
		}

		notification = &entities.Notification{
			UserID: student.UserID,
			Type:   entities.NotificationPayment,
			Title:  fmt.Sprintf("Pagamento de R$ %.2f confirmado", payment.Amount),
		}
		return s.notificationRepo.Create(txCtx, notification)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("payment registered", "payment_id", payment.ID, "student_id", payment.StudentID, "status", payment.Status)
	if notification != nil && s.notifications != nil {
		s.notifications.Publish(ctx, notification)
	}
	return payment, nil
}

// GetPayment busca um pagamento por ID
func (s *PaymentService) GetPayment(ctx context.Context, id uint64) (*entities.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, errors.ErrPaymentNotFound
	}
	return payment, nil
}

// ListPayments lista pagamentos com filtros
func (s *PaymentService) ListPayments(ctx context.Context, filters repositories.PaymentFilters) ([]*entities.Payment, error) {
	return s.paymentRepo.List(ctx, filters)
}

// UpdatePayment corrige um lançamento sem recalcular a situação do aluno
func (s *PaymentService) UpdatePayment(ctx context.Context, id uint64, input UpdatePaymentInput) (*entities.Payment, error) {
	payment, err := s.GetPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Amount != nil {
		payment.Amount = *input.Amount
	}
	if input.PaymentDate != nil {
		payment.PaymentDate = *input.PaymentDate
	}
	if input.Status != nil {
		payment.Status = *input.Status
	}
	if input.Method != nil {
		payment.Method = strings.TrimSpace(*input.Method)
	}

	if err := payment.Validate(); err != nil {
		return nil, errors.Validation(err)
	}
	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// DeletePayment remove um lançamento
func (s *PaymentService) DeletePayment(ctx context.Context, id uint64) error {
	if _, err := s.GetPayment(ctx, id); err != nil {
		return err
	}
	return s.paymentRepo.Delete(ctx, id)
}
