package query

import (
	"context"
	"fmt"

	"github.com/rafabene/academia-backend/internal/client"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
)

// Chaves de cache de cada recurso
var (
	UsersKey         = Key{"users"}
	StudentsKey      = Key{"students"}
	InstructorsKey   = Key{"instructors"}
	TreinosKey       = Key{"treinos"}
	PaymentsKey      = Key{"payments"}
	NotificationsKey = Key{"notifications"}
)

type (
	UserHooks         = ResourceHooks[dto.UserResponse, dto.CreateUserRequest, dto.UpdateUserRequest]
	StudentHooks      = ResourceHooks[dto.StudentResponse, dto.CreateStudentRequest, dto.UpdateStudentRequest]
	InstructorHooks   = ResourceHooks[dto.InstructorResponse, dto.CreateInstructorRequest, dto.UpdateInstructorRequest]
	TreinoHooks       = ResourceHooks[dto.TreinoResponse, dto.CreateTreinoRequest, dto.UpdateTreinoRequest]
	PaymentHooks      = ResourceHooks[dto.PaymentResponse, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]
	NotificationHooks = ResourceHooks[dto.NotificationResponse, dto.CreateNotificationRequest, client.MarkAsRead]
)

var (
	userMessages = Messages{
		Created:      "Usuário criado com sucesso",
		Updated:      "Usuário atualizado com sucesso",
		Deleted:      "Usuário desativado com sucesso",
		CreateFailed: "Erro ao criar usuário",
		UpdateFailed: "Erro ao atualizar usuário",
		DeleteFailed: "Erro ao desativar usuário",
	}
	studentMessages = Messages{
		Created:      "Aluno criado com sucesso",
		Updated:      "Aluno atualizado com sucesso",
		Deleted:      "Aluno removido com sucesso",
		CreateFailed: "Erro ao criar aluno",
		UpdateFailed: "Erro ao atualizar aluno",
		DeleteFailed: "Erro ao remover aluno",
	}
	instructorMessages = Messages{
		Created:      "Instrutor criado com sucesso",
		Updated:      "Instrutor atualizado com sucesso",
		Deleted:      "Instrutor removido com sucesso",
		CreateFailed: "Erro ao criar instrutor",
		UpdateFailed: "Erro ao atualizar instrutor",
		DeleteFailed: "Erro ao remover instrutor",
	}
	treinoMessages = Messages{
		Created:      "Treino criado com sucesso",
		Updated:      "Treino atualizado com sucesso",
		Deleted:      "Treino removido com sucesso",
		CreateFailed: "Erro ao criar treino",
		UpdateFailed: "Erro ao atualizar treino",
		DeleteFailed: "Erro ao remover treino",
	}
	paymentMessages = Messages{
		Created:      "Pagamento registrado com sucesso",
		Updated:      "Pagamento atualizado com sucesso",
		Deleted:      "Pagamento removido com sucesso",
		CreateFailed: "Erro ao registrar pagamento",
		UpdateFailed: "Erro ao atualizar pagamento",
		DeleteFailed: "Erro ao remover pagamento",
	}
	notificationMessages = Messages{
		Created:      "Notificação enviada com sucesso",
		Updated:      "Notificação marcada como lida",
		Deleted:      "Notificação removida com sucesso",
		CreateFailed: "Erro ao enviar notificação",
		UpdateFailed: "Erro ao marcar notificação como lida",
		DeleteFailed: "Erro ao remover notificação",
	}
)

// Hooks reúne os hooks de todos os recursos
type Hooks struct {
	Users         *UserHooks
	Students      *StudentHooks
	Instructors   *InstructorHooks
	Treinos       *TreinoHooks
	Payments      *PaymentHooks
	Notifications *NotificationHooks
}

// NewHooks monta os hooks sobre um cliente da API e um cache já criados
func NewHooks(api *client.Client, cache *Client, notifier Notifier) *Hooks {
	return &Hooks{
		Users: NewResourceHooks[dto.UserResponse, dto.CreateUserRequest, dto.UpdateUserRequest](
			UsersKey, api.Users(), cache, notifier, userMessages),
		Students: NewResourceHooks[dto.StudentResponse, dto.CreateStudentRequest, dto.UpdateStudentRequest](
			StudentsKey, api.Students(), cache, notifier, studentMessages),
		Instructors: NewResourceHooks[dto.InstructorResponse, dto.CreateInstructorRequest, dto.UpdateInstructorRequest](
			InstructorsKey, api.Instructors(), cache, notifier, instructorMessages),
		Treinos: NewResourceHooks[dto.TreinoResponse, dto.CreateTreinoRequest, dto.UpdateTreinoRequest](
			TreinosKey, api.Treinos(), cache, notifier, treinoMessages),
		// pagamentos alteram os campos de cobrança do aluno e geram notificação
		Payments: NewResourceHooks[dto.PaymentResponse, dto.CreatePaymentRequest, dto.UpdatePaymentRequest](
			PaymentsKey, api.Payments(), cache, notifier, paymentMessages, StudentsKey, NotificationsKey),
		Notifications: NewResourceHooks[dto.NotificationResponse, dto.CreateNotificationRequest, client.MarkAsRead](
			NotificationsKey, api.Notifications(), cache, notifier, notificationMessages),
	}
}

// Setup cria o cliente, o Store indicado na configuração e os hooks.
// O close devolvido libera o Store.
func Setup(ctx context.Context, cfg client.Config, logger ports.Logger) (*Hooks, func() error, error) {
	var (
		store   Store = NewMemoryStore()
		closeFn       = func() error { return nil }
	)
	if cfg.CacheRedisURL != "" {
		redisStore, err := NewRedisStoreFromURL(ctx, cfg.CacheRedisURL, cfg.CachePrefix)
		if err != nil {
			return nil, nil, fmt.Errorf("query cache: %w", err)
		}
		store, closeFn = redisStore, redisStore.Close
	}

	cache := NewClient(store, cfg.CacheTTL, logger)
	return NewHooks(client.New(cfg), cache, NewLogNotifier(logger)), closeFn, nil
}
