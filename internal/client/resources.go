package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
)

// Resource é um recurso REST com listagem paginada e CRUD por id
type Resource[T, C, U any] struct {
	client *Client
	path   string
}

// NewResource cria um Resource montado em path (ex.: "/instructors")
func NewResource[T, C, U any](c *Client, path string) Resource[T, C, U] {
	return Resource[T, C, U]{client: c, path: path}
}

// Path devolve o caminho base do recurso
func (r Resource[T, C, U]) Path() string {
	return r.path
}

// List devolve a página pedida em query (page, page_size e filtros)
func (r Resource[T, C, U]) List(ctx context.Context, query url.Values) ([]T, error) {
	var out dto.ListResponse[T]
	if err := r.client.do(ctx, http.MethodGet, r.path, query, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (r Resource[T, C, U]) Get(ctx context.Context, id string) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, r.path+"/"+url.PathEscape(id), nil, nil, &out)
	return out, err
}

func (r Resource[T, C, U]) Create(ctx context.Context, in C) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPost, r.path, nil, in, &out)
	return out, err
}

func (r Resource[T, C, U]) Update(ctx context.Context, id string, in U) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPut, r.path+"/"+url.PathEscape(id), nil, in, &out)
	return out, err
}

func (r Resource[T, C, U]) Delete(ctx context.Context, id string) error {
	return r.client.do(ctx, http.MethodDelete, r.path+"/"+url.PathEscape(id), nil, nil, nil)
}

type (
	UserResource       = Resource[dto.UserResponse, dto.CreateUserRequest, dto.UpdateUserRequest]
	StudentResource    = Resource[dto.StudentResponse, dto.CreateStudentRequest, dto.UpdateStudentRequest]
	InstructorResource = Resource[dto.InstructorResponse, dto.CreateInstructorRequest, dto.UpdateInstructorRequest]
	TreinoResource     = Resource[dto.TreinoResponse, dto.CreateTreinoRequest, dto.UpdateTreinoRequest]
	PaymentResource    = Resource[dto.PaymentResponse, dto.CreatePaymentRequest, dto.UpdatePaymentRequest]
)

func (c *Client) Users() UserResource {
	return NewResource[dto.UserResponse, dto.CreateUserRequest, dto.UpdateUserRequest](c, "/users")
}

func (c *Client) Students() StudentResource {
	return NewResource[dto.StudentResponse, dto.CreateStudentRequest, dto.UpdateStudentRequest](c, "/students")
}

func (c *Client) Instructors() InstructorResource {
	return NewResource[dto.InstructorResponse, dto.CreateInstructorRequest, dto.UpdateInstructorRequest](c, "/instructors")
}

func (c *Client) Treinos() TreinoResource {
	return NewResource[dto.TreinoResponse, dto.CreateTreinoRequest, dto.UpdateTreinoRequest](c, "/treinos")
}

func (c *Client) Payments() PaymentResource {
	return NewResource[dto.PaymentResponse, dto.CreatePaymentRequest, dto.UpdatePaymentRequest](c, "/payments")
}

// MarkAsRead é o corpo vazio da atualização de notificação
type MarkAsRead struct{}

// NotificationResource só permite marcar como lida; não há PUT
type NotificationResource struct {
	Resource[dto.NotificationResponse, dto.CreateNotificationRequest, MarkAsRead]
}

func (c *Client) Notifications() NotificationResource {
	return NotificationResource{
		NewResource[dto.NotificationResponse, dto.CreateNotificationRequest, MarkAsRead](c, "/notifications"),
	}
}

// Update marca a notificação como lida
func (r NotificationResource) Update(ctx context.Context, id string, _ MarkAsRead) (dto.NotificationResponse, error) {
	var out dto.NotificationResponse
	err := r.client.do(ctx, http.MethodPatch, r.path+"/"+url.PathEscape(id)+"/read", nil, nil, &out)
	return out, err
}

// AssignInstructor vincula um instrutor ao aluno
func (c *Client) AssignInstructor(ctx context.Context, studentID string, req dto.AssignInstructorRequest) (dto.StudentInstructorResponse, error) {
	var out dto.StudentInstructorResponse
	err := c.do(ctx, http.MethodPost, "/students/"+url.PathEscape(studentID)+"/instructors", nil, req, &out)
	return out, err
}

// CheckIn registra a presença do aluno
func (c *Client) CheckIn(ctx context.Context, studentID string) (dto.AttendanceResponse, error) {
	var out dto.AttendanceResponse
	err := c.do(ctx, http.MethodPost, "/students/"+url.PathEscape(studentID)+"/checkins", nil, nil, &out)
	return out, err
}

// Dashboard devolve os agregados do painel
func (c *Client) Dashboard(ctx context.Context) (entities.DashboardSummary, error) {
	var out entities.DashboardSummary
	err := c.do(ctx, http.MethodGet, "/dashboard", nil, nil, &out)
	return out, err
}
