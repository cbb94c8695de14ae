package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário
type CreateUserRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Role     string  `json:"role" binding:"omitempty,oneof=admin instructor student"`
	Gender   *string `json:"gender" binding:"omitempty,max=20"`
}

// UpdateUserRequest representa a requisição para atualizar um usuário
type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Password *string `json:"password" binding:"omitempty,min=6,max=72"`
	Role     *string `json:"role" binding:"omitempty,oneof=admin instructor student"`
	Status   *string `json:"status" binding:"omitempty,oneof=active inactive"`
	Gender   *string `json:"gender" binding:"omitempty,max=20"`
}

// UserListQuery são os filtros aceitos na listagem de usuários
type UserListQuery struct {
	PageQuery
	Role   string `form:"role" binding:"omitempty,oneof=admin instructor student"`
	Status string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        uint64    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Gender    *string   `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		Role:      string(user.Role),
		Status:    string(user.Status),
		Gender:    user.Gender,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
