package dto

import (
	"time"

	"github.com/rafabene/academia-backend/internal/domain/entities"
)

// CreateInstructorRequest cria o perfil de instrutor de um usuário existente
type CreateInstructorRequest struct {
	UserID         uint64  `json:"user_id" binding:"required,gt=0"`
	Phone          string  `json:"phone" binding:"omitempty,max=20"`
	Bio            string  `json:"bio"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url,max=500"`
	Specialization string  `json:"specialization" binding:"omitempty,max=255"`
}

// UpdateInstructorRequest atualiza campos do instrutor
type UpdateInstructorRequest struct {
	Phone          *string `json:"phone" binding:"omitempty,max=20"`
	Bio            *string `json:"bio"`
	PhotoURL       *string `json:"photo_url" binding:"omitempty,url,max=500"`
	Specialization *string `json:"specialization" binding:"omitempty,max=255"`
}

// InstructorListQuery são os filtros aceitos na listagem de instrutores
type InstructorListQuery struct {
	PageQuery
	Specialization string `form:"specialization"`
}

// InstructorResponse representa um instrutor
type InstructorResponse struct {
	ID             uint64        `json:"id"`
	UserID         uint64        `json:"user_id"`
	User           *UserResponse `json:"user,omitempty"`
	Phone          string        `json:"phone,omitempty"`
	Bio            string        `json:"bio,omitempty"`
	PhotoURL       *string       `json:"photo_url,omitempty"`
	Specialization string        `json:"specialization,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// ToInstructorResponse converte uma entidade Instructor
func ToInstructorResponse(i *entities.Instructor) InstructorResponse {
	resp := InstructorResponse{
		ID:             i.ID,
		UserID:         i.UserID,
		Phone:          i.Phone,
		Bio:            i.Bio,
		PhotoURL:       i.PhotoURL,
		Specialization: i.Specialization,
		CreatedAt:      i.CreatedAt,
		UpdatedAt:      i.UpdatedAt,
	}
	if i.User != nil {
		user := ToUserResponse(i.User)
		resp.User = &user
	}
	return resp
}

// ToInstructorResponses converte uma lista de instrutores
func ToInstructorResponses(instructors []*entities.Instructor) []InstructorResponse {
	responses := make([]InstructorResponse, len(instructors))
	for i, in := range instructors {
		responses[i] = ToInstructorResponse(in)
	}
	return responses
}
