package dto

// RegisterRequest cria a conta de um aluno
type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email,max=255"`
	Name     string  `json:"name" binding:"required,min=2,max=255"`
	Password string  `json:"password" binding:"required,min=6,max=72"`
	Gender   *string `json:"gender" binding:"omitempty,max=20"`
	PlanType string  `json:"plan_type" binding:"omitempty,oneof=mensal trimestral semestral anual"`
}

// LoginRequest contém as credenciais de acesso
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse devolve o token de acesso e o usuário autenticado
type AuthResponse struct {
	Token       string       `json:"token"`
	TokenType   string       `json:"token_type"`
	User        UserResponse `json:"user"`
	Permissions []string     `json:"permissions"`
}
