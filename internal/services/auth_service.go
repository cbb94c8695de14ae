package services

import (
	"context"

	"github.com/rafabene/academia-backend/internal/domain/entities"
	"github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/domain/repositories"
	"github.com/rafabene/academia-backend/internal/domain/valueobjects"
)

// AuthService cuida de cadastro público e login
type AuthService struct {
	users       *UserService
	userRepo    repositories.UserRepository
	studentRepo repositories.StudentRepository
	hasher      ports.PasswordHasher
	tokens      ports.TokenIssuer
	uow         ports.UnitOfWork
	logger      ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	users *UserService,
	userRepo repositories.UserRepository,
	studentRepo repositories.StudentRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		users:       users,
		userRepo:    userRepo,
		studentRepo: studentRepo,
		hasher:      hasher,
		tokens:      tokens,
		uow:         uow,
		logger:      logger,
	}
}

// RegisterInput são os dados do autocadastro
type RegisterInput struct {
	Email    string
	Name     string
	Password string
	Gender   *string
	PlanType entities.PlanType
}

// AuthResult é devolvido por login e cadastro
type AuthResult struct {
	Token string
	User  *entities.User
}

// Register cria um usuário aluno e seu perfil de aluno na mesma transação
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		created, err := s.users.CreateUser(txCtx, CreateUserInput{
			Email:    input.Email,
			Name:     input.Name,
			Password: input.Password,
			Role:     entities.RoleStudent,
			Gender:   input.Gender,
		})
		if err != nil {
			return err
		}

		student := &entities.Student{
			UserID:        created.ID,
			PlanType:      input.PlanType,
			PaymentStatus: entities.PaymentStatusPending,
		}
		if err := s.studentRepo.Create(txCtx, student); err != nil {
			return err
		}

		user = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login valida as credenciais e emite um token
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		s.logger.Warn("invalid login attempt", "email", normalized.String())
		return nil, errors.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, errors.ErrInactiveUser
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return &AuthResult{Token: token, User: user}, nil
}
