package errors

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// Business errors
// Nota: Title e Message são message IDs para i18n.
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound         = newError(ProblemTypeNotFound, "error.not_found.title", "error.user_not_found")
	ErrStudentNotFound      = newError(ProblemTypeNotFound, "error.not_found.title", "error.student_not_found")
	ErrInstructorNotFound   = newError(ProblemTypeNotFound, "error.not_found.title", "error.instructor_not_found")
	ErrTreinoNotFound       = newError(ProblemTypeNotFound, "error.not_found.title", "error.treino_not_found")
	ErrNotificationNotFound = newError(ProblemTypeNotFound, "error.not_found.title", "error.notification_not_found")
	ErrPaymentNotFound      = newError(ProblemTypeNotFound, "error.not_found.title", "error.payment_not_found")

	ErrEmailAlreadyExists        = newError(ProblemTypeConflict, "error.conflict.title", "error.email_already_exists")
	ErrProfileAlreadyExists      = newError(ProblemTypeConflict, "error.conflict.title", "error.profile_already_exists")
	ErrInstructorAlreadyAssigned = newError(ProblemTypeConflict, "error.conflict.title", "error.instructor_already_assigned")
	ErrConflict                  = newError(ProblemTypeConflict, "error.conflict.title", "error.conflict.detail")

	ErrInvalidCredentials = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.invalid_credentials")
	ErrUnauthorized       = newError(ProblemTypeUnauthorized, "error.unauthorized.title", "error.unauthorized.detail")
	ErrInactiveUser       = newError(ProblemTypeForbidden, "error.forbidden.title", "error.inactive_user")
	ErrForbidden          = newError(ProblemTypeForbidden, "error.forbidden.title", "error.forbidden.detail")
)

// Domain errors
var (
	ErrInvalidEmail = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_email")
	ErrInvalidRole  = newError(ProblemTypeValidation, "error.validation.title", "error.invalid_role")
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func newError(problemType, title, message string) *DomainError {
	return &DomainError{Type: problemType, Title: title, Message: message}
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is compara pelo tipo e mensagem, permitindo errors.Is contra erros enriquecidos via Wrap
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Message == t.Message
}

// Wrap devolve uma cópia do erro de domínio carregando a causa original
func (e *DomainError) Wrap(err error) *DomainError {
	return &DomainError{Type: e.Type, Title: e.Title, Message: e.Message, Err: err}
}

// Validation cria um erro de validação de regra de negócio
func Validation(err error) *DomainError {
	return &DomainError{
		Type:    ProblemTypeValidation,
		Title:   "error.validation.title",
		Message: "error.validation.detail",
		Err:     err,
	}
}
