package http

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/academia-backend/internal/domain/errors"
	"github.com/rafabene/academia-backend/internal/domain/ports"
	"github.com/rafabene/academia-backend/internal/handlers/dto"
)

// errInvalidID sinaliza um parâmetro de rota que não é um identificador válido
var errInvalidID = stderrors.New("invalid id")

// statusByType mapeia os tipos de problema do domínio para status HTTP
var statusByType = map[string]int{
	domainerrors.ProblemTypeValidation:   http.StatusBadRequest,
	domainerrors.ProblemTypeBadRequest:   http.StatusBadRequest,
	domainerrors.ProblemTypeUnauthorized: http.StatusUnauthorized,
	domainerrors.ProblemTypeForbidden:    http.StatusForbidden,
	domainerrors.ProblemTypeNotFound:     http.StatusNotFound,
	domainerrors.ProblemTypeConflict:     http.StatusConflict,
}

// ErrorHandler converte os erros acumulados em c.Errors numa resposta RFC 7807.
// Validação vira 400 com a lista de campos, autenticação vira 401 e o restante
// sem mapeamento vira 500 com mensagem genérica.
func ErrorHandler(logger ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, response := problemFor(c, err)
		if status >= http.StatusInternalServerError {
			logger.Error("unhandled error",
				"error", err,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
		}
		writeProblem(c, status, response)
	}
}

// Recovery devolve 500 em formato RFC 7807 quando um handler entra em pânico
func Recovery(logger ports.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		writeProblem(c, http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		c.Abort()
	})
}

func problemFor(c *gin.Context, err error) (int, dto.ErrorResponse) {
	var validationErrs validator.ValidationErrors
	if stderrors.As(err, &validationErrs) {
		return http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, translateValidation(c, validationErrs))
	}

	if isMalformedInput(err) {
		return http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.bad_request.detail")
	}
	if stderrors.Is(err, errInvalidID) {
		return http.StatusBadRequest, dto.BadRequestErrorResponseI18n(c, "error.invalid_id")
	}

	var domainErr *domainerrors.DomainError
	if stderrors.As(err, &domainErr) {
		status, ok := statusByType[domainErr.Type]
		if ok {
			response := dto.NewErrorResponseI18n(c, domainErr.Type, domainErr.Title, domainErr.Message, status)
			if domainErr.Type == domainerrors.ProblemTypeValidation && domainErr.Err != nil {
				response.Errors = []dto.ValidationError{{Message: domainErr.Err.Error()}}
			}
			return status, response
		}
	}

	return http.StatusInternalServerError, dto.InternalErrorResponseI18n(c)
}

func isMalformedInput(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var numErr *strconv.NumError
	var timeErr *time.ParseError
	return stderrors.Is(err, io.EOF) ||
		stderrors.Is(err, io.ErrUnexpectedEOF) ||
		stderrors.As(err, &syntaxErr) ||
		stderrors.As(err, &typeErr) ||
		stderrors.As(err, &numErr) ||
		stderrors.As(err, &timeErr)
}

func translateValidation(c *gin.Context, errs validator.ValidationErrors) []dto.ValidationError {
	result := make([]dto.ValidationError, 0, len(errs))
	for _, fe := range errs {
		params := map[string]interface{}{"Field": fe.Field(), "Param": fe.Param()}

		key := "validation." + fe.Tag()
		message := dto.T(c, key, params)
		if message == key {
			message = dto.T(c, "validation.default", params)
		}

		var value string
		if v, ok := fe.Value().(string); ok && fe.Tag() != "required" && !strings.Contains(fe.Field(), "password") {
			value = v
		}

		result = append(result, dto.ValidationError{
			Field:   fe.Field(),
			Message: message,
			Tag:     fe.Tag(),
			Value:   value,
		})
	}
	return result
}

func writeProblem(c *gin.Context, status int, response dto.ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.JSON(status, response)
}

// parseID lê um identificador numérico da rota
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}
