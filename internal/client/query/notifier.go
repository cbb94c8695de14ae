package query

import "github.com/rafabene/academia-backend/internal/domain/ports"

// Notifier exibe o resultado de uma mutação ao usuário
type Notifier interface {
	Success(message string)
	Failure(message string, err error)
}

// LogNotifier registra as notificações no logger da aplicação
type LogNotifier struct {
	logger ports.Logger
}

func NewLogNotifier(logger ports.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Info(message, "outcome", "success")
}

func (n *LogNotifier) Failure(message string, err error) {
	n.logger.Error(message, "outcome", "failure", "error", err)
}
