package ports

// Logger é o log estruturado da aplicação. args são pares chave/valor
// ("user_id", id); mensagens em inglês e minúsculas.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With devolve um Logger que inclui args em todas as mensagens
	With(args ...any) Logger
}
