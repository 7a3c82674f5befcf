package mybank

import "log/slog"

// logEvents records account lifecycle events on the application log.
type logEvents struct {
	logger *slog.Logger
}

func NewLogEvents(logger *slog.Logger) Events {
	return &logEvents{logger: logger}
}

func (l *logEvents) AccountCreated(id string, name string, email string) {
	l.logger.Info("account created", slog.String("id", id), slog.String("email", email))
}
