package logging

import (
	"context"
	"log/slog"
)

// BlackholeHandler is a slog.Handler that drops every record.
type BlackholeHandler struct{}

func (BlackholeHandler) Enabled(context.Context, slog.Level) bool {
	return false
}

func (BlackholeHandler) Handle(context.Context, slog.Record) error {
	return nil
}

func (h BlackholeHandler) WithAttrs([]slog.Attr) slog.Handler {
	return h
}

func (h BlackholeHandler) WithGroup(string) slog.Handler {
	return h
}

// Discard returns a logger backed by BlackholeHandler.
func Discard() *slog.Logger {
	return slog.New(BlackholeHandler{})
}

// OrDiscard returns logger, or a discarding logger when it is nil.
func OrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return Discard()
	}
	return logger
}
