package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

type loggingMiddleware struct {
	next   ports.SettingsStore
	logger *slog.Logger
}

// NewLoggingMiddleware logs every store call at debug level and failures at warn.
// A missing record on Load is not a failure.
func NewLoggingMiddleware(logger *slog.Logger) Middleware {
	return func(next ports.SettingsStore) ports.SettingsStore {
		return &loggingMiddleware{
			next:   next,
			logger: logger.With("svc", "storage"),
		}
	}
}

func (m *loggingMiddleware) log(ctx context.Context, op, document string, start time.Time, err error) {
	attrs := []any{"op", op, "duration", time.Since(start)}
	if document != "" {
		attrs = append(attrs, "document", document)
	}
	if err != nil && !errors.Is(err, domain.ErrSettingsNotFound) {
		m.logger.WarnContext(ctx, "store call failed", append(attrs, "error", err)...)
		return
	}
	m.logger.DebugContext(ctx, "store call", attrs...)
}

func (m *loggingMiddleware) Save(ctx context.Context, document string, settings *domain.Settings) error {
	start := time.Now()
	err := m.next.Save(ctx, document, settings)
	m.log(ctx, "save", document, start, err)
	return err
}

func (m *loggingMiddleware) Load(ctx context.Context, document string) (*domain.Settings, error) {
	start := time.Now()
	settings, err := m.next.Load(ctx, document)
	m.log(ctx, "load", document, start, err)
	return settings, err
}

func (m *loggingMiddleware) Delete(ctx context.Context, document string) error {
	start := time.Now()
	err := m.next.Delete(ctx, document)
	m.log(ctx, "delete", document, start, err)
	return err
}

func (m *loggingMiddleware) List(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := m.next.List(ctx)
	m.log(ctx, "list", "", start, err)
	return keys, err
}
