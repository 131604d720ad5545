package middleware

import (
	"context"

	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
)

// Observer receives the operation name and result of every store call.
type Observer func(op string, err error)

type observerMiddleware struct {
	next    ports.SettingsStore
	observe Observer
}

// NewObserverMiddleware reports each call to observe (e.g. Metrics.ObserveStore).
func NewObserverMiddleware(observe Observer) Middleware {
	return func(next ports.SettingsStore) ports.SettingsStore {
		return &observerMiddleware{next: next, observe: observe}
	}
}

func (m *observerMiddleware) Save(ctx context.Context, document string, settings *domain.Settings) error {
	err := m.next.Save(ctx, document, settings)
	m.observe("save", err)
	return err
}

func (m *observerMiddleware) Load(ctx context.Context, document string) (*domain.Settings, error) {
	settings, err := m.next.Load(ctx, document)
	m.observe("load", err)
	return settings, err
}

func (m *observerMiddleware) Delete(ctx context.Context, document string) error {
	err := m.next.Delete(ctx, document)
	m.observe("delete", err)
	return err
}

func (m *observerMiddleware) List(ctx context.Context) ([]string, error) {
	keys, err := m.next.List(ctx)
	m.observe("list", err)
	return keys, err
}
