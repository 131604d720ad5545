package ports

import (
	"context"

	"github.com/aretw0/quest/pkg/domain"
)

// SettingsStore defines the interface for persisting the per-document settings record.
// It plays the role of the host's document settings storage.
type SettingsStore interface {
	// Save persists the settings for a given document key.
	Save(ctx context.Context, document string, settings *domain.Settings) error

	// Load retrieves the settings for a given document key.
	// Returns domain.ErrSettingsNotFound if nothing was saved for the document.
	Load(ctx context.Context, document string) (*domain.Settings, error)

	// Delete removes the settings for a given document key.
	Delete(ctx context.Context, document string) error

	// List returns the keys of every document with persisted settings.
	List(ctx context.Context) ([]string, error)
}
