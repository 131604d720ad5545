package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/quest/pkg/domain"
)

const (
	ext     = ".json"
	tmpGlob = ".*.tmp"
)

// Store implements ports.SettingsStore using the local filesystem.
// It stores one JSON file per document in a configured directory.
type Store struct {
	BasePath string
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".quest/settings".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".quest", "settings")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(document string) (string, error) {
	if document == "" {
		return "", fmt.Errorf("document cannot be empty")
	}
	if strings.ContainsAny(document, `/\`) || document == "." || document == ".." {
		return "", fmt.Errorf("invalid document key %q", document)
	}
	return filepath.Join(s.BasePath, document+ext), nil
}

// Save persists the settings to a JSON file atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Save(ctx context.Context, document string, settings *domain.Settings) error {
	destPath, err := s.path(document)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	// Same directory keeps the rename on one filesystem.
	tmpFile, err := os.CreateTemp(s.BasePath, document+ext+tmpGlob)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}

	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	// On Windows, os.Rename fails if dest exists.
	if _, err := os.Stat(destPath); err == nil {
		if err := os.Remove(destPath); err != nil {
			return fmt.Errorf("failed to remove existing settings file for overwrite: %w", err)
		}
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file to settings file: %w", err)
	}

	return nil
}

// Load retrieves the settings from a JSON file.
func (s *Store) Load(ctx context.Context, document string) (*domain.Settings, error) {
	filePath, err := s.path(document)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings domain.Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return &settings, nil
}

// Delete removes the settings file.
func (s *Store) Delete(ctx context.Context, document string) error {
	filePath, err := s.path(document)
	if err != nil {
		return err
	}

	err = os.Remove(filePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete settings file: %w", err)
	}

	return nil
}

// List returns the keys of every stored document.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	var documents []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ext {
			continue
		}
		documents = append(documents, strings.TrimSuffix(name, ext))
	}
	sort.Strings(documents)

	return documents, nil
}
