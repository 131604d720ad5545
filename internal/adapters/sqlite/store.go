package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/aretw0/quest/internal/adapters/sqlite/migrations"
	"github.com/aretw0/quest/internal/logging"
	"github.com/aretw0/quest/pkg/domain"
)

// StoreConfig is the configuration for the SQLite store.
type StoreConfig struct {
	DBPath string
	Logger *slog.Logger
}

func (c *StoreConfig) defaults() error {
	if c.DBPath == "" {
		return fmt.Errorf("db path is required")
	}
	if c.Logger == nil {
		c.Logger = logging.NewNop()
	}
	c.Logger = c.Logger.With("svc", "storage.SQLite")
	return nil
}

// Store implements ports.SettingsStore on a SQLite database.
// The step descriptors live in their own table, ordered by position.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// New opens (or creates) the database and applies pending migrations.
func New(ctx context.Context, cfg StoreConfig) (*Store, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0755); err != nil {
		return nil, fmt.Errorf("could not create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", cfg.DBPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	migrator, err := migrations.NewMigrator(db, cfg.Logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	if err := migrator.Up(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("could not run migrations: %w", err)
	}

	cfg.Logger.Debug("SQLite store initialized", "path", cfg.DBPath)

	return &Store{db: db, logger: cfg.Logger}, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

// Save replaces the settings of a document in a single transaction.
func (s *Store) Save(ctx context.Context, document string, settings *domain.Settings) error {
	if document == "" {
		return fmt.Errorf("document cannot be empty")
	}
	difficulty, err := settings.Difficulty.MarshalText()
	if err != nil {
		return fmt.Errorf("could not encode difficulty: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p := settings.Progress
	_, err = tx.ExecContext(ctx, `
		INSERT INTO settings (document, task_name, task_description, current_step, difficulty, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(document) DO UPDATE SET
			task_name = excluded.task_name,
			task_description = excluded.task_description,
			current_step = excluded.current_step,
			difficulty = excluded.difficulty,
			updated_at = excluded.updated_at
	`, document, p.Name, p.Description, p.CurrentStep, string(difficulty), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("could not upsert settings: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM settings_steps WHERE document = ?`, document); err != nil {
		return fmt.Errorf("could not clear steps: %w", err)
	}

	for i, step := range p.Steps {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO settings_steps (document, position, name, description) VALUES (?, ?, ?, ?)`,
			document, i, step.Name, step.Description,
		)
		if err != nil {
			return fmt.Errorf("could not insert step %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit settings: %w", err)
	}

	s.logger.Debug("Saved settings", "document", document)
	return nil
}

// Load retrieves the settings of a document.
func (s *Store) Load(ctx context.Context, document string) (*domain.Settings, error) {
	var (
		settings   domain.Settings
		difficulty string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT task_name, task_description, current_step, difficulty
		FROM settings
		WHERE document = ?
	`, document).Scan(&settings.Progress.Name, &settings.Progress.Description, &settings.Progress.CurrentStep, &difficulty)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("could not query settings: %w", err)
	}

	if err := settings.Difficulty.UnmarshalText([]byte(difficulty)); err != nil {
		return nil, fmt.Errorf("could not decode difficulty: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description
		FROM settings_steps
		WHERE document = ?
		ORDER BY position ASC
	`, document)
	if err != nil {
		return nil, fmt.Errorf("could not query steps: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var step domain.StepDescriptor
		if err := rows.Scan(&step.Name, &step.Description); err != nil {
			return nil, fmt.Errorf("could not scan step: %w", err)
		}
		settings.Progress.Steps = append(settings.Progress.Steps, step)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating steps: %w", err)
	}

	return &settings, nil
}

// Delete removes the settings of a document. Steps cascade.
func (s *Store) Delete(ctx context.Context, document string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM settings WHERE document = ?`, document); err != nil {
		return fmt.Errorf("could not delete settings: %w", err)
	}
	return nil
}

// List returns the stored documents, sorted by key.
func (s *Store) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT document FROM settings ORDER BY document ASC`)
	if err != nil {
		return nil, fmt.Errorf("could not query settings: %w", err)
	}
	defer rows.Close()

	documents := []string{}
	for rows.Next() {
		var doc string
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("could not scan row: %w", err)
		}
		documents = append(documents, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return documents, nil
}
