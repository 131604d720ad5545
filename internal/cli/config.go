package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// DataDir is the per-project directory holding quest state.
const DataDir = ".quest"

// Config is the CLI configuration shared by every command.
type Config struct {
	Dir           string
	Document      string
	Store         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SQLitePath    string
	Catalog       string
	Debug         bool
}

// DefaultConfig returns the configuration used when no flag or variable is set.
func DefaultConfig() Config {
	return Config{
		Dir:       ".",
		Document:  "default",
		Store:     StoreFile,
		RedisAddr: "localhost:6379",
	}
}

// ScenePath is where the simulated host document is kept.
func (c Config) ScenePath() string {
	return filepath.Join(c.Dir, DataDir, "scene.yaml")
}

// SettingsDir is where the file store keeps its records.
func (c Config) SettingsDir() string {
	return filepath.Join(c.Dir, DataDir, "settings")
}

// DBPath is the SQLite database path.
func (c Config) DBPath() string {
	if c.SQLitePath != "" {
		return c.SQLitePath
	}
	return filepath.Join(c.Dir, DataDir, "quest.db")
}

// Validate checks the configuration.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreFile, StoreRedis, StoreSQLite:
	default:
		return fmt.Errorf("unknown store %q (want memory, file, redis or sqlite)", c.Store)
	}
	if c.Document == "" {
		return errors.New("document key is required")
	}
	return nil
}

// FlagSet is the subset of pflag.FlagSet used to detect explicit flags.
type FlagSet interface {
	Changed(name string) bool
}

type envBinding struct {
	flag string
	env  string
	set  func(c *Config, v string) error
}

var envBindings = []envBinding{
	{"document", "QUEST_DOCUMENT", func(c *Config, v string) error { c.Document = v; return nil }},
	{"store", "QUEST_STORE", func(c *Config, v string) error { c.Store = v; return nil }},
	{"redis-addr", "QUEST_REDIS_ADDR", func(c *Config, v string) error { c.RedisAddr = v; return nil }},
	{"redis-password", "QUEST_REDIS_PASSWORD", func(c *Config, v string) error { c.RedisPassword = v; return nil }},
	{"redis-db", "QUEST_REDIS_DB", func(c *Config, v string) error {
		db, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.RedisDB = db
		return nil
	}},
	{"sqlite-path", "QUEST_SQLITE_PATH", func(c *Config, v string) error { c.SQLitePath = v; return nil }},
	{"catalog", "QUEST_CATALOG", func(c *Config, v string) error { c.Catalog = v; return nil }},
	{"debug", "QUEST_DEBUG", func(c *Config, v string) error {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Debug = debug
		return nil
	}},
}

// ApplyEnv fills every option not set on the command line from QUEST_*
// variables. QUEST_DIR is read first, then <dir>/.env is loaded without
// overriding variables already present in the environment.
func (c *Config) ApplyEnv(flags FlagSet) error {
	if v, ok := os.LookupEnv("QUEST_DIR"); ok && !flags.Changed("dir") {
		c.Dir = v
	}

	if err := godotenv.Load(filepath.Join(c.Dir, ".env")); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	for _, b := range envBindings {
		v, ok := os.LookupEnv(b.env)
		if !ok || flags.Changed(b.flag) {
			continue
		}
		if err := b.set(c, v); err != nil {
			return fmt.Errorf("invalid %s: %w", b.env, err)
		}
	}
	return c.Validate()
}
