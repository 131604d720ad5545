package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aretw0/quest/pkg/adapters/loam"
	"github.com/aretw0/quest/pkg/catalog"
	"github.com/aretw0/quest/pkg/domain"
)

// LoadTasks reads extra task definitions from path.
// A directory yields its YAML files followed by its markdown documents;
// a single file is read as markdown when it has the .md extension.
func LoadTasks(ctx context.Context, path string) ([]domain.Task, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog path: %w", err)
	}

	if !info.IsDir() {
		if filepath.Ext(path) != loam.Ext {
			return catalog.LoadFile(path)
		}
		loader, err := loam.Open(filepath.Dir(path))
		if err != nil {
			return nil, err
		}
		task, err := loader.Task(ctx, filepath.Base(path))
		if err != nil {
			return nil, err
		}
		return []domain.Task{task}, nil
	}

	tasks, err := catalog.LoadDir(path)
	if err != nil {
		return nil, err
	}
	loader, err := loam.Open(path)
	if err != nil {
		return nil, err
	}
	docs, err := loader.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	return append(tasks, docs...), nil
}
