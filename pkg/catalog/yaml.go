package catalog

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/aretw0/quest/pkg/domain"
	"gopkg.in/yaml.v3"
)

// taskFile is the on-disk shape: either a single task or a "tasks" list.
type taskFile struct {
	domain.Task `yaml:",inline"`
	Tasks       []domain.Task `yaml:"tasks"`
}

// Parse decodes task definitions from YAML. Unknown fields are rejected.
func Parse(data []byte) ([]domain.Task, error) {
	var file taskFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}

	if len(file.Tasks) > 0 {
		if file.Task.Name != "" {
			return nil, fmt.Errorf("file mixes a top-level task with a tasks list")
		}
		return file.Tasks, nil
	}
	if file.Task.Name == "" {
		return nil, fmt.Errorf("no task defined")
	}
	return []domain.Task{file.Task}, nil
}

// LoadFile reads task definitions from one YAML file.
func LoadFile(path string) ([]domain.Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task file: %w", err)
	}
	tasks, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tasks, nil
}

// LoadDir reads every *.yaml and *.yml file in dir, sorted by file name.
// Subdirectories are ignored.
func LoadDir(dir string) ([]domain.Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	slices.Sort(files)

	var tasks []domain.Task
	for _, f := range files {
		loaded, err := LoadFile(f)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, loaded...)
	}
	return tasks, nil
}
