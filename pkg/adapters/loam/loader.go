// Package loam reads markdown task documents through a Loam repository.
package loam

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/loam"

	"github.com/aretw0/quest/pkg/domain"
)

// Ext is the extension of the documents the loader turns into tasks.
const Ext = ".md"

// Loader adapts a Loam typed repository to task definitions.
type Loader struct {
	Repo *loam.TypedRepository[TaskMetadata]
}

// New creates a loader over an existing repository.
func New(repo *loam.TypedRepository[TaskMetadata]) *Loader {
	return &Loader{Repo: repo}
}

// Open initializes a strict, read-only Loam repository rooted at dir.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	// Strict mode keeps numeric frontmatter as json.Number.
	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize loam: %w", err)
	}
	return New(loam.NewTypedRepository[TaskMetadata](repo)), nil
}

// Tasks returns every markdown task in the repository, ordered by document ID.
// Other documents (YAML, JSON) are left to the YAML catalog loader.
func (l *Loader) Tasks(ctx context.Context) ([]domain.Task, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	var tasks []domain.Task
	for _, doc := range docs {
		if filepath.Ext(doc.ID) != Ext {
			continue
		}
		task, err := toTask(doc.ID, doc.Data, doc.Content)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Task reads a single markdown task by document ID.
func (l *Loader) Task(ctx context.Context, id string) (domain.Task, error) {
	doc, err := l.Repo.Get(ctx, id)
	if err != nil {
		return domain.Task{}, fmt.Errorf("loam get failed for %s: %w", id, err)
	}
	return toTask(doc.ID, doc.Data, doc.Content)
}

func toTask(docID string, meta TaskMetadata, content string) (domain.Task, error) {
	name := meta.Name
	if name == "" {
		name = trimExtension(filepath.Base(docID))
	}

	difficulty, err := domain.ParseDifficulty(meta.Difficulty)
	if err != nil {
		return domain.Task{}, fmt.Errorf("%s: %w", docID, err)
	}

	task := domain.Task{
		Name:        name,
		Description: strings.TrimSpace(content),
		Difficulty:  difficulty,
		Setup:       meta.Setup,
		Steps:       make([]domain.Step, 0, len(meta.Steps)),
	}
	for _, s := range meta.Steps {
		step := domain.Step{Name: s.Name, Description: s.Description}
		for _, c := range s.Checks {
			step.Checks = append(step.Checks, domain.Check{Name: c.Name, Args: c.Args})
		}
		task.Steps = append(task.Steps, step)
	}
	return task, nil
}

func trimExtension(id string) string {
	return filepath.ToSlash(strings.TrimSuffix(id, filepath.Ext(id)))
}
