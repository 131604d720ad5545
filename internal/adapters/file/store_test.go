package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/quest/internal/adapters/file"
	"github.com/aretw0/quest/pkg/domain"
	"github.com/aretw0/quest/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.SettingsStore = (*file.Store)(nil)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunSettingsStoreContract(t, store)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "settings")
	store := file.New(dir)

	require.NoError(t, store.Save(context.Background(), "scene", domain.NewSettings()))

	_, err := os.Stat(filepath.Join(dir, "scene.json"))
	assert.NoError(t, err)
}

func TestFileStore_ListMissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "missing"))

	docs, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, "", domain.NewSettings()))
	assert.Error(t, store.Save(ctx, "../escape", domain.NewSettings()))
	_, err := store.Load(ctx, "a/b")
	assert.Error(t, err)
}

func TestFileStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	_, err := file.New(dir).Load(context.Background(), "broken")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSettingsNotFound)
}

func TestFileStore_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".quest", "settings"), file.New("").BasePath)
}

func TestFileStore_ListKeepsTmpPrefixedDocuments(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tmp-scratch", domain.NewSettings()))
	// leftover of an interrupted save
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json.123.tmp"), []byte("{}"), 0644))

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp-scratch"}, docs)
}
