package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ml4phys/lhcdata/internal/testutil"
)

func TestUnpack_NestedEntries(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{
		"events/":            "",
		"events/train.npy":   "train-bytes",
		"events/test.npy":    "test-bytes",
		"README.txt":         "about",
		"deep/nested/pt.csv": "pt",
	})

	n, err := Unpack(context.Background(), archive, dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	got, err := os.ReadFile(filepath.Join(dir, "events", "train.npy"))
	require.NoError(t, err)
	assert.Equal(t, "train-bytes", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "deep", "nested", "pt.csv"))
	require.NoError(t, err)
	assert.Equal(t, "pt", string(got))

	info, err := os.Stat(filepath.Join(dir, "events"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestUnpack_CurrentDirectoryDestination(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{
		"README.txt":       "about",
		"events/train.npy": "train-bytes",
	})

	t.Chdir(dir)

	n, err := Unpack(context.Background(), archive, ".", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, err := os.ReadFile(filepath.Join(dir, "README.txt"))
	require.NoError(t, err)
	assert.Equal(t, "about", string(got))

	got, err = os.ReadFile(filepath.Join(dir, "events", "train.npy"))
	require.NoError(t, err)
	assert.Equal(t, "train-bytes", string(got))
}

func TestUnpack_ReportsPerEntryProgress(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{
		"a.txt": "a",
		"b.txt": "b",
		"c.txt": "c",
	})

	type step struct {
		done, total int
		name        string
	}
	var steps []step
	n, err := Unpack(context.Background(), archive, dir, func(done, total int, name string) {
		steps = append(steps, step{done, total, name})
	})
	require.NoError(t, err)
	require.Equal(t, 3, n)

	require.Len(t, steps, 3)
	assert.Equal(t, step{1, 3, "a.txt"}, steps[0])
	assert.Equal(t, step{2, 3, "b.txt"}, steps[1])
	assert.Equal(t, step{3, 3, "c.txt"}, steps[2])
}

func TestUnpack_OverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{"a.txt": "new"})
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("old"), 0o644))

	_, err := Unpack(context.Background(), archive, dir, nil)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestUnpack_NotAnArchive(t *testing.T) {
	dir := t.TempDir()
	bogus := filepath.Join(dir, "data.zip")
	require.NoError(t, os.WriteFile(bogus, []byte("<html>not a zip</html>"), 0o644))

	_, err := Unpack(context.Background(), bogus, dir, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening archive")
}

func TestUnpack_RejectsEscapingEntry(t *testing.T) {
	dir := t.TempDir()
	inner := filepath.Join(dir, "inner")
	require.NoError(t, os.Mkdir(inner, 0o755))

	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{"../evil.txt": "gotcha"})

	_, err := Unpack(context.Background(), archive, inner, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")

	// The guard holds when the destination is the current directory.
	t.Chdir(inner)
	_, err = Unpack(context.Background(), archive, ".", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")

	_, statErr := os.Stat(filepath.Join(dir, "evil.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestUnpack_EmptyArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{})

	n, err := Unpack(context.Background(), archive, dir, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestUnpack_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "data.zip")
	testutil.WriteZip(t, archive, map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Unpack(ctx, archive, dir, nil)
	require.ErrorIs(t, err, context.Canceled)
}
