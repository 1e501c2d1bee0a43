package extract

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EntryProgressFunc is called after each archive entry lands on disk.
// done counts extracted entries, total is the number of entries in the
// archive, name is the entry just written.
type EntryProgressFunc func(done, total int, name string)

// Unpack extracts the zip archive at archivePath into destDir. Entries
// keep their stored relative paths; intermediate directories are created
// as needed and an existing file at a target path is overwritten. Returns
// the number of entries extracted.
func Unpack(ctx context.Context, archivePath, destDir string, onEntry EntryProgressFunc) (int, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer r.Close()

	total := len(r.File)
	for i, entry := range r.File {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		if err := writeEntry(entry, destDir); err != nil {
			return i, fmt.Errorf("extracting %s: %w", entry.Name, err)
		}
		if onEntry != nil {
			onEntry(i+1, total, entry.Name)
		}
	}
	return total, nil
}

func writeEntry(entry *zip.File, destDir string) error {
	target, err := entryPath(destDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	src, err := entry.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// Archives written without unix attributes report mode 0.
	mode := entry.Mode().Perm()
	if mode == 0 {
		mode = 0o644
	}

	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}

// entryPath joins name onto destDir and rejects entries that would land
// outside it. destDir may be relative (the fetch pipeline extracts into
// the current directory), so the base is absolutized before comparing.
func entryPath(destDir, name string) (string, error) {
	base, err := filepath.Abs(destDir)
	if err != nil {
		return "", err
	}
	target := filepath.Join(base, filepath.FromSlash(name))
	if target != base && !strings.HasPrefix(target, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("entry path %q escapes destination", name)
	}
	return target, nil
}
