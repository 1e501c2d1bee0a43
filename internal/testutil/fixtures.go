package testutil

import (
	"archive/zip"
	"bytes"
	"os"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// FetchRecord options
type RecordOption func(*domain.FetchRecord)

func WithFetchedAt(ts time.Time) RecordOption {
	return func(r *domain.FetchRecord) {
		r.FetchedAt = ts
	}
}

func WithDestDir(dir string) RecordOption {
	return func(r *domain.FetchRecord) {
		r.DestDir = dir
	}
}

func WithArchiveBytes(n int64) RecordOption {
	return func(r *domain.FetchRecord) {
		r.ArchiveBytes = n
	}
}

func WithFileCount(n int) RecordOption {
	return func(r *domain.FetchRecord) {
		r.FileCount = n
	}
}

// NewTestRecord builds a manifest record for datasetID with plausible
// defaults. Unknown identifiers still produce a record so repository tests
// can exercise arbitrary rows.
func NewTestRecord(datasetID int, opts ...RecordOption) *domain.FetchRecord {
	ds, err := domain.ResolveDataset(datasetID)
	if err != nil {
		ds = domain.Dataset{ID: datasetID, Archive: "unknown.zip", Description: "unknown"}
	}
	r := &domain.FetchRecord{
		ID:           uuid.New().String(),
		DatasetID:    datasetID,
		Archive:      ds.Archive,
		Description:  ds.Description,
		DestDir:      "/tmp/data",
		ArchiveBytes: 1 << 20,
		FileCount:    3,
		Duration:     1500 * time.Millisecond,
		FetchedAt:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ZipBytes builds an in-memory zip archive. Map keys are entry names;
// a key ending in "/" becomes a directory entry. Entries are written in
// sorted name order so the archive layout is deterministic.
func ZipBytes(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating zip entry %s: %v", name, err)
		}
		if strings.HasSuffix(name, "/") {
			continue
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("writing zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip writer: %v", err)
	}
	return buf.Bytes()
}

// WriteZip materializes ZipBytes at path.
func WriteZip(t *testing.T, path string, entries map[string]string) {
	t.Helper()
	if err := os.WriteFile(path, ZipBytes(t, entries), 0o644); err != nil {
		t.Fatalf("writing zip file: %v", err)
	}
}
