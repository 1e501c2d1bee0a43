package domain

import "time"

// FetchRecord is one completed download and extraction, as kept in the
// local manifest.
type FetchRecord struct {
	ID           string
	DatasetID    int
	Archive      string
	Description  string
	DestDir      string
	ArchiveBytes int64
	FileCount    int
	Duration     time.Duration
	FetchedAt    time.Time
}
