package repository

import "time"

// rowScanner is satisfied by both *sql.Row and *sql.Rows, letting one scan
// function serve point lookups and list queries.
type rowScanner interface {
	Scan(dest ...any) error
}

// msToDuration converts stored milliseconds back to a duration.
func msToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
