package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrUnexpectedStatus indicates the server answered with a
	// non-success HTTP status.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// ProgressFunc receives running byte counts while a transfer is in flight.
// total is -1 when the server did not announce a Content-Length.
type ProgressFunc func(written, total int64)

// Fetcher downloads archives over HTTP.
type Fetcher struct {
	http *http.Client
}

// NewHTTPClient builds the standard transfer client. Connection attempts
// time out after five seconds; the whole transfer times out after timeout,
// where zero leaves the transfer without a deadline.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: 5 * time.Second,
			}).DialContext,
		},
	}
}

// NewFetcher creates a Fetcher around client. A nil client gets the
// default from NewHTTPClient with no transfer deadline.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &Fetcher{http: client}
}

// Download retrieves url into destPath, overwriting any existing file.
// The body streams into a temporary file in the destination directory and
// is renamed into place once the transfer completes, so an interrupted
// transfer leaves nothing under destPath. Progress is reported through
// onProgress when non-nil. Returns the number of bytes written.
func (f *Fetcher) Download(ctx context.Context, url, destPath string, onProgress ProgressFunc) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w %d for %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".part-*")
	if err != nil {
		return 0, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	written, err := copyWithProgress(tmp, resp.Body, resp.ContentLength, onProgress)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return 0, fmt.Errorf("downloading %s: %w", url, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpName, destPath); err != nil {
		os.Remove(tmpName)
		return 0, fmt.Errorf("renaming %s: %w", destPath, err)
	}
	return written, nil
}

func copyWithProgress(dst io.Writer, src io.Reader, total int64, onProgress ProgressFunc) (int64, error) {
	if onProgress == nil {
		return io.Copy(dst, src)
	}
	pw := &progressWriter{dst: dst, total: total, onProgress: onProgress}
	return io.Copy(pw, src)
}

// progressWriter forwards writes to dst and reports the running total
// after each chunk.
type progressWriter struct {
	dst        io.Writer
	written    int64
	total      int64
	onProgress ProgressFunc
}

func (w *progressWriter) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	w.written += int64(n)
	w.onProgress(w.written, w.total)
	return n, err
}
