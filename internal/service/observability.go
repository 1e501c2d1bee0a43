package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/ml4phys/lhcdata/internal/domain"
)

// FetchObserver receives progress events while a fetch runs. Callbacks
// fire on the transfer path and must return quickly.
type FetchObserver interface {
	// OnResolve fires once the dataset is resolved and the destination
	// entered, before any network traffic.
	OnResolve(ds domain.Dataset, url string)
	// OnDownloadProgress reports bytes written so far. total is -1 when
	// the server did not announce a Content-Length.
	OnDownloadProgress(written, total int64)
	// OnDownloadComplete fires when the archive is fully on disk.
	OnDownloadComplete(bytes int64)
	// OnExtractProgress fires after each archive entry lands on disk.
	OnExtractProgress(done, total int, name string)
}

// NoopFetchObserver ignores all events.
type NoopFetchObserver struct{}

func (NoopFetchObserver) OnResolve(domain.Dataset, string)   {}
func (NoopFetchObserver) OnDownloadProgress(int64, int64)    {}
func (NoopFetchObserver) OnDownloadComplete(int64)           {}
func (NoopFetchObserver) OnExtractProgress(int, int, string) {}

// CombineFetchObservers fans events out to every non-nil observer.
func CombineFetchObservers(observers ...FetchObserver) FetchObserver {
	active := make([]FetchObserver, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			active = append(active, obs)
		}
	}
	switch len(active) {
	case 0:
		return NoopFetchObserver{}
	case 1:
		return active[0]
	}
	return multiFetchObserver(active)
}

type multiFetchObserver []FetchObserver

func (m multiFetchObserver) OnResolve(ds domain.Dataset, url string) {
	for _, obs := range m {
		obs.OnResolve(ds, url)
	}
}

func (m multiFetchObserver) OnDownloadProgress(written, total int64) {
	for _, obs := range m {
		obs.OnDownloadProgress(written, total)
	}
}

func (m multiFetchObserver) OnDownloadComplete(bytes int64) {
	for _, obs := range m {
		obs.OnDownloadComplete(bytes)
	}
}

func (m multiFetchObserver) OnExtractProgress(done, total int, name string) {
	for _, obs := range m {
		obs.OnExtractProgress(done, total, name)
	}
}

type logFetchObserver struct {
	logger *slog.Logger
}

// NewLogFetchObserver writes fetch phase events to the provided writer.
// Byte and entry progress log at debug level so the default info handler
// keeps the stream to one line per phase.
func NewLogFetchObserver(w io.Writer) FetchObserver {
	if w == nil {
		return NoopFetchObserver{}
	}
	return &logFetchObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logFetchObserver) OnResolve(ds domain.Dataset, url string) {
	o.logger.Info("resolve", "dataset_id", ds.ID, "archive", ds.Archive, "url", url)
}

func (o *logFetchObserver) OnDownloadProgress(written, total int64) {
	o.logger.Debug("download", "written", written, "total", total)
}

func (o *logFetchObserver) OnDownloadComplete(bytes int64) {
	o.logger.Info("download_complete", "bytes", bytes)
}

func (o *logFetchObserver) OnExtractProgress(done, total int, name string) {
	o.logger.Debug("extract", "done", done, "total", total, "entry", name)
}

// UseCaseEvent captures lightweight execution telemetry for a service
// use case.
type UseCaseEvent struct {
	Name     string
	Duration time.Duration
	Success  bool
	Err      error
	Fields   map[string]any
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver writes use-case events to the provided writer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]any, 0, 6+len(event.Fields)*2)
	attrs = append(attrs,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
