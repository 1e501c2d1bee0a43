package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ml4phys/lhcdata/internal/cli/formatter"
	"github.com/ml4phys/lhcdata/internal/domain"
	"github.com/ml4phys/lhcdata/internal/service"
)

// ── messages ─────────────────────────────────────────────────────────────────

// fetchResolvedMsg signals the dataset was resolved and the transfer is
// about to start.
type fetchResolvedMsg struct {
	dataset domain.Dataset
	url     string
}

// downloadProgressMsg reports transfer bytes. total is -1 when unknown.
type downloadProgressMsg struct {
	written int64
	total   int64
}

// downloadDoneMsg signals the archive is fully on disk.
type downloadDoneMsg struct {
	bytes int64
}

// extractProgressMsg reports archive entries written so far.
type extractProgressMsg struct {
	done  int
	total int
	name  string
}

// fetchDoneMsg carries the final result of a successful fetch.
type fetchDoneMsg struct {
	result *service.FetchResult
}

// fetchFailedMsg carries a fatal fetch error.
type fetchFailedMsg struct {
	err error
}

// ── model ────────────────────────────────────────────────────────────────────

type fetchPhase int

const (
	phaseResolve fetchPhase = iota
	phaseDownload
	phaseExtract
	phaseDone
	phaseFailed
)

// fetchBarWidth is the progress bar width in the live view.
const fetchBarWidth = 36

// fetchModel is the bubbletea model rendering a live fetch.
type fetchModel struct {
	req    service.FetchRequest
	cancel context.CancelFunc

	phase   fetchPhase
	dataset domain.Dataset
	url     string

	spin spinner.Model
	bar  progress.Model

	written      int64
	total        int64
	entriesDone  int
	entriesTotal int
	entryName    string

	result    *service.FetchResult
	err       error
	canceling bool
}

func newFetchModel(req service.FetchRequest, cancel context.CancelFunc) fetchModel {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(formatter.StylePurple),
	)
	bar := progress.New(
		progress.WithWidth(fetchBarWidth),
		progress.WithSolidFill(string(formatter.ColorGreen)),
	)

	return fetchModel{
		req:    req,
		cancel: cancel,
		spin:   sp,
		bar:    bar,
	}
}

func (m fetchModel) Init() tea.Cmd {
	return m.spin.Tick
}

func (m fetchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.phase == phaseDone || m.phase == phaseFailed {
				return m, tea.Quit
			}
			// The fetch goroutine notices the canceled context and
			// replies with fetchFailedMsg, which quits the program.
			m.canceling = true
			m.cancel()
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case fetchResolvedMsg:
		m.phase = phaseDownload
		m.dataset = msg.dataset
		m.url = msg.url
		return m, nil

	case downloadProgressMsg:
		m.written = msg.written
		m.total = msg.total
		return m, nil

	case downloadDoneMsg:
		m.phase = phaseExtract
		m.written = msg.bytes
		return m, nil

	case extractProgressMsg:
		m.entriesDone = msg.done
		m.entriesTotal = msg.total
		m.entryName = msg.name
		return m, nil

	case fetchDoneMsg:
		m.phase = phaseDone
		m.result = msg.result
		return m, tea.Quit

	case fetchFailedMsg:
		m.phase = phaseFailed
		m.err = msg.err
		return m, tea.Quit
	}

	return m, nil
}

func (m fetchModel) View() string {
	var b strings.Builder
	b.WriteString("\n")

	switch m.phase {
	case phaseResolve:
		b.WriteString(fmt.Sprintf("  %s %s\n", m.spin.View(), formatter.Dim("Resolving dataset...")))

	case phaseDownload:
		b.WriteString(m.headerLines())
		if m.total > 0 {
			pct := float64(m.written) / float64(m.total)
			b.WriteString(fmt.Sprintf("  %s %s / %s\n",
				m.bar.ViewAs(pct), formatter.FormatBytes(m.written), formatter.FormatBytes(m.total)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s\n", m.spin.View(), formatter.FormatBytes(m.written)))
		}

	case phaseExtract:
		b.WriteString(m.headerLines())
		var pct float64
		if m.entriesTotal > 0 {
			pct = float64(m.entriesDone) / float64(m.entriesTotal)
		}
		b.WriteString(fmt.Sprintf("  %s %d/%d %s\n",
			m.bar.ViewAs(pct), m.entriesDone, m.entriesTotal, formatter.Dim(m.entryName)))

	case phaseDone:
		b.WriteString(m.headerLines())
		done := fmt.Sprintf("✔ Extracted %d files from %s", m.result.ExtractedFiles, m.result.Dataset.Archive)
		b.WriteString(fmt.Sprintf("  %s\n", formatter.StyleGreen.Render(done)))
		summary := fmt.Sprintf("%s in %s", formatter.FormatBytes(m.result.ArchiveBytes), formatter.FormatDuration(m.result.Duration))
		b.WriteString(fmt.Sprintf("  %s\n", formatter.Dim(summary)))

	case phaseFailed:
		// The error is reported by the caller; leave no final frame behind.
		return ""
	}

	if m.canceling {
		b.WriteString(fmt.Sprintf("  %s\n", formatter.Dim("canceling...")))
	}

	return b.String()
}

// headerLines renders the dataset banner shown once the fetch is announced.
func (m fetchModel) headerLines() string {
	title := fmt.Sprintf("Dataset %d: %s", m.dataset.ID, m.dataset.Description)
	return fmt.Sprintf("  %s\n  %s\n\n", formatter.Bold(title), formatter.Dim(m.url))
}

// ── program wiring ───────────────────────────────────────────────────────────

// progressSendStep throttles download progress messages into the program
// so large transfers do not flood the update loop.
const progressSendStep = 256 * 1024

// teaObserver forwards fetch events into a running bubbletea program.
// The fetch runs on a single goroutine, so lastSent needs no locking.
type teaObserver struct {
	p        *tea.Program
	lastSent int64
}

func (o *teaObserver) OnResolve(ds domain.Dataset, url string) {
	o.p.Send(fetchResolvedMsg{dataset: ds, url: url})
}

func (o *teaObserver) OnDownloadProgress(written, total int64) {
	if written-o.lastSent < progressSendStep && written != total {
		return
	}
	o.lastSent = written
	o.p.Send(downloadProgressMsg{written: written, total: total})
}

func (o *teaObserver) OnDownloadComplete(bytes int64) {
	o.p.Send(downloadDoneMsg{bytes: bytes})
}

func (o *teaObserver) OnExtractProgress(done, total int, name string) {
	o.p.Send(extractProgressMsg{done: done, total: total, name: name})
}

// runFetchTUI executes the fetch under a live bubbletea view.
func runFetchTUI(app *App, req service.FetchRequest) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newFetchModel(req, cancel))

	go func() {
		res, err := app.Fetch.Fetch(ctx, req, &teaObserver{p: p})
		if err != nil {
			p.Send(fetchFailedMsg{err: err})
			return
		}
		p.Send(fetchDoneMsg{result: res})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := final.(fetchModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
