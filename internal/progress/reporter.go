package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides feedback while waiting on the trends endpoint.
type Reporter interface {
	Start(message string)
	Stop(message string)
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a spinner in the terminal.
type TerminalReporter struct {
	w    io.Writer
	bar  *progressbar.ProgressBar
	done chan struct{}
	wg   sync.WaitGroup
}

func (r *TerminalReporter) Start(message string) {
	r.bar = progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription(message),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionClearOnFinish(),
	)
	r.done = make(chan struct{})
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-r.done:
				return
			case <-ticker.C:
				_ = r.bar.Add(1)
			}
		}
	}()
}

func (r *TerminalReporter) Stop(message string) {
	if r.bar == nil {
		return
	}
	close(r.done)
	r.wg.Wait()
	_ = r.bar.Finish()
	r.bar = nil
	if message != "" {
		fmt.Fprintln(r.w, message)
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	start time.Time
}

func (r *CIReporter) Start(message string) {
	r.start = time.Now()
	fmt.Fprintln(r.w, message)
}

func (r *CIReporter) Stop(message string) {
	if message == "" {
		message = "done"
	}
	fmt.Fprintf(r.w, "%s (%s)\n", message, time.Since(r.start).Round(time.Millisecond))
}
