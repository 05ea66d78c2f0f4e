// Package progress draws a one-line chunk progress bar on a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"golang.org/x/term"

	"memstrap/internal/pipeline"
)

const (
	barWidth        = 40
	DefaultInterval = 100 * time.Millisecond
)

// Enabled reports whether a bar should be drawn on f.
func Enabled(disabled bool, f *os.File) bool {
	return !disabled && f != nil && term.IsTerminal(int(f.Fd()))
}

// Bar polls a pipeline.Progress and redraws itself in place. A nil *Bar
// is valid and draws nothing.
type Bar struct {
	w     io.Writer
	src   *pipeline.Progress
	model progress.Model

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

// Start begins redrawing every interval until Stop.
func Start(w io.Writer, src *pipeline.Progress, interval time.Duration) *Bar {
	if interval <= 0 {
		interval = DefaultInterval
	}
	b := &Bar{
		w:     w,
		src:   src,
		model: progress.New(progress.WithDefaultGradient(), progress.WithWidth(barWidth)),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go b.loop(interval)
	return b
}

func (b *Bar) loop(interval time.Duration) {
	defer close(b.done)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-b.stop:
			return
		case <-t.C:
			b.draw()
		}
	}
}

func (b *Bar) draw() {
	_, _ = io.WriteString(b.w, "\r"+Line(b.model, b.src.Done(), b.src.Total()))
}

// Stop draws the final state, ends the line and waits for the ticker
// goroutine. Safe to call more than once.
func (b *Bar) Stop() {
	if b == nil {
		return
	}
	b.once.Do(func() {
		close(b.stop)
		<-b.done
		b.draw()
		_, _ = io.WriteString(b.w, "\n")
	})
}

// Line renders the bar for done of total chunks.
func Line(m progress.Model, done, total int64) string {
	pct := 0.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	if pct > 1 {
		pct = 1
	}
	return fmt.Sprintf("%s %d/%d chunks", m.ViewAs(pct), done, total)
}
