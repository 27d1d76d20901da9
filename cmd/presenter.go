package cmd

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/theirongolddev/lifedays/internal/cli"
	"github.com/theirongolddev/lifedays/internal/model"
)

// linePresenter prints session output as plain text. With live set the
// countdown is redrawn in place on one line.
type linePresenter struct {
	out  io.Writer
	live bool

	mu    sync.Mutex
	stats model.Statistics

	done chan struct{}
	once sync.Once
}

func newLinePresenter(out io.Writer, live bool) *linePresenter {
	return &linePresenter{out: out, live: live, done: make(chan struct{})}
}

func (p *linePresenter) RenderStatistics(s model.Statistics) {
	p.mu.Lock()
	p.stats = s
	p.mu.Unlock()
}

func (p *linePresenter) RenderCountdown(c model.Countdown) {
	p.mu.Lock()
	if p.live {
		fmt.Fprintf(p.out, "\r  %s until day %s   ", cli.FormatCountdown(c), cli.FormatNumber(int64(p.stats.DaysLived+p.stats.DaysRemaining)))
	}
	p.mu.Unlock()
	if c.Finished {
		p.once.Do(func() { close(p.done) })
	}
}

func (p *linePresenter) RenderGrid(model.GridView, []model.Cell) {}

func (p *linePresenter) Notify(msg string) {
	if flagQuiet {
		return
	}
	fmt.Fprintln(os.Stderr, "  "+msg)
}

// Finished is closed once the countdown reaches zero.
func (p *linePresenter) Finished() <-chan struct{} { return p.done }

