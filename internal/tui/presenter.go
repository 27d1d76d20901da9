package tui

import (
	"sync"

	"github.com/theirongolddev/lifedays/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// StatisticsMsg carries freshly computed statistics.
type StatisticsMsg struct{ Stats model.Statistics }

// CountdownMsg carries one countdown tick.
type CountdownMsg struct{ Countdown model.Countdown }

// GridMsg carries a fully regenerated grid.
type GridMsg struct {
	View  model.GridView
	Cells []model.Cell
}

// NoticeMsg is a user-facing notification.
type NoticeMsg struct{ Text string }

// Presenter forwards session output into the Bubble Tea event loop.
// Session methods must run inside tea.Cmds, never from Update directly,
// since Send blocks until the loop receives.
type Presenter struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewPresenter returns a presenter that drops output until Attach is called.
func NewPresenter() *Presenter {
	return &Presenter{}
}

// Attach routes output to send, normally (*tea.Program).Send.
func (p *Presenter) Attach(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	p.mu.Unlock()
}

func (p *Presenter) emit(msg tea.Msg) {
	p.mu.RLock()
	send := p.send
	p.mu.RUnlock()
	if send != nil {
		send(msg)
	}
}

// RenderStatistics implements session.Presenter.
func (p *Presenter) RenderStatistics(s model.Statistics) { p.emit(StatisticsMsg{Stats: s}) }

// RenderCountdown implements session.Presenter.
func (p *Presenter) RenderCountdown(c model.Countdown) { p.emit(CountdownMsg{Countdown: c}) }

// RenderGrid implements session.Presenter.
func (p *Presenter) RenderGrid(v model.GridView, cells []model.Cell) {
	p.emit(GridMsg{View: v, Cells: cells})
}

// Notify implements session.Presenter.
func (p *Presenter) Notify(msg string) { p.emit(NoticeMsg{Text: msg}) }
