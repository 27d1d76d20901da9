package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/lifedays/internal/config"
	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/schedule"
	"github.com/theirongolddev/lifedays/internal/session"
	"github.com/theirongolddev/lifedays/internal/tui/components"

	tea "github.com/charmbracelet/bubbletea"
)

// newTestApp returns a sized app whose presenter output is captured in msgs.
func newTestApp(t *testing.T) (App, *[]tea.Msg) {
	t.Helper()
	var msgs []tea.Msg
	p := NewPresenter()
	p.Attach(func(m tea.Msg) { msgs = append(msgs, m) })

	clock := schedule.NewFakeClock(time.Date(2000, 1, 8, 0, 0, 0, 0, time.UTC))
	sess := session.New(session.Options{Clock: clock, Presenter: p})
	t.Cleanup(sess.Stop)

	app := NewApp(Options{Session: sess, Config: config.DefaultConfig()})
	m, _ := app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App), &msgs
}

func feed(a App, msgs ...tea.Msg) App {
	for _, msg := range msgs {
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestGridMsgPlacesCursorOnToday(t *testing.T) {
	a, _ := newTestApp(t)
	v := grid.NewView(model.Week, model.DefaultTotalDays, 70)
	a = feed(a, GridMsg{View: v, Cells: grid.Build(model.Week, model.DefaultTotalDays, 70)})

	if len(a.cells) != 4286 {
		t.Fatalf("cells = %d, want 4286", len(a.cells))
	}
	if a.cursor != 10 {
		t.Fatalf("cursor = %d, want 10", a.cursor)
	}
}

func TestCursorKeysClamp(t *testing.T) {
	a, _ := newTestApp(t)
	a = feed(a, GridMsg{View: grid.NewView(model.Week, 70, 0), Cells: grid.Build(model.Week, 70, 0)})

	a = feed(a, tea.KeyMsg{Type: tea.KeyLeft})
	if a.cursor != 0 {
		t.Fatalf("cursor after left = %d, want 0", a.cursor)
	}
	a = feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}})
	if a.cursor != 9 {
		t.Fatalf("cursor after G = %d, want 9", a.cursor)
	}
	a = feed(a, tea.KeyMsg{Type: tea.KeyDown})
	if a.cursor != 9 {
		t.Fatalf("cursor after down = %d, want 9", a.cursor)
	}
}

func TestViewKeysSwitchThroughSession(t *testing.T) {
	a, msgs := newTestApp(t)
	a.sess.Calculate(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))
	a = feed(a, *msgs...)
	*msgs = nil

	// already on the week view
	if _, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}); cmd != nil {
		t.Fatal("w on the week view should be a no-op")
	}

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if cmd == nil {
		t.Fatal("d should return a switch command")
	}
	cmd()

	var got *GridMsg
	for _, m := range *msgs {
		if g, ok := m.(GridMsg); ok {
			got = &g
		}
	}
	if got == nil {
		t.Fatal("no GridMsg after switching view")
	}
	if got.View.Granularity != model.Day || len(got.Cells) != 30000 {
		t.Fatalf("got %s view with %d cells, want day with 30000", got.View.Granularity, len(got.Cells))
	}
	if got.View.LivedCells != 7 {
		t.Fatalf("lived cells = %d, want 7", got.View.LivedCells)
	}
}

func TestMouseClickOnViewBar(t *testing.T) {
	a, _ := newTestApp(t)

	weeks := components.ToggleWidth(components.Toggles[0], true)
	daysX := 1 + weeks + 2

	_, cmd := a.Update(tea.MouseMsg{X: 2, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if cmd != nil {
		t.Fatal("clicking the active toggle should be a no-op")
	}
	_, cmd = a.Update(tea.MouseMsg{X: daysX, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if cmd == nil {
		t.Fatal("clicking Days should return a switch command")
	}
}

func TestRestoreMissOpensForm(t *testing.T) {
	a, _ := newTestApp(t)
	a = feed(a, RestoredMsg{})
	if a.form == nil {
		t.Fatal("form should open when nothing was restored")
	}
	a = feed(a, tea.KeyMsg{Type: tea.KeyEsc})
	if a.form != nil {
		t.Fatal("esc should close the form")
	}
	if got := a.View(); got == "" {
		t.Fatal("empty view after closing form")
	}
}

func TestEditPrefillsSavedDate(t *testing.T) {
	a, _ := newTestApp(t)
	a = feed(a, RestoredMsg{Date: "1990-05-17", OK: true})
	if a.form != nil {
		t.Fatal("form should stay closed after a restore")
	}
	a = feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	if a.form == nil {
		t.Fatal("e should open the form")
	}
	if a.formVals.Date != "1990-05-17" {
		t.Fatalf("form value = %q, want the saved date", a.formVals.Date)
	}
}

func TestNoticeShownInStatusBar(t *testing.T) {
	a, _ := newTestApp(t)
	a = feed(a, NoticeMsg{Text: session.MsgInvalidBirthDate})
	if a.notice != session.MsgInvalidBirthDate {
		t.Fatalf("notice = %q", a.notice)
	}
	a = feed(a, StatisticsMsg{Stats: model.Statistics{DaysLived: 7, DaysRemaining: 29993, Percentage: 0.02}})
	if a.notice != "" {
		t.Fatalf("notice should clear on a new calculation, got %q", a.notice)
	}
}

func TestInvalidOverrideExplainsForm(t *testing.T) {
	a, _ := newTestApp(t)
	msg := overrideCmd(a.sess, "1990-13-01", time.UTC)()
	a = feed(a, msg)

	if a.form == nil {
		t.Fatal("form should open for a rejected override")
	}
	if a.notice != session.MsgInvalidBirthDate {
		t.Fatalf("notice = %q, want %q", a.notice, session.MsgInvalidBirthDate)
	}
	if !strings.Contains(a.View(), session.MsgInvalidBirthDate) {
		t.Fatal("form view should show why the date was rejected")
	}
}

func TestValidOverrideCalculates(t *testing.T) {
	a, msgs := newTestApp(t)
	msg := overrideCmd(a.sess, "2000-01-01", time.UTC)()
	a = feed(a, append(*msgs, msg)...)

	if a.form != nil || a.notice != "" {
		t.Fatalf("form = %v, notice = %q; want a quiet calculation", a.form != nil, a.notice)
	}
	if !a.hasStats || a.stats.DaysLived != 7 {
		t.Fatalf("stats = %+v, want 7 days lived", a.stats)
	}
}

func TestColumnsFitNarrowTerminal(t *testing.T) {
	a, _ := newTestApp(t)
	if got := a.columns(); got != 52 {
		t.Fatalf("columns at 120 wide = %d, want 52", got)
	}
	a = feed(a, tea.WindowSizeMsg{Width: 60, Height: 40})
	if got, want := a.columns(), 58/components.GridWidth(1); got != want {
		t.Fatalf("columns at 60 wide = %d, want %d", got, want)
	}
}

func TestHelpOverlayUsesContentCard(t *testing.T) {
	a, _ := newTestApp(t)
	a = feed(a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	view := a.View()
	if !strings.Contains(view, "Keyboard Shortcuts") || !strings.Contains(view, "╭") {
		t.Fatal("help overlay should render as a titled card")
	}
}
