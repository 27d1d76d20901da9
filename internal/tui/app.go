// Package tui provides the interactive Bubble Tea dashboard for lifedays.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/theirongolddev/lifedays/internal/budget"
	"github.com/theirongolddev/lifedays/internal/cli"
	"github.com/theirongolddev/lifedays/internal/config"
	"github.com/theirongolddev/lifedays/internal/grid"
	"github.com/theirongolddev/lifedays/internal/model"
	"github.com/theirongolddev/lifedays/internal/session"
	"github.com/theirongolddev/lifedays/internal/tui/components"
	"github.com/theirongolddev/lifedays/internal/tui/theme"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// RestoredMsg reports the outcome of loading the saved birth date.
type RestoredMsg struct {
	Date   string
	OK     bool
	Notice string // set when the date was rejected
}

// Options wires the dashboard to its session.
type Options struct {
	Session *session.Session
	Config  config.Config
	Logger  *zap.Logger
	// BirthDate, when set, is calculated on start instead of the saved date
	// and is not persisted.
	BirthDate string
}

// App is the root Bubble Tea model.
type App struct {
	sess      *session.Session
	log       *zap.Logger
	totalDays int
	loc       *time.Location
	weekCols  int
	dayCols   int
	override  string

	// Last values rendered by the session
	stats     model.Statistics
	hasStats  bool
	countdown model.Countdown
	view      model.GridView
	cells     []model.Cell
	notice    string
	birth     string

	// UI state
	width    int
	height   int
	cursor   int
	showHelp bool
	gridVP   viewport.Model

	// Birth date form (huh)
	form     *huh.Form
	formVals *dateFormValues
	starting bool
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minGridHeight    = 3

	formCardWidth  = 64
	emptyCardWidth = 60
	helpCardWidth  = 48
)

// NewApp creates a new TUI app model.
func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := opts.Config
	g, err := grid.ParseGranularity(cfg.General.DefaultView)
	if err != nil {
		g = model.Week
	}

	return App{
		sess:      opts.Session,
		log:       logger,
		totalDays: cfg.General.TotalDays,
		loc:       cfg.Location(),
		weekCols:  cfg.Appearance.WeekColumns,
		dayCols:   cfg.Appearance.DayColumns,
		override:  opts.BirthDate,
		view:      model.GridView{Granularity: g},
		gridVP:    viewport.New(0, 0),
		formVals:  &dateFormValues{},
		starting:  true,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	start := restoreCmd(a.sess)
	if a.override != "" {
		start = overrideCmd(a.sess, a.override, a.loc)
	}
	return tea.Batch(tea.EnableMouseCellMotion, start)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(components.CardInnerWidth(a.formCardWidth()))
		}
		a.layoutGrid()
		return a, nil

	case StatisticsMsg:
		a.stats = msg.Stats
		a.hasStats = true
		a.notice = ""
		return a, nil

	case CountdownMsg:
		a.countdown = msg.Countdown
		return a, nil

	case GridMsg:
		a.view = msg.View
		a.cells = msg.Cells
		a.cursor = a.todayIndex()
		a.layoutGrid()
		a.scrollToCursor()
		return a, nil

	case NoticeMsg:
		a.notice = msg.Text
		return a, nil

	case RestoredMsg:
		a.starting = false
		a.birth = msg.Date
		if msg.Notice != "" {
			a.notice = msg.Notice
		}
		if !msg.OK {
			return a.openForm()
		}
		return a, nil

	case tea.MouseMsg:
		if a.form != nil || a.showHelp {
			return a, nil
		}
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress && msg.Y == 1 {
			x := msg.X - (a.width-a.contentWidth())/2
			if g, ok := components.ToggleAtX(x, a.view.Granularity); ok && g != a.view.Granularity {
				return a, switchViewCmd(a.sess, g)
			}
			return a, nil
		}
		var cmd tea.Cmd
		a.gridVP, cmd = a.gridVP.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			if key == "esc" {
				a.form = nil
				return a, nil
			}
			return a.updateForm(msg)
		}
		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		return a.handleKey(msg)
	}

	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	a.notice = ""

	switch key {
	case "q":
		return a, tea.Quit
	case "e", "enter":
		return a.openForm()
	case "w", "d":
		g, _ := components.ToggleByKey(rune(key[0]))
		if g == a.view.Granularity {
			return a, nil
		}
		return a, switchViewCmd(a.sess, g)
	case "tab":
		next := model.Day
		if a.view.Granularity == model.Day {
			next = model.Week
		}
		return a, switchViewCmd(a.sess, next)
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		var cmd tea.Cmd
		a.gridVP, cmd = a.gridVP.Update(msg)
		return a, cmd
	}

	if len(a.cells) == 0 {
		return a, nil
	}
	cols := a.columns()
	switch key {
	case "left", "h":
		a.cursor--
	case "right", "l":
		a.cursor++
	case "up", "k":
		a.cursor -= cols
	case "down", "j":
		a.cursor += cols
	case "home", "g":
		a.cursor = 0
	case "end", "G":
		a.cursor = len(a.cells) - 1
	case "t", ".":
		a.cursor = a.todayIndex()
	default:
		return a, nil
	}
	a.cursor = max(0, min(a.cursor, len(a.cells)-1))
	a.refreshGrid()
	a.scrollToCursor()
	return a, nil
}

func (a App) openForm() (tea.Model, tea.Cmd) {
	a.formVals.Date = a.birth
	a.form = newDateForm(a.formVals, a.loc, a.totalDays)
	if a.width > 0 {
		a.form = a.form.WithWidth(components.CardInnerWidth(a.formCardWidth()))
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		input := strings.TrimSpace(a.formVals.Date)
		a.form = nil
		a.birth = input
		a.log.Debug("birth date submitted from form")
		return a, submitCmd(a.sess, input)
	case huh.StateAborted:
		a.form = nil
		return a, nil
	}
	return a, cmd
}

// ─── Session commands ───────────────────────────────────────────

// Session calls render through Presenter.Send, so they run as commands.

func restoreCmd(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		saved, ok, _ := s.Restore()
		return RestoredMsg{Date: saved, OK: ok}
	}
}

func overrideCmd(s *session.Session, input string, loc *time.Location) tea.Cmd {
	return func() tea.Msg {
		birth, err := budget.ParseBirthDate(input, loc)
		if err != nil {
			return RestoredMsg{Date: input, Notice: session.MsgInvalidBirthDate}
		}
		s.Calculate(birth)
		return RestoredMsg{Date: input, OK: true}
	}
}

func submitCmd(s *session.Session, input string) tea.Cmd {
	return func() tea.Msg {
		_ = s.Submit(input)
		return nil
	}
}

func switchViewCmd(s *session.Session, g model.Granularity) tea.Cmd {
	return func() tea.Msg {
		s.SwitchView(g)
		return nil
	}
}

// ─── Layout ─────────────────────────────────────────────────────

func (a App) formCardWidth() int {
	return min(a.width, formCardWidth)
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

// columns fits the configured row length into the content width.
func (a App) columns() int {
	cols := a.weekCols
	if a.view.Granularity == model.Day {
		cols = a.dayCols
	}
	fit := (a.contentWidth() - 2) / components.GridWidth(1)
	return max(1, min(cols, fit))
}

func (a App) todayIndex() int {
	if len(a.cells) == 0 {
		return 0
	}
	return max(0, min(a.view.LivedCells, len(a.cells)-1))
}

func (a *App) layoutGrid() {
	if a.width == 0 {
		return
	}
	a.gridVP.Width = a.contentWidth()
	a.gridVP.Height = max(a.height-lipgloss.Height(a.renderTop())-1, minGridHeight)
	a.refreshGrid()
}

func (a *App) refreshGrid() {
	a.gridVP.SetContent(components.RenderGrid(a.cells, a.columns(), a.cursor))
}

func (a *App) scrollToCursor() {
	if len(a.cells) == 0 || a.gridVP.Height == 0 {
		return
	}
	row := a.cursor / a.columns()
	switch {
	case row < a.gridVP.YOffset:
		a.gridVP.SetYOffset(row)
	case row >= a.gridVP.YOffset+a.gridVP.Height:
		a.gridVP.SetYOffset(row - a.gridVP.Height + 1)
	}
}

// ─── Views ──────────────────────────────────────────────────────

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	t := theme.Active

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols)\n\n  lifedays needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.form != nil {
		body := a.form.View()
		if a.notice != "" {
			warn := lipgloss.NewStyle().Foreground(t.Warning).Background(t.Surface)
			body = warn.Render(a.notice) + "\n\n" + body
		}
		card := components.ContentCard("", body, a.formCardWidth())
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
			lipgloss.WithWhitespaceBackground(t.Background))
	}

	if a.showHelp {
		return a.viewHelp()
	}

	if !a.hasStats {
		return a.viewEmpty()
	}

	return a.viewMain()
}

func (a App) renderTop() string {
	t := theme.Active
	cw := a.contentWidth()

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	subStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	title := lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(
		titleStyle.Render(" ◈ lifedays") +
			subStyle.Render(fmt.Sprintf(" · %s day budget", cli.FormatNumber(int64(a.totalDays)))))

	header := title + "\n" + components.RenderViewBar(a.view.Granularity, cw)

	statRow := components.MetricCardRow([]components.Metric{
		{Label: "Days lived", Value: cli.FormatNumber(int64(a.stats.DaysLived)), Hint: cli.FormatYears(a.stats.DaysLived)},
		{Label: "Days remaining", Value: cli.FormatNumber(int64(a.stats.DaysRemaining)), Hint: cli.FormatYears(a.stats.DaysRemaining)},
		{Label: "Consumed", Value: cli.FormatPercent(a.stats.Percentage), Hint: "born " + a.birth},
	}, cw)

	cd := a.countdown
	countdownRow := components.MetricCardRow([]components.Metric{
		{Label: "Days", Value: cli.FormatNumber(cd.Days)},
		{Label: "Hours", Value: fmt.Sprintf("%d", cd.Hours)},
		{Label: "Minutes", Value: fmt.Sprintf("%d", cd.Minutes)},
		{Label: "Seconds", Value: fmt.Sprintf("%d", cd.Seconds)},
	}, cw)

	captionStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	label := "Countdown to day " + cli.FormatNumber(int64(a.totalDays))
	if cd.Finished {
		label = "Budget reached"
	}
	info := lipgloss.NewStyle().Background(t.Surface).Width(cw).Render(
		captionStyle.Render(" "+label+" · ") +
			components.LifeBar(a.stats.Percentage, min(cw/2, 60)) +
			captionStyle.Render("  "+grid.Caption(a.view.Granularity)))

	return lipgloss.JoinVertical(lipgloss.Left, header, statRow, countdownRow, info)
}

func (a App) viewMain() string {
	t := theme.Active
	w, h := a.width, a.height

	top := a.renderTop()

	label := ""
	if a.cursor >= 0 && a.cursor < len(a.cells) {
		label = a.cells[a.cursor].Label
	}
	status := components.RenderStatusBar(w, a.notice, label)

	body := lipgloss.Place(a.contentWidth(), a.gridVP.Height, lipgloss.Center, lipgloss.Top,
		a.gridVP.View(), lipgloss.WithWhitespaceBackground(t.Background))

	content := lipgloss.JoinVertical(lipgloss.Left, top, body)
	content = lipgloss.Place(w, h-lipgloss.Height(status), lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, content, status)
}

func (a App) viewEmpty() string {
	t := theme.Active
	msg := "Loading…"
	if !a.starting {
		msg = "No birth date yet. Press e to enter one, q to quit."
	}
	if a.notice != "" {
		msg = a.notice + "\n\n" + msg
	}
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	card := components.ContentCard("", text.Render(msg), min(a.width, emptyCardWidth))
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	b.WriteString("\n")
	bindings := []struct{ key, desc string }{
		{"e Enter", "Enter birth date"},
		{"w d Tab", "Week / day view"},
		{"← → ↑ ↓", "Move selected cell"},
		{"g G t", "First / last / today"},
		{"PgUp PgDn", "Scroll grid"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range bindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
			descStyle.Render(bind.desc))
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		components.ContentCard("◈ Keyboard Shortcuts", b.String(), helpCardWidth),
		lipgloss.WithWhitespaceBackground(t.Background))
}
