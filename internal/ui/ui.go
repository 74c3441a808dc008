package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/DaanHessen/dicetray/internal/config"
	"github.com/DaanHessen/dicetray/internal/dice"
	"github.com/DaanHessen/dicetray/internal/equation"
	"github.com/DaanHessen/dicetray/internal/session"
	"github.com/DaanHessen/dicetray/internal/store"
	"github.com/DaanHessen/dicetray/internal/text"
)

const (
	viewTray    = "tray"
	viewHelp    = "help"
	viewHistory = "history"
)

// standardSides is the die row, in key order 1..7.
var standardSides = []int{4, 6, 8, 10, 12, 20, 100}

// decrementKeys are the shifted number keys on a US layout.
var decrementKeys = []string{"!", "@", "#", "$", "%", "^", "&"}

var keyHelp = []text.KeyHelp{
	{Keys: "1-7", Does: "add a d4, d6, d8, d10, d12, d20 or d100"},
	{Keys: "shift+1-7", Does: "remove one of that die"},
	{Keys: "←/→", Does: "move the die cursor"},
	{Keys: "+ / -", Does: "add or remove the selected die"},
	{Keys: "r, enter", Does: "roll and sum every face"},
	{Keys: "h", Does: "roll, keep the highest face of each die type"},
	{Keys: "l", Does: "roll, keep the lowest face of each die type"},
	{Keys: "c", Does: "clear the equation"},
	{Keys: "t / T", Does: "next / previous theme"},
	{Keys: "y", Does: "roll history (needs a database)"},
	{Keys: "?", Does: "this help"},
	{Keys: "esc", Does: "back to the tray"},
	{Keys: "q", Does: "quit"},
}

type historyLoadedMsg struct {
	records []store.HistoryRecord
	err     error
}

type model struct {
	ctx      context.Context
	sess     *session.Session
	history  *store.HistoryRepo
	version  string
	seedText string

	dice    []dice.Die
	cursor  int
	display session.Display
	status  string

	view        string
	theme       string
	styles      styles
	helpDoc     string
	historyDoc  string
	historyBusy bool

	width  int
	height int
}

func initialModel(ctx context.Context, sess *session.Session, history *store.HistoryRepo, cfg config.Config, version string) model {
	m := model{
		ctx:      ctx,
		sess:     sess,
		history:  history,
		version:  version,
		seedText: cfg.Seed,
		view:     viewTray,
	}
	for _, s := range standardSides {
		m.dice = append(m.dice, dice.New(s))
	}
	m.setTheme(cfg.Theme)
	return m
}

func (m *model) setTheme(name string) {
	if _, ok := palettes[name]; !ok {
		name = defaultTheme
	}
	m.theme = name
	m.styles = newStyles(paletteFor(name))
}

// tea.Model implementation ---------------------------------------------------
func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpDoc = ""
		return m, nil
	case historyLoadedMsg:
		m.historyBusy = false
		if msg.err != nil {
			m.status = "history: " + msg.err.Error()
			m.view = viewTray
			return m, nil
		}
		m.historyDoc = text.Render(text.HistoryMarkdown(msg.records), m.contentWidth())
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m model) handleKey(k string) (tea.Model, tea.Cmd) {
	switch k {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "esc":
		m.view = viewTray
		return m, nil
	case "?":
		if m.view == viewHelp {
			m.view = viewTray
		} else {
			m.view = viewHelp
			m.helpDoc = m.helpView()
		}
		return m, nil
	case "y":
		if m.history == nil {
			m.status = "history is off (set history: true and a dsn)"
			return m, nil
		}
		m.view = viewHistory
		m.historyBusy = true
		return m, m.loadHistory()
	case "t":
		m.setTheme(nextThemeName(m.theme, 1))
		m.status = "theme: " + m.theme
		return m, nil
	case "T":
		m.setTheme(nextThemeName(m.theme, -1))
		m.status = "theme: " + m.theme
		return m, nil
	}
	if m.view != viewTray {
		return m, nil
	}

	switch k {
	case "left":
		m.cursor = (m.cursor - 1 + len(m.dice)) % len(m.dice)
	case "right", "tab":
		m.cursor = (m.cursor + 1) % len(m.dice)
	case "+", "=":
		m.apply(session.ActionIncrement, m.dice[m.cursor].Sides())
	case "-", "_":
		m.apply(session.ActionDecrement, m.dice[m.cursor].Sides())
	case "r", "enter":
		m.apply(session.ActionRoll, 0)
	case "h":
		m.apply(session.ActionTakeHighest, 0)
	case "l":
		m.apply(session.ActionTakeLowest, 0)
	case "c":
		m.apply(session.ActionClear, 0)
	default:
		if i := dieIndex(k); i >= 0 {
			m.cursor = i
			m.apply(session.ActionIncrement, m.dice[i].Sides())
		} else if i := indexOf(decrementKeys, k); i >= 0 {
			m.cursor = i
			m.apply(session.ActionDecrement, m.dice[i].Sides())
		}
	}
	return m, nil
}

func (m *model) apply(a session.Action, sides int) {
	d, err := m.sess.Apply(m.ctx, a, sides)
	if err != nil {
		m.status = a.String() + ": " + err.Error()
		return
	}
	m.status = ""
	m.display = d
	if (a == session.ActionRoll || a == session.ActionTakeHighest || a == session.ActionTakeLowest) && d.Result == "" {
		m.status = "nothing to roll"
	}
}

func (m model) loadHistory() tea.Cmd {
	ctx, repo := m.ctx, m.history
	return func() tea.Msg {
		if repo == nil {
			return historyLoadedMsg{err: errors.New("history is off")}
		}
		records, err := repo.ListRecent(ctx, 30)
		return historyLoadedMsg{records: records, err: err}
	}
}

func dieIndex(k string) int {
	if len(k) == 1 && k[0] >= '1' && k[0] < '1'+byte(len(standardSides)) {
		return int(k[0] - '1')
	}
	return -1
}

func indexOf(list []string, k string) int {
	for i, v := range list {
		if v == k {
			return i
		}
	}
	return -1
}

// Layout rendering -----------------------------------------------------------
func (m model) View() string {
	switch m.view {
	case viewHelp:
		return m.renderDoc(m.helpView())
	case viewHistory:
		if m.historyBusy {
			return m.renderDoc(m.styles.muted.Render("loading history…"))
		}
		return m.renderDoc(m.historyDoc)
	default:
		return m.renderTray()
	}
}

func (m model) contentWidth() int {
	w := m.width
	if w <= 0 {
		w = 80
	}
	return w - 4
}

func (m model) helpView() string {
	if m.helpDoc != "" {
		return m.helpDoc
	}
	return text.Render(text.HelpMarkdown(keyHelp), m.contentWidth())
}

func (m model) renderDoc(body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTopBar(), body, m.styles.muted.Render("esc back  q quit"))
}

func (m model) renderTray() string {
	w := m.contentWidth()
	eq := m.sess.Equation()

	var row []string
	for i, d := range m.dice {
		label := d.String()
		if n := eq.Count(d); n > 0 {
			label = fmt.Sprintf("%s ×%d", label, n)
		}
		st := m.styles.die
		if i == m.cursor {
			st = m.styles.dieSel
		}
		row = append(row, st.Render(label))
	}
	dieRow := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(row, " ")...)

	eqText := m.styles.muted.Render("(empty)")
	if s := eq.String(); s != "" {
		eqText = m.styles.equation.Render(s)
	}
	eqPanel := m.styles.panel.Width(w).Render(m.styles.label.Render("EQUATION") + "\n" + eqText)

	resText := m.styles.muted.Render("(no roll yet)")
	if m.display.Result != "" {
		head := m.display.Rolled
		if m.display.Mode != equation.ModeSum {
			head += "  [" + m.display.Mode.String() + "]"
		}
		resText = m.styles.muted.Render(head) + "\n" +
			m.styles.result.Render(m.display.Result) + "\n" +
			m.styles.total.Render(fmt.Sprintf("TOTAL %d", m.display.Total))
	}
	resPanel := m.styles.panel.Width(w).Render(m.styles.label.Render("RESULT") + "\n" + resText)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderTopBar(),
		"",
		dieRow,
		eqPanel,
		resPanel,
		m.renderBottomBar(),
	)
}

func (m model) renderTopBar() string {
	left := "DICETRAY"
	if m.version != "" {
		left += " " + m.version
	}
	right := "theme " + m.theme
	if m.seedText != "" {
		right = "seed " + m.seedText + " • " + right
	}
	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.styles.title.Render(left + strings.Repeat(" ", gap) + right)
}

func (m model) renderBottomBar() string {
	legend := "[1-7] add  [!-&] remove  [r] roll  [h] highest  [l] lowest  [c] clear  [t] theme  [y] history  [?] help  [q] quit"
	lines := []string{m.styles.muted.Render(legend)}
	if m.status != "" {
		lines = append(lines, m.styles.warn.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func intersperse(items []string, sep string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, it)
	}
	return out
}
