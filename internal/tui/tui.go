package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/game"
)

const logHeight = 6

// Options tune the model
type Options struct {
	// PressFlash is how long a pressed button stays lit
	PressFlash time.Duration
	// TestMode captures log lines and skips viewport updates
	TestMode bool
}

// TUIModel is the Bubble Tea model that draws a casino and feeds it actions
type TUIModel struct {
	casino *game.Casino
	logger *log.Logger
	clock  quartz.Clock

	buttons []*Button
	zones   []zone
	focus   int

	keys        keyMap
	help        help.Model
	logViewport viewport.Model
	formatter   game.EventFormatter

	gameLog  []string
	status   string
	quitting bool

	width  int
	height int

	testMode    bool
	capturedLog []string
}

// releaseMsg fires when a pressed button's flash may have expired
type releaseMsg struct{}

// NewTUIModel creates a model over a started casino and subscribes to its events
func NewTUIModel(casino *game.Casino, logger *log.Logger, clock quartz.Clock, opts Options) *TUIModel {
	if opts.PressFlash == 0 {
		opts.PressFlash = 100 * time.Millisecond
	}

	m := &TUIModel{
		casino: casino,
		logger: logger.WithPrefix("tui"),
		clock:  clock,
		buttons: []*Button{
			NewButton("Hit", game.Hit, clock, opts.PressFlash),
			NewButton("Stand", game.Stand, clock, opts.PressFlash),
		},
		keys:        defaultKeyMap(),
		help:        help.New(),
		logViewport: viewport.New(10, logHeight),
		formatter:   game.EventFormatter{Card: renderCard},
		testMode:    opts.TestMode,
	}
	casino.Events().Subscribe(m)
	return m
}

// OnEvent implements game.EventSubscriber
func (m *TUIModel) OnEvent(event game.GameEvent) {
	m.logger.Debug("Event", "type", event.EventType(), "text", game.EventFormatter{}.Format(event))
	if event.EventType() == game.EventTypeTurnChange {
		return // the table view already marks the current player
	}
	m.AddLogEntry(m.formatter.Format(event))
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return nil
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case releaseMsg:
		// handled by the button refresh below

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Hit):
			cmds = append(cmds, m.press(0))
		case key.Matches(msg, m.keys.Stand):
			cmds = append(cmds, m.press(1))
		case key.Matches(msg, m.keys.Left):
			m.focus = (m.focus + len(m.buttons) - 1) % len(m.buttons)
		case key.Matches(msg, m.keys.Right):
			m.focus = (m.focus + 1) % len(m.buttons)
		case key.Matches(msg, m.keys.Press):
			cmds = append(cmds, m.press(m.focus))
		default:
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			for i, z := range m.zones {
				if z.contains(msg.X, msg.Y) {
					m.focus = i
					cmds = append(cmds, m.press(i))
					break
				}
			}
		} else {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	for _, b := range m.buttons {
		b.Update()
	}

	return m, tea.Batch(cmds...)
}

// press lights button i and applies its action to the current player
func (m *TUIModel) press(i int) tea.Cmd {
	if i < 0 || i >= len(m.buttons) {
		return nil
	}
	button := m.buttons[i]

	if m.casino.IsOver() {
		m.status = "Game over, press q to quit"
		return nil
	}

	button.Press()
	m.status = ""

	player := m.casino.CurrentPlayer()
	if _, err := m.casino.ApplyAction(m.casino.CurrentIndex(), button.Action); err != nil {
		m.logger.Warn("Action rejected", "action", button.Action, "error", err)
		if errors.Is(err, game.ErrInvalidTurn) {
			m.status = fmt.Sprintf("%s cannot %s now", player.Name(), button.Action)
		} else {
			m.status = err.Error()
		}
	}

	return m.releaseAfter(button)
}

// releaseAfter wakes the model when the button's flash expires
func (m *TUIModel) releaseAfter(b *Button) tea.Cmd {
	return func() tea.Msg {
		t := m.clock.NewTimer(b.flash, "tui", "release")
		<-t.C
		return releaseMsg{}
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	// Don't render until we have valid dimensions
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	snap := m.casino.Snapshot()

	var sections []string
	sections = append(sections, HeaderStyle.Render(fmt.Sprintf("♠ ♥ Casino 21 ♦ ♣  session %s", shortID(snap.SessionID))))
	sections = append(sections, TableStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.renderPlayers(snap),
		"",
		m.renderDeck(snap),
	)))

	if snap.GameOver {
		sections = append(sections, GameOverStyle.Render("Game Over!"))
	} else if p := m.casino.CurrentPlayer(); p != nil {
		sections = append(sections, CurrentMarkerStyle.Render(fmt.Sprintf("%s to act (%d points)", p.Name(), p.Points())))
	}

	above := lipgloss.JoinVertical(lipgloss.Left, sections...)
	buttonsRow := m.renderButtons(lipgloss.Height(above), snap.GameOver)

	status := ""
	if m.status != "" {
		status = ErrorStyle.Render(m.status)
	}

	logWidth := max(m.width-2, 1)
	m.logViewport.Width = logWidth
	m.logViewport.Height = logHeight
	logPane := LogStyle.Width(logWidth).Render(m.logViewport.View())

	return lipgloss.JoinVertical(lipgloss.Left,
		above,
		buttonsRow,
		status,
		logPane,
		m.help.View(m.keys),
	)
}

// renderPlayers draws one column per player: last card, then name and points
func (m *TUIModel) renderPlayers(snap game.TableState) string {
	columnWidth := 16
	if n := len(snap.Players); n > 0 && m.width > 0 {
		columnWidth = max(columnWidth, (m.width-6)/n)
	}

	columns := make([]string, len(snap.Players))
	for i, p := range snap.Players {
		card := CardBackStyle.Render("[  ]")
		if p.LastCard != nil {
			card = "[" + renderCard(*p.LastCard) + "]"
		}

		nameStyle := InactivePlayerStyle
		if p.Active {
			nameStyle = ActivePlayerStyle
		}
		marker := " "
		if p.Current {
			marker = CurrentMarkerStyle.Render("▶")
		}

		columns[i] = lipgloss.NewStyle().Width(columnWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
			"  "+card,
			marker+" "+nameStyle.Render(fmt.Sprintf("%s: %d", p.Name, p.Points)),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

// renderDeck draws the remaining cards as a fan of backs
func (m *TUIModel) renderDeck(snap game.TableState) string {
	fanWidth := max(m.width-30, 1)
	fan := CardBackStyle.Render(strings.Repeat("▌", min(len(snap.Deck), fanWidth)))

	info := fmt.Sprintf("Deck: %d cards", len(snap.Deck))
	if snap.Replenished > 0 {
		info += fmt.Sprintf(" (reshuffled %dx)", snap.Replenished)
	}
	return fan + "\n" + InfoStyle.Render(info)
}

// renderButtons draws the buttons and records where they landed for mouse clicks
func (m *TUIModel) renderButtons(top int, disabled bool) string {
	rendered := make([]string, 0, len(m.buttons)*2)
	m.zones = m.zones[:0]

	x := 0
	for i, b := range m.buttons {
		if i > 0 {
			rendered = append(rendered, "  ")
			x += 2
		}
		view := b.Render(i == m.focus, disabled)
		w, h := lipgloss.Width(view), lipgloss.Height(view)
		m.zones = append(m.zones, zone{x0: x, y0: top, x1: x + w, y1: top + h})
		rendered = append(rendered, view)
		x += w
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderCard(c deck.Card) string {
	if c.IsRed() {
		return RedCardStyle.Render(c.String())
	}
	return BlackCardStyle.Render(c.String())
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	// In test mode, also capture the log entry
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Status returns the status line shown under the buttons
func (m *TUIModel) Status() string {
	return m.status
}

// Focus returns the index of the focused button
func (m *TUIModel) Focus() int {
	return m.focus
}

// Buttons returns the model's buttons in display order
func (m *TUIModel) Buttons() []*Button {
	return m.buttons
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}

// Run starts the full-screen program and blocks until the user quits
func Run(m *TUIModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
