package tui

import (
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/casino21/internal/deck"
	"github.com/lox/casino21/internal/game"
	"github.com/lox/casino21/internal/randutil"
)

func TestMain(m *testing.M) {
	// Plain output so assertions can match rendered text
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// newTestModel seats players over a stacked deck dealt in the given order
func newTestModel(t *testing.T, clock quartz.Clock, cards []deck.Card, names ...string) (*TUIModel, *game.Casino) {
	t.Helper()

	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	rng := randutil.New(1)

	reversed := make([]deck.Card, len(cards))
	for i, c := range cards {
		reversed[len(cards)-1-i] = c
	}
	c := game.NewCasino(rng,
		game.WithDeck(deck.FromCards(rng, reversed, deck.WithReplenish(deck.ReplenishOrdered))),
		game.WithLogger(logger),
		game.WithClock(clock),
		game.WithSessionID("0192-test-session"),
	)
	for _, name := range names {
		require.NoError(t, c.AddPlayer(game.NewPlayer(name)))
	}

	m := NewTUIModel(c, logger, clock, Options{PressFlash: 100 * time.Millisecond, TestMode: true})
	require.NoError(t, c.Start())
	return m, c
}

func send(m *TUIModel, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestTUITestMode(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})

	t.Run("test mode captures log entries", func(t *testing.T) {
		m, _ := newTestModel(t, quartz.NewMock(t), nil, "Alice", "Bob")
		assert.True(t, m.IsTestMode())
		assert.Equal(t, []string{"New game: Alice, Bob (stop at 21)"}, m.GetCapturedLog())
	})

	t.Run("production mode does not capture logs", func(t *testing.T) {
		c := game.NewCasino(randutil.New(1))
		m := NewTUIModel(c, logger, quartz.NewMock(t), Options{})

		assert.False(t, m.IsTestMode())
		m.AddLogEntry("Some log entry")
		assert.Nil(t, m.GetCapturedLog())
	})
}

func TestHitAndStandKeys(t *testing.T) {
	cards := []deck.Card{deck.MustCard(101), deck.MustCard(72)}
	m, c := newTestModel(t, quartz.NewMock(t), cards, "Alice", "Bob")

	send(m, runeKey('h'))
	assert.Equal(t, 10, c.Players()[0].Points())
	assert.Equal(t, 1, c.CurrentIndex())

	send(m, runeKey('s'))
	assert.False(t, c.Players()[1].IsActive())
	assert.Equal(t, 0, c.CurrentIndex())

	assert.Equal(t, []string{
		"New game: Alice, Bob (stop at 21)",
		"Alice: hits 10♠ (10)",
		"Bob: stands on 0",
	}, m.GetCapturedLog())
}

func TestButtonFocusAndEnter(t *testing.T) {
	m, c := newTestModel(t, quartz.NewMock(t), []deck.Card{deck.MustCard(31)}, "Alice", "Bob")
	require.Equal(t, 0, m.Focus())

	send(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, m.Focus())
	send(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.Focus(), "focus wraps")
	send(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 1, m.Focus())

	send(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, c.Players()[0].IsActive(), "enter pressed the focused Stand button")
}

func TestButtonFlashUsesClock(t *testing.T) {
	clock := quartz.NewMock(t)
	m, _ := newTestModel(t, clock, []deck.Card{deck.MustCard(21)}, "Alice", "Bob")
	hit := m.Buttons()[0]

	send(m, runeKey('h'))
	assert.True(t, hit.Pressed())

	clock.Advance(50 * time.Millisecond)
	send(m, releaseMsg{})
	assert.True(t, hit.Pressed(), "still lit before the flash expires")

	clock.Advance(50 * time.Millisecond)
	send(m, releaseMsg{})
	assert.False(t, hit.Pressed())
}

func TestButtonPressAndRelease(t *testing.T) {
	clock := quartz.NewMock(t)
	b := NewButton("Hit", game.Hit, clock, 100*time.Millisecond)

	assert.False(t, b.Pressed())
	b.Press()
	b.Update()
	assert.True(t, b.Pressed())

	clock.Advance(100 * time.Millisecond)
	b.Update()
	assert.False(t, b.Pressed())
}

func TestGameOverIgnoresActions(t *testing.T) {
	m, c := newTestModel(t, quartz.NewMock(t), nil, "Alice")
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	send(m, runeKey('s'))
	require.True(t, c.IsOver())
	logged := len(m.GetCapturedLog())

	send(m, runeKey('h'))
	assert.Equal(t, "Game over, press q to quit", m.Status())
	assert.Len(t, m.GetCapturedLog(), logged, "no further actions reach the casino")
	assert.Equal(t, 0, c.Players()[0].Points())
	assert.False(t, m.Buttons()[0].Pressed())

	assert.Contains(t, m.GetCapturedLog(), "Game over: Alice 0")
	assert.Contains(t, m.View(), "Game Over!")
}

func TestMouseClickPressesButton(t *testing.T) {
	m, c := newTestModel(t, quartz.NewMock(t), nil, "Alice", "Bob")
	send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	_ = m.View()
	require.Len(t, m.zones, 2)

	stand := m.zones[1]
	send(m, tea.MouseMsg{X: stand.x0 + 1, Y: stand.y0 + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.False(t, c.Players()[0].IsActive())
	assert.Equal(t, 1, m.Focus())

	// Clicking outside every button does nothing
	send(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, c.Players()[1].IsActive())
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t, quartz.NewMock(t), []deck.Card{deck.MustCard(132), deck.MustCard(11)}, "Alice", "Bob")
	assert.Equal(t, "Loading...", m.View())

	send(m, tea.WindowSizeMsg{Width: 100, Height: 40}, runeKey('h'))

	view := m.View()
	assert.Contains(t, view, "session -session")
	assert.Contains(t, view, "[K♥]")
	assert.Contains(t, view, "Alice: 10")
	assert.Contains(t, view, "▶ Bob: 0")
	assert.Contains(t, view, "Deck: 1 cards")
	assert.Contains(t, view, "Bob to act (0 points)")
	assert.Contains(t, view, "Hit")
	assert.Contains(t, view, "Stand")
	assert.NotContains(t, view, "Game Over!")
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, quartz.NewMock(t), nil, "Alice")

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
