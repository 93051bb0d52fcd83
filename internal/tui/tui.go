package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Makepad-fr/showroom/internal/logging"
	"github.com/Makepad-fr/showroom/internal/model"
	"github.com/Makepad-fr/showroom/internal/state"
	"github.com/Makepad-fr/showroom/internal/ui"
)

const appTitle = "Car Showroom"

// chrome is the number of rows taken by the title, help line and frame.
const chrome = 6

// Model is the showroom screen. Interaction state lives in the board; the
// model only tracks which row has the cursor.
type Model struct {
	board  *state.Board
	cursor int

	theme  ui.Theme
	styles ui.Styles
	keys   keyMap
	help   help.Model
	vp     viewport.Model

	width, height int
	// first line and height of every rendered card inside the viewport
	offsets []int
	heights []int
}

// New builds the screen for a validated catalog.
func New(cars []model.Car, theme ui.Theme, width, height int) Model {
	m := Model{
		board: state.NewBoard(cars),
		keys:  defaultKeys(),
		help:  help.New(),
		vp:    viewport.New(0, 0),
	}
	m.setTheme(theme)
	m.resize(width, height)
	return m
}

// Run starts the screen in the alternate buffer and blocks until it quits.
func Run(cars []model.Car, theme ui.Theme) error {
	w, h := widthHeight()
	logging.Info("starting showroom", zap.Int("cars", len(cars)), zap.String("theme", theme.Name))
	p := tea.NewProgram(New(cars, theme, w, h), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.cursor < m.board.Len()-1 {
				m.cursor++
				m.refresh()
			}
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.apply(state.CmdToggle)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			if m.expanded() {
				m.apply(state.CmdPrev)
			}
			return m, nil
		case key.Matches(msg, m.keys.Next):
			if m.expanded() {
				m.apply(state.CmdNext)
			}
			return m, nil
		case key.Matches(msg, m.keys.Theme):
			m.setTheme(m.theme.Flip())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	title := m.styles.AppTitle.Render(appTitle)
	content := strings.Join([]string{title, m.vp.View(), m.help.View(m.keys)}, "\n")
	return m.styles.Frame.Render(content)
}

// Cursor is the selected row.
func (m Model) Cursor() int { return m.cursor }

// Row exposes the interaction state of row i.
func (m Model) Row(i int) (state.Item, error) {
	c, err := m.board.Row(i)
	if err != nil {
		return state.Item{}, err
	}
	return c.State(), nil
}

// Theme is the active palette.
func (m Model) Theme() ui.Theme { return m.theme }

func (m *Model) expanded() bool {
	s, err := m.Row(m.cursor)
	return err == nil && s.Expanded
}

func (m *Model) apply(cmd string) {
	if err := m.board.Apply(m.cursor, cmd); err != nil {
		logging.Warn("command rejected", zap.Int("row", m.cursor), zap.String("cmd", cmd), zap.Error(err))
		return
	}
	s, _ := m.Row(m.cursor)
	logging.Debug("row updated",
		zap.Int("row", m.cursor),
		zap.String("cmd", cmd),
		zap.Bool("expanded", s.Expanded),
		zap.Int("image", s.CurrentImage),
	)
	m.refresh()
}

func (m *Model) setTheme(t ui.Theme) {
	m.theme = t
	m.styles = ui.NewStyles(t)
	m.refresh()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.help.Width = w
	m.vp.Width = max(w-4, 1)
	m.vp.Height = max(h-chrome, 1)
	m.refresh()
}

// refresh re-renders every card and scrolls so the selected one is visible.
func (m *Model) refresh() {
	if m.board == nil {
		return
	}
	cards := make([]string, 0, m.board.Len())
	m.offsets = m.offsets[:0]
	m.heights = m.heights[:0]
	line := 0
	for i := 0; i < m.board.Len(); i++ {
		r, err := m.board.Render(i)
		if err != nil {
			continue
		}
		card := ui.RenderCard(r, m.styles, ui.CardOptions{
			Width:    m.vp.Width,
			Selected: i == m.cursor,
			Controls: true,
		})
		h := lipgloss.Height(card)
		m.offsets = append(m.offsets, line)
		m.heights = append(m.heights, h)
		line += h
		cards = append(cards, card)
	}
	m.vp.SetContent(strings.Join(cards, "\n"))
	m.scrollToCursor()
}

func (m *Model) scrollToCursor() {
	if m.cursor >= len(m.offsets) || m.vp.Height <= 0 {
		return
	}
	top := m.offsets[m.cursor]
	bottom := top + m.heights[m.cursor]
	switch {
	case top < m.vp.YOffset:
		m.vp.SetYOffset(top)
	case bottom > m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(min(top, bottom-m.vp.Height))
	}
}

func widthHeight() (int, int) {
	w, h := 80, 24
	if tw, th, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		w, h = tw, th
	}
	return w, h
}
