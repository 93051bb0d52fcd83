package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/showroom/internal/model"
	"github.com/Makepad-fr/showroom/internal/state"
	"github.com/Makepad-fr/showroom/internal/ui"
)

func testCars() []model.Car {
	return []model.Car{
		{Name: "Alpha", Price: "Rp 1", Features: []string{"fast"}, Icon: "alpha_icon", DetailImages: []string{"a1", "a2", "a3"}},
		{Name: "Beta", Price: "Rp 2", Icon: "beta_icon", DetailImages: []string{"b1", "b2"}},
		{Name: "Gamma", Price: "Rp 3", Icon: "gamma_icon", DetailImages: []string{"g1"}},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	theme, err := ui.ThemeByName("light")
	require.NoError(t, err)
	return New(testCars(), theme, 80, 40)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var tm tea.Model = m
	for _, msg := range msgs {
		tm, _ = tm.Update(msg)
	}
	out, ok := tm.(Model)
	require.True(t, ok)
	return out
}

func rowState(t *testing.T, m Model, i int) state.Item {
	t.Helper()
	s, err := m.Row(i)
	require.NoError(t, err)
	return s
}

func TestToggleAndBrowse(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, enter)
	assert.Equal(t, state.Item{Expanded: true}, rowState(t, m, 0))

	m = send(t, m, right, right)
	assert.Equal(t, state.Item{Expanded: true, CurrentImage: 2}, rowState(t, m, 0))

	m = send(t, m, enter)
	assert.Equal(t, state.Item{CurrentImage: 2}, rowState(t, m, 0), "collapse keeps the image index")

	m = send(t, m, runes(" "))
	assert.True(t, rowState(t, m, 0).Expanded)
}

func TestPrevNextIgnoredWhileCollapsed(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, right, left, runes("l"))
	assert.Equal(t, state.Item{}, rowState(t, m, 0))
}

func TestKeysOnlyTouchSelectedRow(t *testing.T) {
	m := newTestModel(t)

	m = send(t, m, down, enter, left)
	assert.Equal(t, 1, m.Cursor())
	assert.Equal(t, state.Item{Expanded: true, CurrentImage: 1}, rowState(t, m, 1))
	assert.Equal(t, state.Item{}, rowState(t, m, 0))
	assert.Equal(t, state.Item{}, rowState(t, m, 2))

	m = send(t, m, up, enter, runes("h"))
	assert.Equal(t, state.Item{Expanded: true, CurrentImage: 2}, rowState(t, m, 0))
	assert.Equal(t, state.Item{Expanded: true, CurrentImage: 1}, rowState(t, m, 1))
}

func TestCursorStaysInBounds(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, up)
	assert.Equal(t, 0, m.Cursor())
	m = send(t, m, down, down, down, down)
	assert.Equal(t, 2, m.Cursor())
}

func TestSingleImageCarouselLoops(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, down, down, enter, right, left, right)
	assert.Equal(t, state.Item{Expanded: true}, rowState(t, m, 2))
}

func TestThemeFlip(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, runes("t"))
	assert.Equal(t, "dark", m.Theme().Name)
	m = send(t, m, runes("t"))
	assert.Equal(t, "light", m.Theme().Name)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	for _, msg := range []tea.Msg{runes("q"), tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyCtrlC}} {
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestViewShowsCurrentImageWhenExpanded(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, appTitle)
	assert.Contains(t, view, "Alpha")
	assert.Contains(t, view, "Beta")
	assert.NotContains(t, view, "a1")

	m = send(t, m, enter, right)
	view = m.View()
	assert.Contains(t, view, "a2")
	assert.Contains(t, view, "2 / 3")
}

func TestWindowResize(t *testing.T) {
	m := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 50, Height: 12})
	assert.Equal(t, 46, m.vp.Width)
	assert.Equal(t, 6, m.vp.Height)
}

func TestScrollFollowsCursor(t *testing.T) {
	theme, err := ui.ThemeByName("dark")
	require.NoError(t, err)
	m := New(testCars(), theme, 60, 14)

	m = send(t, m, down, down)
	top := m.offsets[2]
	bottom := top + m.heights[2]
	assert.LessOrEqual(t, m.vp.YOffset, top)
	assert.GreaterOrEqual(t, m.vp.YOffset+m.vp.Height, min(bottom, top+m.vp.Height))

	m = send(t, m, up, up)
	assert.Equal(t, 0, m.vp.YOffset)
}
