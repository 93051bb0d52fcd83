package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette every renderer pulls from.
type Theme struct {
	Name      string
	Primary   lipgloss.TerminalColor // prices, selection marker
	Secondary lipgloss.TerminalColor // features
	Tertiary  lipgloss.TerminalColor // image indicator
	OnPrimary lipgloss.TerminalColor // car names, chevrons
	Muted     lipgloss.TerminalColor
	Border    lipgloss.TerminalColor
	Success   lipgloss.TerminalColor
	Error     lipgloss.TerminalColor
}

var (
	lightTheme = Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#6650A4"),
		Secondary: lipgloss.Color("#625B71"),
		Tertiary:  lipgloss.Color("#7D5260"),
		OnPrimary: lipgloss.Color("#1C1B1F"),
		Muted:     lipgloss.Color("#79747E"),
		Border:    lipgloss.Color("#CAC4D0"),
		Success:   lipgloss.Color("#2E7D32"),
		Error:     lipgloss.Color("#B3261E"),
	}
	darkTheme = Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#FF8C00"),
		Secondary: lipgloss.Color("#CCC2DC"),
		Tertiary:  lipgloss.Color("#EFB8C8"),
		OnPrimary: lipgloss.Color("#D3D3D3"),
		Muted:     lipgloss.Color("#938F99"),
		Border:    lipgloss.Color("#49454F"),
		Success:   lipgloss.Color("#81C784"),
		Error:     lipgloss.Color("#F2B8B5"),
	}
)

// autoTheme lets Lip Gloss choose per color from the terminal background.
func autoTheme() Theme {
	pick := func(l, d lipgloss.TerminalColor) lipgloss.TerminalColor {
		return lipgloss.AdaptiveColor{Light: string(l.(lipgloss.Color)), Dark: string(d.(lipgloss.Color))}
	}
	l, d := lightTheme, darkTheme
	return Theme{
		Name:      "auto",
		Primary:   pick(l.Primary, d.Primary),
		Secondary: pick(l.Secondary, d.Secondary),
		Tertiary:  pick(l.Tertiary, d.Tertiary),
		OnPrimary: pick(l.OnPrimary, d.OnPrimary),
		Muted:     pick(l.Muted, d.Muted),
		Border:    pick(l.Border, d.Border),
		Success:   pick(l.Success, d.Success),
		Error:     pick(l.Error, d.Error),
	}
}

var current = autoTheme()

// ThemeNames lists the values accepted by SetTheme.
var ThemeNames = []string{"auto", "light", "dark"}

// ThemeByName returns a palette without changing the current one.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return autoTheme(), nil
	case "light", "day":
		return lightTheme, nil
	case "dark", "night":
		return darkTheme, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q (want %s)", name, strings.Join(ThemeNames, ", "))
}

// SetTheme switches the palette used by Current.
func SetTheme(name string) error {
	t, err := ThemeByName(name)
	if err != nil {
		return err
	}
	current = t
	return nil
}

func Current() Theme { return current }

// Flip swaps light and dark. Auto resolves against the detected background
// first, so the first flip always visibly changes the palette.
func (t Theme) Flip() Theme {
	switch t.Name {
	case "light":
		return darkTheme
	case "dark":
		return lightTheme
	}
	if lipgloss.HasDarkBackground() {
		return lightTheme
	}
	return darkTheme
}
