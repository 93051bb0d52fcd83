package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the Lip Gloss styles derived from a Theme.
type Styles struct {
	AppTitle lipgloss.Style
	Name     lipgloss.Style
	Price    lipgloss.Style
	Feature  lipgloss.Style
	Icon     lipgloss.Style
	Chevron  lipgloss.Style
	Caption  lipgloss.Style
	Image    lipgloss.Style
	Counter  lipgloss.Style
	Control  lipgloss.Style
	Muted    lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Focused  lipgloss.Style
	Frame    lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t Theme) Styles {
	return Styles{
		AppTitle: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Name:     lipgloss.NewStyle().Bold(true).Foreground(t.OnPrimary),
		Price:    lipgloss.NewStyle().Foreground(t.Primary),
		Feature:  lipgloss.NewStyle().Foreground(t.Secondary),
		Icon:     lipgloss.NewStyle().Foreground(t.Muted),
		Chevron:  lipgloss.NewStyle().Foreground(t.OnPrimary),
		Caption:  lipgloss.NewStyle().Italic(true).Foreground(t.Muted),
		Image: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Tertiary).
			Padding(0, 2),
		Counter:  lipgloss.NewStyle().Foreground(t.Tertiary),
		Control:  lipgloss.NewStyle().Foreground(t.Primary),
		Muted:    lipgloss.NewStyle().Faint(true),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
	}
}
