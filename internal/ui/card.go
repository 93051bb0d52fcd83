package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/showroom/internal/model"
)

const (
	chevronCollapsed = "▼"
	chevronExpanded  = "▲"
	detailCaption    = "Detail photos"
	minCardWidth     = 32
)

// CardOptions tune how RenderCard lays out a row.
type CardOptions struct {
	Width    int // outer width including the border; 0 means fit content
	Selected bool
	Controls bool // show prev/next key hints under the image
}

// RenderCard draws one catalog row from its render request.
func RenderCard(r model.RenderRequest, st Styles, opt CardOptions) string {
	inner := 0
	if opt.Width > 0 {
		inner = max(opt.Width-4, minCardWidth-4)
	}

	info := []string{st.Name.Render(r.Name), st.Price.Render(r.Price)}
	for _, f := range r.Features {
		info = append(info, st.Feature.Render("• "+f))
	}
	icon := st.Icon.Render("[" + r.Icon + "]")
	body := lipgloss.JoinHorizontal(lipgloss.Top, icon, "  ", strings.Join(info, "\n"))

	chevron := chevronCollapsed
	if r.Expanded {
		chevron = chevronExpanded
	}
	chevron = st.Chevron.Render(chevron)

	gap := 2
	if inner > 0 {
		gap = max(inner-lipgloss.Width(body)-lipgloss.Width(chevron), 2)
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, body, strings.Repeat(" ", gap), chevron)

	parts := []string{header}
	if r.Expanded {
		parts = append(parts, "", renderDetail(r, st, opt, max(inner, lipgloss.Width(header))))
	}

	card := st.Card
	if opt.Selected {
		card = st.Focused
	}
	if inner > 0 {
		card = card.Width(inner + 2)
	}
	return card.Render(strings.Join(parts, "\n"))
}

func renderDetail(r model.RenderRequest, st Styles, opt CardOptions, width int) string {
	counter := st.Counter.Render(fmt.Sprintf("%d / %d", r.ImageIndex+1, r.ImageCount))
	image := st.Image.Render(r.Image)

	lines := []string{
		st.Caption.Render(detailCaption),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, image),
	}
	if opt.Controls {
		prev := st.Control.Render("◀ prev")
		next := st.Control.Render("next ▶")
		free := width - lipgloss.Width(prev) - lipgloss.Width(next) - lipgloss.Width(counter)
		left := max(free/2, 1)
		right := max(free-left, 1)
		lines = append(lines, prev+strings.Repeat(" ", left)+counter+strings.Repeat(" ", right)+next)
	} else {
		lines = append(lines, lipgloss.PlaceHorizontal(width, lipgloss.Center, counter))
	}
	return strings.Join(lines, "\n")
}
