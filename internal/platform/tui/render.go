package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/duel-arcade/internal/core"
	"github.com/vovakirdan/duel-arcade/internal/games/duel"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

var (
	playerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	botStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// renderStatus is the one-line scoreboard above the field. best is the
// stored high score, shown when positive.
func renderStatus(state core.GameState, c duel.Combat, best, width int) string {
	left := playerStyle.Render(fmt.Sprintf("YOU %d", state.Score)) + " " +
		dimStyle.Render(sideSummary(c.Player))
	if best > 0 {
		left += dimStyle.Render(fmt.Sprintf("  best %d", best))
	}
	right := dimStyle.Render(sideSummary(c.Bot)) + " " +
		botStyle.Render(fmt.Sprintf("%d BOT", state.OpponentScore))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func sideSummary(s duel.Side) string {
	ammo := fmt.Sprintf("ammo %d", s.Ammo)
	if s.Ammo == 0 {
		ammo = "reloading"
	}
	return fmt.Sprintf("hp %3.0f  lives %d  %s", s.Health, s.Lives, ammo)
}

// renderBanner returns the overlay text for paused or finished matches,
// or "" while playing.
func renderBanner(state core.GameState) string {
	switch {
	case state.GameOver && state.Winner == core.Player1:
		return bannerStyle.Render("YOU WIN  r: rematch  q: quit")
	case state.GameOver:
		return bannerStyle.Render("BOT WINS  r: rematch  q: quit")
	case state.Paused:
		return bannerStyle.Render("PAUSED  p: resume")
	}
	return ""
}
