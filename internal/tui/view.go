package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/fifteen/internal/fifteen"
)

// Tile geometry. cellAt relies on every cell occupying exactly this many
// terminal columns and rows, starting at (boardLeft, boardTop).
const (
	cellWidth  = 6
	cellHeight = 3
	boardLeft  = 2
	boardTop   = 2
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#e0af68")).
			MarginLeft(boardLeft)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Width(cellWidth - 2).
			Align(lipgloss.Center)

	blankStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellHeight)

	boardStyle = lipgloss.NewStyle().MarginLeft(boardLeft)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9aa5ce")).
			MarginLeft(boardLeft)

	wonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9ece6a")).
			Padding(0, 2).
			MarginLeft(boardLeft)
)

func (m Model) View() string {
	if m.width > 0 && (m.width < m.state.Dim*cellWidth+2*boardLeft ||
		m.height < m.state.Dim*cellHeight+boardTop+4) {
		return "\n  terminal too small for the board\n"
	}

	var v strings.Builder

	fmt.Fprintf(&v, "\n%s\n", titleStyle.Render(
		fmt.Sprintf("fifteen %d×%d", m.state.Dim, m.state.Dim)))
	v.WriteString(boardStyle.Render(m.renderBoard()))
	v.WriteString("\n\n")

	if m.state.Status == fifteen.Won {
		v.WriteString(wonStyle.Render(fmt.Sprintf(
			"solved in %d moves, %s!\npress n for a new game", m.state.Moves,
			clock(m.state.Elapsed))))
		v.WriteString("\n\n")
	}

	v.WriteString(infoStyle.Render(m.renderInfo()))
	v.WriteString("\n")

	return v.String()
}

func (m Model) renderBoard() string {
	n := m.state.Dim
	rows := make([]string, 0, n)
	for y := range n {
		cells := make([]string, 0, n)
		for x := range n {
			v := m.state.Board[y*n+x]
			if v == 0 {
				cells = append(cells, blankStyle.Render(""))
			} else {
				cells = append(cells, tileStyle.Render(fmt.Sprintf("%d", v)))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderInfo() string {
	best := "—"
	if b, ok := m.state.BestFor(m.state.Dim); ok {
		best = fmt.Sprintf("%d moves", b)
	}
	return fmt.Sprintf("moves %d · time %s · best %s\n%s",
		m.state.Moves, clock(m.state.Elapsed), best,
		"arrows/hjkl slide · click a tile · n new · r restart · 3-5 size · q quit")
}

func clock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
