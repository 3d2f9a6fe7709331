package tui

import (
	"io"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vancomm/fifteen/internal/fifteen"
)

func testModel(b fifteen.Board, dim int) Model {
	return Model{
		state: fifteen.State{
			Board:  b,
			Dim:    dim,
			Status: fifteen.Running,
			Best:   map[int]int{},
		},
		rnd:    rand.New(rand.NewPCG(1, 2)),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		keys:   Keys,
	}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned a %T", next)
	}
	return model
}

func TestCellAt(t *testing.T) {
	m := testModel(fifteen.Solved(3), 3)

	tests := []struct {
		name string
		x, y int
		want int
		ok   bool
	}{
		{"top-left corner of first tile", boardLeft, boardTop, 0, true},
		{"second tile", boardLeft + cellWidth, boardTop, 1, true},
		{"inside last tile", boardLeft + 3*cellWidth - 1, boardTop + 3*cellHeight - 1, 8, true},
		{"left of the board", boardLeft - 1, boardTop, 0, false},
		{"above the board", boardLeft, boardTop - 1, 0, false},
		{"past the last column", boardLeft + 3*cellWidth, boardTop, 0, false},
		{"below the last row", boardLeft, boardTop + 3*cellHeight, 0, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := m.cellAt(test.x, test.y)
			if ok != test.ok || (ok && got != test.want) {
				t.Errorf("cellAt(%d, %d) = %d, %t; want %d, %t",
					test.x, test.y, got, ok, test.want, test.ok)
			}
		})
	}
}

func TestDirectionalKeysDriveTheEngine(t *testing.T) {
	m := testModel(fifteen.Board{1, 2, 3, 4, 5, 6, 0, 7, 8}, 3)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got, want := m.state.Board, (fifteen.Board{1, 2, 3, 0, 5, 6, 4, 7, 8}); !slices.Equal(got, want) {
		t.Fatalf("board after down = %v, want %v", got, want)
	}
	if m.state.Moves != 1 {
		t.Errorf("moves = %d, want 1", m.state.Moves)
	}
}

func TestRejectedDirectionIsANoOp(t *testing.T) {
	m := testModel(fifteen.Board{1, 2, 3, 4, 5, 6, 0, 7, 8}, 3)

	// Blank on the bottom row: there is no tile below it to slide up.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got, want := m.state.Board, (fifteen.Board{1, 2, 3, 4, 5, 6, 0, 7, 8}); !slices.Equal(got, want) {
		t.Fatalf("board after rejected up = %v, want %v", got, want)
	}
	if m.state.Moves != 0 {
		t.Errorf("moves = %d, want 0", m.state.Moves)
	}
}

func TestMouseClickSelectsATile(t *testing.T) {
	m := testModel(fifteen.Board{0, 1, 2, 3, 4, 5, 6, 7, 8}, 3)

	m = update(t, m, tea.MouseMsg{
		X:      boardLeft + cellWidth,
		Y:      boardTop,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	if got, want := m.state.Board, (fifteen.Board{1, 0, 2, 3, 4, 5, 6, 7, 8}); !slices.Equal(got, want) {
		t.Fatalf("board after click = %v, want %v", got, want)
	}
	if m.state.Moves != 1 {
		t.Errorf("moves = %d, want 1", m.state.Moves)
	}
}

func TestRestartKeyResetsTheSession(t *testing.T) {
	m := testModel(fifteen.Board{1, 2, 3, 4, 5, 6, 0, 7, 8}, 3)
	m.state.Moves = 9
	m.state.Elapsed = 40

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	if m.state.Moves != 0 || m.state.Elapsed != 0 {
		t.Errorf("counters not reset: moves %d, elapsed %d", m.state.Moves, m.state.Elapsed)
	}
	if !m.state.Board.Valid(3) || m.state.Board.IsSolved() {
		t.Errorf("restart dealt a bad board: %v", m.state.Board)
	}
}

func TestDimensionKeyResizes(t *testing.T) {
	m := testModel(fifteen.Board{1, 2, 0, 3}, 2)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	if m.state.Dim != 5 {
		t.Fatalf("dim = %d, want 5", m.state.Dim)
	}
	if !m.state.Board.Valid(5) {
		t.Errorf("resize dealt a bad board: %v", m.state.Board)
	}
}

func TestViewShowsWinBanner(t *testing.T) {
	m := testModel(fifteen.Solved(3), 3)
	m.state.Status = fifteen.Won
	m.state.Moves = 42
	m.state.Elapsed = 65

	view := m.View()
	if !strings.Contains(view, "solved in 42 moves") {
		t.Errorf("win banner missing from view:\n%s", view)
	}
	if !strings.Contains(view, "01:05") {
		t.Errorf("frozen clock missing from view:\n%s", view)
	}
}
