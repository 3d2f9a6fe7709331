package fifteen

import "slices"

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "?"
	}
}

// ApplyMove slides the tile at target into the blank. The move is accepted
// iff target lies on the board and is orthogonally adjacent to the blank;
// the returned board is then a fresh copy with exactly those two cells
// exchanged. A rejected move returns the input board untouched — invalid
// targets are ignored, never an error.
func ApplyMove(b Board, n int, target int) (Board, bool) {
	if target < 0 || target >= len(b) {
		return b, false
	}
	blank := b.Blank()
	dr := absDiff(blank/n, target/n)
	dc := absDiff(blank%n, target%n)
	if dr+dc != 1 {
		return b, false
	}
	next := slices.Clone(b)
	next[target], next[blank] = next[blank], next[target]
	return next, true
}

// ApplyDirectionalMove slides a tile in the pressed direction. The player
// means "move a tile up", which is the tile sitting below the blank, so the
// candidate cell is on the blank's opposite side: up takes the cell below
// the blank, down the cell above, left the cell to its right, right the
// cell to its left. A target off the grid is ignored.
func ApplyDirectionalMove(b Board, n int, d Direction) (Board, bool) {
	blank := b.Blank()
	var target int
	switch d {
	case Up:
		target = blank + n
	case Down:
		target = blank - n
	case Left:
		target = blank + 1
		if blank%n == n-1 {
			return b, false
		}
	case Right:
		target = blank - 1
		if blank%n == 0 {
			return b, false
		}
	default:
		return b, false
	}
	return ApplyMove(b, n, target)
}
