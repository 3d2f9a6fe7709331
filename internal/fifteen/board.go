package fifteen

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var Log *slog.Logger = slog.Default()

/*
 * A Board is a flat n×n arrangement of sliding tiles, a permutation of
 * {0 .. n²−1}. Value 0 is the blank; the cell at (row, col) lives at
 * index row*n + col.
 */
type Board []int

// Solved returns the goal arrangement for dimension n: tiles 1..n²−1 in
// row-major order with the blank in the last cell.
func Solved(n int) Board {
	b := make(Board, n*n)
	for i := range b {
		b[i] = i + 1
	}
	b[len(b)-1] = 0
	return b
}

// IsSolved reports whether b equals the goal arrangement for its length.
func (b Board) IsSolved() bool {
	last := len(b) - 1
	for i := range last {
		if b[i] != i+1 {
			return false
		}
	}
	return b[last] == 0
}

// Blank returns the index of the blank cell, or -1 on a malformed board.
func (b Board) Blank() int {
	for i, v := range b {
		if v == 0 {
			return i
		}
	}
	return -1
}

// Valid reports whether b is a well-formed arrangement for dimension n,
// i.e. a length-n² sequence holding each of 0..n²−1 exactly once.
func (b Board) Valid(n int) bool {
	if n < 2 || len(b) != n*n {
		return false
	}
	seen := make([]bool, len(b))
	for _, v := range b {
		if v < 0 || v >= len(b) || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func (b Board) ToString(n int) string {
	var s strings.Builder
	for y := range len(b) / n {
		for x := range n {
			i := y*n + x
			if i >= len(b) {
				break
			}
			if b[i] == 0 {
				fmt.Fprint(&s, " . ")
			} else {
				fmt.Fprintf(&s, "%2d ", b[i])
			}
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}

// Seed renders the board as a compact "n:v,v,..." string that ParseSeed
// round-trips.
func (b Board) Seed(n int) string {
	vs := make([]string, len(b))
	for i, v := range b {
		vs[i] = strconv.Itoa(v)
	}
	return fmt.Sprintf("%d:%s", n, strings.Join(vs, ","))
}

func ParseSeed(seed string) (Board, int, error) {
	dim, rest, ok := strings.Cut(seed, ":")
	if !ok {
		return nil, 0, fmt.Errorf(`invalid board seed "%s"`, seed)
	}
	n, err := strconv.Atoi(dim)
	if err != nil {
		return nil, 0, fmt.Errorf(`invalid board seed dimension "%s": %w`, dim, err)
	}
	vs := strings.Split(rest, ",")
	b := make(Board, len(vs))
	for i, v := range vs {
		b[i], err = strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, 0, fmt.Errorf(`invalid board seed cell "%s": %w`, v, err)
		}
	}
	if !b.Valid(n) {
		return nil, 0, fmt.Errorf(`board seed "%s" is not a %d×%d permutation`, seed, n, n)
	}
	return b, n, nil
}
