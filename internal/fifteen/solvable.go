package fifteen

/*
 * Solvability is a closed-form parity check, not a search. Sliding a tile
 * into the blank permutes the sequence by a transposition whose effect on
 * inversion parity is tied to the blank's row movement, so reachability
 * from the goal state reduces to the classic rule below.
 */

// inversions counts ordered pairs of tiles that appear out of their sorted
// relative order, with the blank excluded.
func inversions(b Board) (count int) {
	for i := range b {
		if b[i] == 0 {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != 0 && b[i] > b[j] {
				count++
			}
		}
	}
	return
}

// Solvable reports whether b can be transformed into the goal arrangement
// by some finite sequence of legal slides.
//
//   - n odd: solvable iff the inversion count is even.
//   - n even: counting the blank's row from the bottom (1-based), solvable
//     iff the row is even and inversions are odd, or the row is odd and
//     inversions are even.
func Solvable(b Board, n int) bool {
	inv := inversions(b)
	if n%2 == 1 {
		return inv%2 == 0
	}
	blankRow := b.Blank()/n + 1 // 1-based, from the top
	rowFromBottom := n - blankRow + 1
	if rowFromBottom%2 == 0 {
		return inv%2 == 1
	}
	return inv%2 == 0
}
