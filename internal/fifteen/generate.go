package fifteen

import "math/rand/v2"

// Roughly half of all permutations pass the parity check and only one is
// the goal itself, so a shuffle rarely needs more than a couple of tries.
// The cap guards the loop all the same.
const maxShuffleAttempts = 10_000

// Generate returns a uniformly shuffled board for dimension n that is
// solvable and not already solved. Returns [ErrInvalidDimension] for n < 2
// (a 1×1 board has no arrangement the rejection loop would ever accept)
// and [ErrGenerationFailed] if the attempt cap is somehow exhausted.
func Generate(n int, r *rand.Rand) (Board, error) {
	if n < 2 {
		return nil, ErrInvalidDimension
	}

	b := Solved(n)
	for attempt := 1; attempt <= maxShuffleAttempts; attempt++ {
		for i := len(b) - 1; i > 0; i-- {
			j := r.IntN(i + 1)
			b[i], b[j] = b[j], b[i]
		}
		if Solvable(b, n) && !b.IsSolved() {
			if attempt > 1 {
				Log.Debug("board generated after rejections", "dim", n, "attempt", attempt)
			}
			return b, nil
		}
	}
	return nil, ErrGenerationFailed
}
