package fifteen

import "errors"

var (
	ErrInvalidDimension = errors.New("dimension must be at least 2")
	ErrGenerationFailed = errors.New("could not generate a solvable board")
)
