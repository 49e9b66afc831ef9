package takuzu

import (
	"errors"
	"fmt"
)

// Sentinel errors for the ways a puzzle can be rejected before any
// solving happens. Parse returns typed errors that match these through
// errors.Is; ErrInvalidPuzzle is for grids that are well-formed but
// already break a rule.
var (
	ErrInvalidCharacter = errors.New("invalid character in puzzle")
	ErrInvalidLength    = errors.New("invalid puzzle length")
	ErrInvalidPuzzle    = errors.New("puzzle already breaks a rule")
)

// InvalidCharacterError reports the first byte of the input that is not
// a '0', '1' or space.
type InvalidCharacterError struct {
	Char byte
	Pos  int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// InvalidLengthError reports an input whose length matches no supported
// grid size.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("puzzle length %d is not 16, 36 or 64", e.Length)
}

func (e *InvalidLengthError) Is(target error) bool {
	return target == ErrInvalidLength
}
