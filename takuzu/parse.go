package takuzu

// sizeForLength maps an input length to a side length. Grids are square
// with an even side, so only 4x4, 6x6 and 8x8 fit the packed encoding.
func sizeForLength(n int) (int, bool) {
	switch n {
	case 16:
		return 4, true
	case 36:
		return 6, true
	case 64:
		return 8, true
	}
	return 0, false
}

// Parse reads a puzzle from its string form: one character per cell in
// row-major order, '0' or '1' for a given cell and ' ' for an open one.
// Index 0 is the top-left corner.
//
// The whole string is scanned for bad characters before the length is
// judged, so an input that is wrong in both ways reports the character
// error. Parse does not check the puzzle against the game rules; see
// Puzzle.Valid for that.
func Parse(s string) (Puzzle, error) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0', '1', ' ':
		default:
			return Puzzle{}, &InvalidCharacterError{Char: s[i], Pos: i}
		}
	}
	size, ok := sizeForLength(len(s))
	if !ok {
		return Puzzle{}, &InvalidLengthError{Length: len(s)}
	}
	p := Puzzle{Size: size, Empty: span(size * size)}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			p = p.Assign(i, 0)
		case '1':
			p = p.Assign(i, 1)
		}
	}
	return p, nil
}
