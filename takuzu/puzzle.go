// Package takuzu solves Takuzu (Binairo) puzzles: square grids of binary
// cells where every row and column holds equal numbers of zeros and ones,
// no three adjacent cells match, and no two rows or columns repeat.
package takuzu

import "math/bits"

// MaxSize is the largest supported side length. A whole grid is packed
// into a single 64-bit word, so MaxSize*MaxSize must stay within 64 bits.
const MaxSize = 8

// Puzzle is a bit-packed grid state. Cell (r, c) lives at bit index
// r*Size + c: bit i of Grid holds the cell's value, and bit i of Empty is
// set while the cell is unassigned. A Grid bit under a set Empty bit is
// always zero, as are all bits at or above Size*Size, so Empty == 0 means
// the grid is completely filled.
//
// Puzzle is a value type. Assign returns a modified copy, which is what
// lets the solver treat every branch of its search as an independent
// snapshot with no undo step.
type Puzzle struct {
	Grid  uint64
	Empty uint64
	Size  int
}

// Line is one extracted row or column: Size cells in the low bits of
// Bits, with Empty flagging the unassigned positions.
type Line struct {
	Bits  uint64
	Empty uint64
	Size  int
}

// span returns a mask covering the low n bits.
func span(n int) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<n - 1
}

// Cells returns the number of cells in the grid.
func (p Puzzle) Cells() int {
	return p.Size * p.Size
}

// Filled returns the number of assigned cells.
func (p Puzzle) Filled() int {
	return p.Cells() - bits.OnesCount64(p.Empty)
}

// Complete reports whether every cell has been assigned.
func (p Puzzle) Complete() bool {
	return p.Empty == 0
}

// Cell returns the value at bit index i and whether it is assigned.
func (p Puzzle) Cell(i int) (int, bool) {
	if p.Empty>>i&1 == 1 {
		return 0, false
	}
	return int(p.Grid >> i & 1), true
}

// Assign returns a copy of the puzzle with cell i set to v (0 or 1).
// The receiver is left untouched.
func (p Puzzle) Assign(i int, v int) Puzzle {
	p.Empty &^= 1 << i
	if v == 0 {
		p.Grid &^= 1 << i
	} else {
		p.Grid |= 1 << i
	}
	return p
}

// Row extracts row i. Bit c of the result is the cell in column c, so a
// row reads the same way in Grid and in the extracted Line.
func (p Puzzle) Row(i int) Line {
	shift := i * p.Size
	m := span(p.Size)
	return Line{
		Bits:  p.Grid >> shift & m,
		Empty: p.Empty >> shift & m,
		Size:  p.Size,
	}
}

// Col extracts column i by walking the grid one row stride at a time.
// The top cell ends up in the most significant of the Size bits; the
// orientation is arbitrary but identical for Bits and Empty, which is
// all the rule checks and the uniqueness comparison depend on.
func (p Puzzle) Col(i int) Line {
	col := Line{Size: p.Size}
	for k := 0; k < p.Size; k++ {
		col.Bits = col.Bits<<1 | p.Grid>>(i+k*p.Size)&1
		col.Empty = col.Empty<<1 | p.Empty>>(i+k*p.Size)&1
	}
	return col
}

// Complete reports whether every cell of the line has been assigned.
func (l Line) Complete() bool {
	return l.Empty == 0
}
