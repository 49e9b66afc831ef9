package takuzu

import "math/bits"

// Balanced reports whether the line could still reach an equal split of
// zeros and ones. Only assigned cells count, so a partial line passes as
// long as neither value has exceeded Size/2 yet.
func (l Line) Balanced() bool {
	filled := ^l.Empty & span(l.Size)
	ones := bits.OnesCount64(l.Bits & filled)
	zeros := bits.OnesCount64(filled) - ones
	return ones <= l.Size/2 && zeros <= l.Size/2
}

// HasTriplets reports whether three adjacent assigned cells share a
// value. Windows containing an unassigned cell are skipped; they can
// still go either way.
func (l Line) HasTriplets() bool {
	for i := 0; i+3 <= l.Size; i++ {
		if l.Empty>>i&7 != 0 {
			continue
		}
		switch l.Bits >> i & 7 {
		case 0, 7:
			return true
		}
	}
	return false
}

// Valid reports whether the grid breaks any rule yet. Partial grids are
// judged on their assigned cells only: balance and triplet checks run on
// every row and column, while the uniqueness rule compares just the
// fully assigned ones. A complete grid passing Valid is a solution,
// because a full line that never exceeded Size/2 of either value holds
// exactly Size/2 of each.
//
// Violations never go away as more cells are assigned, so the solver can
// prune any branch the moment Valid fails.
func (p Puzzle) Valid() bool {
	var doneRows, doneCols [MaxSize]uint64
	nr, nc := 0, 0
	for i := 0; i < p.Size; i++ {
		row := p.Row(i)
		col := p.Col(i)
		if !row.Balanced() || row.HasTriplets() {
			return false
		}
		if !col.Balanced() || col.HasTriplets() {
			return false
		}
		if row.Complete() {
			for j := 0; j < nr; j++ {
				if doneRows[j] == row.Bits {
					return false
				}
			}
			doneRows[nr] = row.Bits
			nr++
		}
		if col.Complete() {
			for j := 0; j < nc; j++ {
				if doneCols[j] == col.Bits {
					return false
				}
			}
			doneCols[nc] = col.Bits
			nc++
		}
	}
	return true
}
