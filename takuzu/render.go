package takuzu

import (
	"fmt"
	"strings"
)

// String renders the grid for a terminal. Each cell is three characters
// wide, ' 0 ' or ' 1 ' when assigned and blank when open; cells in a row
// are separated by '|' and rows by a line of dashes:
//
//	 0 |   |   | 1
//	---+---+---+---
//	   |   |   |
//
// The output ends with a newline.
func (p Puzzle) String() string {
	var b strings.Builder
	for i := 0; i < p.Cells(); i++ {
		if i > 0 && i%p.Size == 0 {
			b.WriteByte('\n')
			b.WriteString(strings.Repeat("---+", p.Size-1))
			b.WriteString("---\n")
		}
		if v, ok := p.Cell(i); ok {
			fmt.Fprintf(&b, " %d ", v)
		} else {
			b.WriteString("   ")
		}
		if i%p.Size != p.Size-1 {
			b.WriteByte('|')
		}
	}
	b.WriteByte('\n')
	return b.String()
}
