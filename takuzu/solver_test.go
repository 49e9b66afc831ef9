package takuzu

import (
	"math/bits"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solved6 and solved8 are hand-checked complete grids. Blanking cells
// of a rule-abiding grid can never introduce a violation, so any
// subset of either makes a solvable test puzzle.
const (
	solved6 = "010011" + "101100" + "010101" + "101010" + "001011" + "110100"

	solved8 = "01100110" + "10011001" + "01011010" + "10100101" +
		"00110011" + "11001100" + "01101001" + "10010110"
)

// blankEveryThird opens every third cell of a grid string.
func blankEveryThird(s string) string {
	b := []byte(s)
	for i := 0; i < len(b); i += 3 {
		b[i] = ' '
	}
	return string(b)
}

// verifySolution asserts that p is complete and satisfies every rule
// with exact counts: Size/2 of each value per line, no triplets, no
// repeated rows or columns.
func verifySolution(t *testing.T, p Puzzle) {
	t.Helper()
	require.True(t, p.Complete(), "grid must be fully assigned")
	require.True(t, p.Valid())
	half := p.Size / 2
	seenRows := make(map[uint64]bool)
	seenCols := make(map[uint64]bool)
	for i := 0; i < p.Size; i++ {
		row, col := p.Row(i), p.Col(i)
		assert.Equal(t, half, bits.OnesCount64(row.Bits), "ones in row %d", i)
		assert.Equal(t, half, bits.OnesCount64(col.Bits), "ones in column %d", i)
		assert.False(t, row.HasTriplets(), "triplet in row %d", i)
		assert.False(t, col.HasTriplets(), "triplet in column %d", i)
		assert.False(t, seenRows[row.Bits], "row %d repeats an earlier row", i)
		assert.False(t, seenCols[col.Bits], "column %d repeats an earlier column", i)
		seenRows[row.Bits] = true
		seenCols[col.Bits] = true
	}
}

// TestSolveFindsUniqueSolution works the 4x4 puzzle whose solution is
// forced at every step, so the exact result can be pinned down.
func TestSolveFindsUniqueSolution(t *testing.T) {
	p := mustParse(t, "0  1      000  0")
	require.True(t, p.Valid())

	solved, ok := Solve(p)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, solved4), solved)
	verifySolution(t, solved)
}

// TestSolveIsDeterministic solves the same puzzle twice and expects
// identical results and identical search counters.
func TestSolveIsDeterministic(t *testing.T) {
	p := mustParse(t, blankEveryThird(solved6))

	var s Solver
	first, ok := s.Solve(p)
	require.True(t, ok)
	firstStats := s.Stats()

	second, ok := s.Solve(p)
	require.True(t, ok)

	assert.Equal(t, first, second)
	assert.Equal(t, firstStats.Visits, s.Stats().Visits)
	assert.Equal(t, firstStats.Evals, s.Stats().Evals)
}

// TestSolveAllOpenGrid checks the deterministic candidate order from a
// blank slate: lowest cell first, 0 before 1, which lands on one
// particular grid.
func TestSolveAllOpenGrid(t *testing.T) {
	p := mustParse(t, strings.Repeat(" ", 16))

	solved, ok := Solve(p)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, "0011"+"0101"+"1010"+"1100"), solved)
	verifySolution(t, solved)
}

// TestSolveOnSolvedGrid expects an already solved grid back unchanged,
// after a single confirming check.
func TestSolveOnSolvedGrid(t *testing.T) {
	p := mustParse(t, solved4)

	var s Solver
	solved, ok := s.Solve(p)
	require.True(t, ok)
	assert.Equal(t, p, solved)
	assert.Equal(t, 1, s.Stats().Visits)
	assert.Equal(t, 1, s.Stats().Evals)
}

// TestSolveReportsNoSolution uses a grid that starts out rule-abiding
// but cannot be completed: balance forces row 2 to duplicate row 0.
func TestSolveReportsNoSolution(t *testing.T) {
	p := mustParse(t, "0011"+"    "+"001 "+"    ")
	require.True(t, p.Valid(), "the puzzle breaks no rule as given")

	solved, ok := Solve(p)
	assert.False(t, ok)
	assert.Equal(t, Puzzle{}, solved, "failure returns the zero Puzzle")
}

// TestSolveRejectsContradictoryGrid feeds a complete grid with an
// unbalanced row straight to the solver.
func TestSolveRejectsContradictoryGrid(t *testing.T) {
	p := mustParse(t, "1111"+"0000"+"1010"+"0101")
	require.False(t, p.Valid())

	_, ok := Solve(p)
	assert.False(t, ok)
}

// TestSolvePrunesInvalidBranches opens one cell of a solved grid where
// value 0 breaks balance immediately. The counters show the search
// tried both values but only descended through the valid one: two
// states visited, three checks in total.
func TestSolvePrunesInvalidBranches(t *testing.T) {
	b := []byte(solved4)
	b[14] = ' '
	p := mustParse(t, string(b))

	var s Solver
	solved, ok := s.Solve(p)
	require.True(t, ok)
	assert.Equal(t, mustParse(t, solved4), solved)
	assert.Equal(t, 2, s.Stats().Visits, "root plus the one valid candidate")
	assert.Equal(t, 3, s.Stats().Evals, "two candidates plus the final re-check")
}

// TestSolveSixBySix solves a 6x6 with a third of the cells open.
func TestSolveSixBySix(t *testing.T) {
	input := blankEveryThird(solved6)
	p := mustParse(t, input)
	require.True(t, p.Valid())

	solved, ok := Solve(p)
	require.True(t, ok)
	verifySolution(t, solved)
	assertCluesKept(t, input, solved)
}

// TestSolveEightByEight solves an 8x8 with a third of the cells open.
func TestSolveEightByEight(t *testing.T) {
	input := blankEveryThird(solved8)
	p := mustParse(t, input)
	require.True(t, p.Valid())

	solved, ok := Solve(p)
	require.True(t, ok)
	verifySolution(t, solved)
	assertCluesKept(t, input, solved)
}

// assertCluesKept checks that every given cell survives into the
// solution with its value intact.
func assertCluesKept(t *testing.T, input string, solved Puzzle) {
	t.Helper()
	for i := 0; i < len(input); i++ {
		if input[i] == ' ' {
			continue
		}
		v, ok := solved.Cell(i)
		require.True(t, ok, "cell %d lost its value", i)
		assert.Equal(t, int(input[i]-'0'), v, "cell %d changed", i)
	}
}

// TestSolverProgressDoesNotBlock fills a one-slot progress channel that
// nobody drains; Solve must still finish.
func TestSolverProgressDoesNotBlock(t *testing.T) {
	ch := make(chan Progress, 1)
	s := Solver{Progress: ch}

	_, ok := s.Solve(mustParse(t, blankEveryThird(solved6)))
	require.True(t, ok)

	u := <-ch
	assert.Equal(t, 36, u.Cells)
	assert.LessOrEqual(t, u.Filled, u.Cells)
	assert.GreaterOrEqual(t, u.Visits, 1)
}

func BenchmarkSolve(b *testing.B) {
	cases := []struct {
		name  string
		input string
	}{
		{"4x4", "0  1      000  0"},
		{"6x6", blankEveryThird(solved6)},
		{"8x8", blankEveryThird(solved8)},
	}
	for _, bc := range cases {
		b.Run(bc.name, func(b *testing.B) {
			p, err := Parse(bc.input)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := Solve(p); !ok {
					b.Fatal("puzzle did not solve")
				}
			}
		})
	}
}
