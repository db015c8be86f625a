package sorer

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T, contents string) (*os.File, uint64) {
	t.Helper()
	path := writeTempFile(t, contents)
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	info, err := f.Stat()
	require.NoError(t, err)
	return f, uint64(info.Size())
}

func TestPlanWorkUnitsSingleWorkerFromZero(t *testing.T) {
	f, size := openTemp(t, "<1><1>\n<a><0>\n<1.2><>")
	units, err := planWorkUnits(f, size, 0, ToEOF, 1)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.Equal(t, uint64(0), units[0].start)
	// size+1, not size: a lone worker reading straight to EOF gets the same
	// one-byte cushion as any other unit, so its final line - which sums
	// exactly to the file's length, with no remainder - doesn't get mistaken
	// by parseChunk's check-before-parse stop for the start of a sibling
	// unit's range.
	require.Equal(t, size+1, units[0].length)
	require.False(t, units[0].skipFirst, "unit starting at byte 0 never skips")
}

func TestPlanWorkUnitsSingleWorkerMidFileNotAtBoundarySkips(t *testing.T) {
	// from=3 lands inside the first line's second field, not at a line
	// start, so the single worker must discard the straddling partial line
	// (§4.E known edge case, resolved per §9 item 2/3).
	f, size := openTemp(t, "<b><1>\n<1><1>\n<a><0>\n<1.2><>")
	units, err := planWorkUnits(f, size, 3, 26, 1)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.True(t, units[0].skipFirst)
}

func TestPlanWorkUnitsSingleWorkerMidFileAtBoundaryDoesNotSkip(t *testing.T) {
	contents := "<b><1>\n<1><1>\n<a><0>\n<1.2><>"
	f, size := openTemp(t, contents)
	// Byte 7 is exactly the start of the second line (right after the
	// first '\n'): the fixed heuristic must not discard it.
	units, err := planWorkUnits(f, size, 7, ToEOF, 1)
	require.NoError(t, err)
	require.Len(t, units, 1)
	require.False(t, units[0].skipFirst)
}

func TestPlanWorkUnitsMultiWorkerCoversEveryByte(t *testing.T) {
	contents := "<1><1>\n<a><0>\n<c><1.2>\n<1.2><>\n"
	f, size := openTemp(t, contents)
	const workers = 3
	units, err := planWorkUnits(f, size, 0, ToEOF, workers)
	require.NoError(t, err)
	require.Len(t, units, workers)

	step := (size + workers - 1) / workers
	require.Equal(t, uint64(0), units[0].start)

	// A unit's extended length is allowed to run past the next unit's
	// tentative start - that's the mechanism that lets it finish the line
	// straddling the boundary - but it must never fall short of it, and the
	// last unit must reach at least to EOF. parseChunk's check-before-parse
	// stop, not exact contiguity here, is what keeps an overlapping line
	// from being counted by both units.
	for i, u := range units {
		if i > 0 {
			require.Equal(t, uint64(i)*step, u.start, "unit %d's tentative start", i)
		}
		if i < len(units)-1 {
			require.GreaterOrEqual(t, u.start+u.length, units[i+1].start,
				"unit %d must reach at least to unit %d's start", i, i+1)
		} else {
			require.GreaterOrEqual(t, u.start+u.length, size)
		}
	}
}

func TestPlanWorkUnitsEmptyWindow(t *testing.T) {
	f, size := openTemp(t, "<1><2>\n")
	units, err := planWorkUnits(f, size, size, ToEOF, 4)
	require.NoError(t, err)
	require.Len(t, units, 4)
	for _, u := range units {
		require.Equal(t, uint64(0), u.length)
	}
}
