package sorer

import (
	"bufio"
	"io"
	"os"
)

// ToEOF, passed as length to FromFile, means "read through end of file".
const ToEOF = ^uint64(0)

// workUnit is one worker's byte range, per §3 "Work unit": a half-open
// [start, start+length) range of the file, plus whether that worker must
// discard a leading partial line before it starts appending rows.
type workUnit struct {
	start      uint64
	length     uint64
	skipFirst  bool
}

// planWorkUnits implements §4.E: it slices [from, from+numBytes) into
// workers line-aligned, gap-free units, one per worker. A unit's declared
// length may run past its successor's start - deliberately, so it can
// finish a line straddling the boundary - and parseChunk's
// check-before-parse stop is what attributes that line to exactly one of
// the two units (the lower-indexed one, unless the boundary already sits
// exactly on a line start, in which case the higher-indexed one owns it
// outright and is not extended into).
//
// f is used only to probe line boundaries (seek + read-until-newline); it
// is not retained.
func planWorkUnits(f *os.File, size, from, length uint64, workers int) ([]workUnit, error) {
	if workers < 1 {
		workers = 1
	}
	if from > size {
		from = size
	}

	avail := size - from
	numBytes := avail
	if length != ToEOF && length < avail {
		numBytes = length
	}

	units := make([]workUnit, workers)

	if numBytes == 0 {
		for i := range units {
			units[i] = workUnit{start: from, length: 0}
		}
		return units, nil
	}

	step := (numBytes + uint64(workers) - 1) / uint64(workers) // ceil division

	// Every unit's length starts at step+1, not step: the trailing +1 is a
	// one-byte cushion so a unit whose real content sums to exactly step
	// (no remainder) still has consumed < length on its last line, letting
	// the check-before-parse stop in parseChunk finish that line instead of
	// mistaking it for the next unit's. Without this, the last worker -
	// which never receives the straddling-line extension below, and a lone
	// worker reading straight through to EOF, which never receives it
	// either - would silently drop its final line whenever its content
	// divides its budget exactly.
	atStart, err := atLineStart(f, from)
	if err != nil {
		return nil, err
	}
	units[0] = workUnit{start: from, length: step + 1, skipFirst: from != 0 && !atStart}
	for i := 1; i < workers; i++ {
		units[i].length = step + 1
	}

	soFar := from
	for i := 1; i < workers; i++ {
		soFar += step
		if soFar > size {
			soFar = size
		}

		atBoundary, err := atLineStart(f, soFar)
		if err != nil {
			return nil, err
		}

		units[i].start = soFar
		units[i].skipFirst = soFar != 0 && !atBoundary

		// If the successor's tentative start already lands on a line
		// boundary, it owns the line beginning there outright and does not
		// skip; extending the predecessor by that same line's length would
		// make both units claim it. Only extend when the successor must
		// discard a straddling partial line as its own cost, in which case
		// the predecessor needs the rest of that line's bytes to finish it.
		if !atBoundary {
			consumed, err := lineLengthAt(f, soFar)
			if err != nil {
				return nil, err
			}
			units[i-1].length += consumed
		}
	}

	return units, nil
}

// atLineStart reports whether offset is byte 0 of the file, or the byte
// immediately after a '\n'. It resolves §9's open question about whether
// the skip-leading-line heuristic should fire when the caller's start
// already sits at a line boundary: it should not.
func atLineStart(f *os.File, offset uint64) (bool, error) {
	if offset == 0 {
		return true, nil
	}
	var b [1]byte
	if _, err := f.ReadAt(b[:], int64(offset)-1); err != nil {
		if err == io.EOF {
			return true, nil
		}
		return false, err
	}
	return b[0] == '\n', nil
}

// lineLengthAt seeks to offset and reads forward to (and including) the
// next newline, returning the number of bytes consumed. It restores
// nothing - callers that still need f afterward must re-seek.
func lineLengthAt(f *os.File, offset uint64) (uint64, error) {
	if _, err := f.Seek(int64(offset), io.SeekStart); err != nil {
		return 0, err
	}
	r := bufio.NewReader(f)
	line, err := r.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return 0, err
	}
	return uint64(len(line)), nil
}
