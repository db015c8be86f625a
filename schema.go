package sorer

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// defaultBandSize is B in §4.D: the number of lines drawn from each of the
// three survey bands (head, middle, tail), for a nominal sample of 300
// lines. The spec leaves the exact budget implementation-defined subject to
// B >= 10; see DESIGN.md for why this 300-line budget (not the other
// documented variant, 500 lines) was chosen.
const defaultBandSize = 100

type inferConfig struct {
	bandSize int
	logger   *slog.Logger
}

// InferOption configures InferSchema.
type InferOption func(*inferConfig)

// WithBandSize overrides the per-band sample size B (head/middle/tail each
// contribute up to n lines). Mostly useful for tests against small files.
func WithBandSize(n int) InferOption {
	return func(c *inferConfig) { c.bandSize = n }
}

// WithInferLogger attaches a structured logger; nil (the default) disables
// logging entirely, matching SPEC_FULL.md §2.2.
func WithInferLogger(l *slog.Logger) InferOption {
	return func(c *inferConfig) { c.logger = l }
}

// InferSchema estimates the column count and per-column types of the SoR
// file at path, per §4.D. It always reads the whole file path, independent
// of any (from, len) window a later FromFile call will use.
func InferSchema(path string, opts ...InferOption) (Schema, error) {
	cfg := inferConfig{bandSize: defaultBandSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sorer: infer schema: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("sorer: infer schema: %w", err)
	}
	size := info.Size()

	candidates, err := sampleLines(f, size, cfg.bandSize)
	if err != nil {
		return nil, fmt.Errorf("sorer: infer schema: %w", err)
	}

	schema := buildSchema(candidates)
	if cfg.logger != nil {
		cfg.logger.Debug("inferred schema", "path", path, "columns", len(schema), "sampled", len(candidates))
	}
	return schema, nil
}

// sampleLines gathers the head/middle/tail survey bands described in §4.D,
// in that fixed order (head, then middle, then tail) so that, given
// identical file bytes, inference is fully deterministic.
func sampleLines(f *os.File, size int64, band int) ([][]byte, error) {
	var lines [][]byte

	head, err := readHeadLines(f, band)
	if err != nil {
		return nil, err
	}
	lines = append(lines, head...)

	mid, err := readMiddleLines(f, size, band)
	if err != nil {
		return nil, err
	}
	lines = append(lines, mid...)

	tail, err := readTailLines(f, size, band)
	if err != nil {
		return nil, err
	}
	lines = append(lines, tail...)

	return lines, nil
}

func readHeadLines(f *os.File, n int) ([][]byte, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	r := bufio.NewReader(f)
	var out [][]byte
	for i := 0; i < n; i++ {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			out = append(out, bytes.TrimSuffix(line, []byte{'\n'}))
		}
		if err != nil {
			break
		}
	}
	return out, nil
}

func readMiddleLines(f *os.File, size int64, n int) ([][]byte, error) {
	if size == 0 {
		return nil, nil
	}
	if _, err := f.Seek(size/2, io.SeekStart); err != nil {
		return nil, err
	}
	r := bufio.NewReader(f)
	// Discard the partial line straddling the seek point.
	if _, err := r.ReadBytes('\n'); err != nil {
		return nil, nil
	}

	var out [][]byte
	for i := 0; i < n; i++ {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			out = append(out, bytes.TrimSuffix(line, []byte{'\n'}))
		}
		if err != nil {
			break
		}
	}
	return out, nil
}

// readTailLines reads backward from EOF in blocks until at least n+1
// newlines have been seen (or the start of the file is reached), then
// returns the last n complete lines.
func readTailLines(f *os.File, size int64, n int) ([][]byte, error) {
	if size == 0 {
		return nil, nil
	}
	const blockSize = 64 * 1024

	var buf []byte
	pos := size
	for pos > 0 && bytes.Count(buf, []byte{'\n'}) <= n {
		readSize := int64(blockSize)
		if readSize > pos {
			readSize = pos
		}
		pos -= readSize
		chunk := make([]byte, readSize)
		if _, err := f.ReadAt(chunk, pos); err != nil && err != io.EOF {
			return nil, err
		}
		buf = append(chunk, buf...)
	}

	lines := bytes.Split(buf, []byte{'\n'})
	if len(lines) > 0 && len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	if pos > 0 && len(lines) > 0 {
		// The first line in buf may have been cut off mid-line.
		lines = lines[1:]
	}
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// buildSchema implements the width-selection and per-column dominance
// folding of §4.D.
func buildSchema(candidates [][]byte) Schema {
	var retained [][]Data
	widest := 0

	for _, line := range candidates {
		if len(line) == 0 {
			continue
		}
		row, ok := ParseLine(line)
		if !ok {
			continue
		}
		switch {
		case len(row) > widest:
			widest = len(row)
			retained = retained[:0]
			retained = append(retained, row)
		case len(row) == widest && widest > 0:
			retained = append(retained, row)
		}
	}

	schema := make(Schema, widest)
	for col := 0; col < widest; col++ {
		dt := Bool
		for _, row := range retained {
			cell := row[col]
			if cell.IsNull() {
				continue
			}
			dt = dominate(dt, cell.Type())
			if dt == String {
				break
			}
		}
		schema[col] = dt
	}
	return schema
}
