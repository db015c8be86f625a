// Package sorer implements Schema-on-Read parsing of loosely-structured,
// line-oriented data files: files whose rows are sequences of <field>
// tokens with no declared column types, inferred from a sample of the
// file's own contents.
package sorer

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"
)

type fromFileConfig struct {
	logger *slog.Logger
}

// FromFileOption configures FromFile.
type FromFileOption func(*fromFileConfig)

// WithLogger attaches a structured logger; nil (the default) disables
// logging entirely, matching SPEC_FULL.md §2.2.
func WithLogger(l *slog.Logger) FromFileOption {
	return func(c *fromFileConfig) { c.logger = l }
}

// FromFile implements §4.E-G end to end: it plans workers byte-aligned work
// units over the window [from, from+length) of the file at path (length
// ToEOF means "through the end of file"), parses each unit concurrently
// against schema, and merges the results in unit order into a single Table.
//
// workers <= 0 defaults to the number of logical CPU cores, read via
// cpuid rather than runtime.NumCPU to stay consistent with the teacher's
// existing CPU-topology dependency.
func FromFile(path string, schema Schema, from, length uint64, workers int, opts ...FromFileOption) (*Table, error) {
	// §4.D/§7: a zero-width schema is valid, not an error - it always
	// yields an empty table, so there is nothing to plan or read.
	if len(schema) == 0 {
		return newTable(schema), nil
	}

	cfg := fromFileConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if workers <= 0 {
		workers = cpuid.CPU.LogicalCores
		if workers < 1 {
			workers = 1
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("sorer: from file: %w", err)
	}
	info, statErr := f.Stat()
	if statErr != nil {
		f.Close()
		return nil, fmt.Errorf("sorer: from file: %w", statErr)
	}
	units, planErr := planWorkUnits(f, uint64(info.Size()), from, length, workers)
	f.Close()
	if planErr != nil {
		return nil, fmt.Errorf("sorer: from file: %w", planErr)
	}

	if cfg.logger != nil {
		cfg.logger.Debug("planned chunk read", "path", path, "workers", len(units), "from", from, "length", length)
	}

	results := make([]*Table, len(units))
	g, _ := errgroup.WithContext(context.Background())
	for i, unit := range units {
		i, unit := i, unit
		g.Go(func() error {
			tbl, err := parseChunk(path, schema, unit)
			if err != nil {
				return err
			}
			results[i] = tbl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	final := newTable(schema)
	for _, partial := range results {
		final.appendPartial(partial)
	}

	if cfg.logger != nil {
		cfg.logger.Info("parsed file", "path", path, "rows", final.NumRows(), "cols", final.NumCols())
	}

	return final, nil
}
