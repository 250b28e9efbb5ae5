package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/meigma/flexpath"
)

const (
	stdinSource  = "-"
	maxLineBytes = 1 << 20
	// ctxCheckInterval is how many lines are scanned between cancellation checks.
	ctxCheckInterval = 1024
)

func newBatchCmd(a *app) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "batch [FILE...]",
		Short: "Normalize newline-separated paths read from files",
		Long: `batch normalizes every line of the given files, or of standard input when
no file (or "-") is given. Blank lines and lines starting with # are skipped.
Files ending in .gz or .zst are decompressed. Results keep the input order.

Lines that fail to parse are reported in place and make the command exit
with status 1 once every line has been written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return &usageError{err: fmt.Errorf("workers must be at least 1, got %d", workers)}
			}
			if len(args) == 0 {
				args = []string{stdinSource}
			}

			results, err := a.normalizeSources(cmd.Context(), args, workers)
			if err != nil {
				return err
			}
			if err := writeResults(a.stdout, a.cfg.output, results); err != nil {
				return err
			}

			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d paths failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&workers, "workers", "w", envIntOr(a.getenv, envWorkers, defaultWorkers),
		"number of files read concurrently (env "+envWorkers+")")
	return cmd
}

// line is one non-blank, non-comment input line.
type line struct {
	number int
	text   string
}

// normalizeSources reads and normalizes every source concurrently. Results
// are ordered by source, then by line.
func (a *app) normalizeSources(ctx context.Context, sources []string, workers int) ([]result, error) {
	perSource := make([][]result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, src := range sources {
		g.Go(func() error {
			lines, err := a.readSource(ctx, src)
			if err != nil {
				return fmt.Errorf("read %s: %w", src, err)
			}
			rs := make([]result, 0, len(lines))
			for _, l := range lines {
				var r result
				s, err := flexpath.NormalizePath(l.text, a.variant)
				if err != nil {
					a.logger.Warn("invalid path",
						slog.String("source", src),
						slog.Int("line", l.number),
						slog.Any("error", err))
					r = errorResult(l.text, err)
				} else {
					r = result{Input: l.text, Path: s}
				}
				r.Source, r.Line = src, l.number
				rs = append(rs, r)
			}
			perSource[i] = rs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []result
	for _, rs := range perSource {
		results = append(results, rs...)
	}
	return results, nil
}

func (a *app) readSource(ctx context.Context, name string) ([]line, error) {
	rc, err := a.openSource(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var lines []line
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for n := 1; sc.Scan(); n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		text := strings.TrimSuffix(sc.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line{number: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	a.logger.Debug("read source", slog.String("source", name), slog.Int("lines", len(lines)))
	return lines, nil
}

// openSource opens name, decompressing it according to its extension.
func (a *app) openSource(name string) (io.ReadCloser, error) {
	if name == stdinSource {
		return io.NopCloser(a.stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	// A name that is not a valid native path is read as is.
	p, err := flexpath.NewNative(name)
	if err != nil {
		return f, nil
	}

	switch {
	case p.HasExtension("gz"):
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiCloser{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case p.HasExtension("zst"):
		dec, release, err := a.decoders.get(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &multiCloser{Reader: dec, closers: []io.Closer{closerFunc(release), f}}, nil
	default:
		return f, nil
	}
}

// multiCloser closes a decompressor and the file beneath it.
type multiCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
