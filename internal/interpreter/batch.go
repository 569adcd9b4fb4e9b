package interpreter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// maxLineSize caps a single input line. Command runs have no length limit of
// their own, so this is set well above bufio's 64 KiB default.
const maxLineSize = 64 << 20

type Options struct {
	// SkipBlankLines drops whitespace-only robot lines instead of rejecting
	// them as malformed.
	SkipBlankLines bool
	Logger         *zap.Logger
}

// Entry is a parsed robot together with the input line it came from.
type Entry struct {
	Line  int
	Robot *Robot
}

// Load reads the grid line and every robot line from r. Any parse failure
// aborts the whole load.
func Load(r io.Reader, opts Options) (*Grid, []Entry, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, nil, fmt.Errorf("read grid: %w", err)
		}
		return nil, nil, &LineError{Line: 1, Err: newParseError(ErrMalformedGrid, "", fmt.Errorf("empty input"))}
	}
	grid, err := ParseGrid(scanner.Text())
	if err != nil {
		return nil, nil, &LineError{Line: 1, Err: err}
	}

	var entries []Entry
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if opts.SkipBlankLines && strings.TrimSpace(text) == "" {
			continue
		}
		robot, err := ParseRobot(text)
		if err != nil {
			return nil, nil, &LineError{Line: lineNo, Err: err}
		}
		entries = append(entries, Entry{Line: lineNo, Robot: robot})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read line %d: %w", lineNo+1, err)
	}
	return grid, entries, nil
}

// Run parses the whole input, then simulates each robot in input order and
// writes one result line per robot to w. Nothing is written if any line
// fails to parse.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	grid, entries, err := Load(r, opts)
	if err != nil {
		return err
	}
	log.Info("input loaded", zap.Stringer("grid", grid), zap.Int("robots", len(entries)))

	bw := bufio.NewWriter(w)
	lost := 0
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			bw.Flush()
			return err
		}
		out := Process(grid, e.Robot)
		if out.Lost {
			lost++
		}
		log.Debug("robot processed",
			zap.Int("line", e.Line),
			zap.Stringer("robot", e.Robot),
			zap.Stringer("outcome", out),
			zap.Bool("lost", out.Lost))
		if _, err := fmt.Fprintln(bw, Format(out)); err != nil {
			return fmt.Errorf("write result for line %d: %w", e.Line, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush results: %w", err)
	}
	log.Info("run complete", zap.Int("robots", len(entries)), zap.Int("lost", lost))
	return nil
}
