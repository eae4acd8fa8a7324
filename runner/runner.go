package runner

import (
	"bufio"
	"fmt"
	"io"

	"github.com/takaishi/minigrep/config"
	"github.com/takaishi/minigrep/search"
	"github.com/takaishi/minigrep/source"
	"go.uber.org/zap"
)

// Runner reads the target file, searches it and prints the matching lines
type Runner struct {
	stdout io.Writer
	logger *zap.Logger
}

// New creates a Runner writing results to stdout
func New(stdout io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		stdout: stdout,
		logger: logger,
	}
}

// Run performs one search. Nothing is written to stdout if the file cannot be read.
func (r *Runner) Run(cfg *config.Config) error {
	r.logger.Debug("searching",
		zap.String("query", cfg.Query),
		zap.String("file", cfg.Filename),
		zap.Bool("ignore_case", cfg.IgnoreCase),
		zap.Bool("highlight", cfg.Highlight),
	)

	contents, err := source.Load(cfg.Filename)
	if err != nil {
		return err
	}

	opts := search.Options{IgnoreCase: cfg.IgnoreCase}
	if cfg.Highlight {
		style := search.DefaultHighlightStyle
		if cfg.Settings != nil {
			style = cfg.Settings.Highlight.Style()
		}
		opts.Decorate = search.NewHighlighter(r.stdout, style).Decorate
	}

	results := search.Search(cfg.Query, contents, opts)

	w := bufio.NewWriter(r.stdout)
	for _, line := range results {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if ce := r.logger.Check(zap.DebugLevel, "search finished"); ce != nil {
		ce.Write(
			zap.Int("lines", len(search.Lines(contents))),
			zap.Int("matches", len(results)),
		)
	}
	return nil
}
