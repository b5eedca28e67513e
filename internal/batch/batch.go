// Package batch scores many OCR text files concurrently.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/artscore/internal/discovery"
	"github.com/dotcommander/artscore/internal/scoring"
	"github.com/dotcommander/artscore/internal/substat"
)

// Options configures a batch run.
type Options struct {
	Parser      *substat.Parser
	Profile     scoring.Profile
	Concurrency int
	Logger      *slog.Logger
}

// FileResult is the outcome for one file. Err is set when the file could not
// be read; malformed lines are not file errors.
type FileResult struct {
	File      string
	SubStats  []substat.Substat
	Malformed []*substat.MalformedLineError
	Result    scoring.Result
	Err       error
}

// Run parses and scores files, keeping their order. At most
// opts.Concurrency files are processed at once. The only error returned is
// ctx's when it is cancelled before all files were scheduled.
func Run(ctx context.Context, files []discovery.File, opts Options) ([]FileResult, error) {
	if opts.Parser == nil {
		opts.Parser = substat.DefaultParser
	}
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	results := make([]FileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Concurrency)

	for i, f := range files {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = scoreFile(f, opts)
			logger.Debug("scored file",
				"file", f.RelPath,
				"substats", len(results[i].SubStats),
				"malformed", len(results[i].Malformed),
				"score", results[i].Result.Score)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

func scoreFile(f discovery.File, opts Options) FileResult {
	res := FileResult{File: f.RelPath}

	data, err := os.ReadFile(f.Path)
	if err != nil {
		res.Err = fmt.Errorf("failed to read %s: %w", f.RelPath, err)
		return res
	}

	res.SubStats, res.Malformed = opts.Parser.Parse(string(data))
	res.Result = scoring.Evaluate(res.SubStats, opts.Profile)
	return res
}
