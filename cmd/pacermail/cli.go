package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/ttys0dev/juriscraper/mime"
	"github.com/ttys0dev/juriscraper/parse"
)

// CLI defines the command line interface.
type CLI struct {
	Court       string   `help:"Court identifier the mailbox belongs to (e.g. cand, cacb, ca9)." required:""`
	S3          bool     `help:"Treat inputs as SES messages archived in S3 (repairs broken line endings)."`
	Concurrency int      `help:"Number of messages parsed in parallel." default:"4"`
	Verbose     bool     `help:"Enable debug logging."`
	Paths       []string `arg:"" help:"Notification email files to parse." type:"existingfile"`
}

// Run parses every input file concurrently and prints one JSON document
// per input, in input order. Invalid messages print {}. A failing message
// is logged and prints {} too; one bad input never blocks the rest.
func (c *CLI) Run(ctx context.Context, engine *parse.Parser, logger *slog.Logger, stdout io.Writer) error {
	results := make([]string, len(c.Paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.Concurrency)
	for i, path := range c.Paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			out, err := c.parseFile(engine, path)
			if err != nil {
				logger.Error("can't parse notification",
					"path", path,
					"court", c.Court,
					"error", err,
				)
				results[i] = "{}"
				return nil
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range results {
		fmt.Fprintln(stdout, out)
	}
	return nil
}

func (c *CLI) parseFile(engine *parse.Parser, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decode := mime.Decode
	if c.S3 {
		decode = mime.DecodeS3
	}
	msg, err := decode(string(raw))
	if err != nil {
		return "", err
	}
	msg.CourtID = c.Court

	notification, err := engine.ParseMessage(msg)
	if err != nil {
		return "", err
	}
	if notification == nil {
		return "{}", nil
	}

	encoded, err := json.Marshal(notification)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
