package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/andreyvit/diff"
	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
)

var (
	workers    = flag.Int("workers", runtime.NumCPU(), "number of parallel chunk workers")
	profileDir = flag.String("profile", "", "write a CPU profile into `dir`")
	expectPath = flag.String("expect", "", "compare the summary against the reference output in `file`")
	verbose    = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	filePath := "measurements.txt"
	if flag.NArg() > 0 {
		filePath = flag.Arg(0)
	}

	if err := run(log, filePath); err != nil {
		log.Error("aggregation failed", "path", filePath, "err", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, filePath string) error {
	if *profileDir != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profileDir), profile.Quiet).Stop()
	}

	start := time.Now()
	summary, err := processFile(log, filePath, *workers)
	if err != nil {
		return err
	}
	log.Debug("aggregated", "elapsed", time.Since(start))

	if *expectPath != "" {
		if err := compareReference(summary, *expectPath); err != nil {
			return err
		}
	}

	fmt.Print(summary)
	return nil
}

func processFile(log *slog.Logger, filePath string, workerCount int) (string, error) {
	src, err := openSource(filePath)
	if err != nil {
		return "", err
	}
	defer func() {
		// the summary is already copied out of the mapping
		if err := src.Close(); err != nil {
			log.Debug("closing source", "path", filePath, "err", err)
		}
	}()

	log.Debug("opened source", "bytes", len(src.data), "mapped", src.mapped)

	results, err := process(log, src.data, workerCount)
	if err != nil {
		return "", fmt.Errorf("%s: %w", filePath, err)
	}

	return results.summarize(), nil
}

// process aggregates data with up to workerCount goroutines, one per chunk.
func process(log *slog.Logger, data []byte, workerCount int) (*results, error) {
	chunks := splitChunks(data, workerCount)
	log.Debug("split source", "chunks", len(chunks), "workers", workerCount)

	parts := make([]*results, len(chunks))
	var g errgroup.Group
	for i, c := range chunks {
		g.Go(func() error {
			t, err := aggregateChunk(data, c)
			if err != nil {
				return err
			}
			parts[i] = t.fold()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reduce(parts), nil
}

func compareReference(summary, expectPath string) error {
	want, err := os.ReadFile(expectPath)
	if err != nil {
		return fmt.Errorf("reading reference: %w", err)
	}
	if string(want) == summary {
		return nil
	}

	fmt.Fprintln(os.Stderr, diff.LineDiff(
		diff.TrimLinesInString(toLines(string(want))),
		diff.TrimLinesInString(toLines(summary))))
	return fmt.Errorf("%s: %w", expectPath, ErrReferenceMismatch)
}
