// batch.go - Parallel replay of many games
package main

import (
	"bufio"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/processing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// batchStats summarises a batch run.
type batchStats struct {
	Total      int
	Written    int
	Duplicates int
	Failed     int
}

// batchOptions controls duplicate handling in runBatch.
type batchOptions struct {
	SuppressDuplicates bool
	ExactDuplicates    bool
}

// readWorkItems splits batch input into work items. Input whose first
// non-blank line is a PGN tag is read as PGN games; anything else is one
// move list per line, with '#' starting a comment line.
func readWorkItems(r io.Reader, name, startFEN string) ([]worker.WorkItem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		items   []worker.WorkItem
		pgn     strings.Builder
		isPGN   bool
		decided bool
		inMoves bool
		lineNum int
	)
	flushPGN := func() {
		if strings.TrimSpace(pgn.String()) != "" {
			items = append(items, worker.WorkItem{
				Index:  len(items),
				Source: fmt.Sprintf("%s game %d", name, len(items)+1),
				PGN:    pgn.String(),
			})
		}
		pgn.Reset()
		inMoves = false
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if !decided {
			if trimmed == "" {
				continue
			}
			isPGN = strings.HasPrefix(trimmed, "[")
			decided = true
		}

		if isPGN {
			isTag := strings.HasPrefix(trimmed, "[")
			if isTag && inMoves {
				flushPGN()
			}
			if !isTag && trimmed != "" {
				inMoves = true
			}
			pgn.WriteString(line)
			pgn.WriteByte('\n')
			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		items = append(items, worker.WorkItem{
			Index:    len(items),
			Source:   fmt.Sprintf("%s:%d", name, lineNum),
			StartFEN: startFEN,
			Moves:    processing.Tokenize(trimmed),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if isPGN {
		flushPGN()
	}
	return items, nil
}

// runBatch replays items on a worker pool and writes finished games to w in
// input order. Games that fail to replay are logged and skipped.
func runBatch(cfg *config.Config, items []worker.WorkItem, opts batchOptions, w output.GameWriter) (batchStats, error) {
	numWorkers := cfg.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}

	// Duplicates are checked as results are released in input order, so
	// the first occurrence of a game is the one written.
	var dup *hashing.DuplicateDetector
	if opts.SuppressDuplicates {
		dup = hashing.NewDuplicateDetector(opts.ExactDuplicates, 0)
	}

	pool := worker.NewPoolWithOptions(worker.Replay,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(numWorkers*2),
	)
	pool.Start()
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	stats := batchStats{Total: len(items)}
	ro := worker.NewReorderer()
	var writeErr error
	for r := range pool.Results() {
		for _, res := range ro.Add(r) {
			if writeErr != nil {
				continue // Drain the pool
			}
			writeErr = emitResult(res, dup, w, &stats)
			if writeErr != nil {
				pool.Stop()
			}
		}
	}
	if writeErr != nil {
		return stats, writeErr
	}
	return stats, w.Close()
}

func emitResult(res worker.ProcessResult, dup *hashing.DuplicateDetector, w output.GameWriter, stats *batchStats) error {
	switch {
	case res.Error != nil:
		stats.Failed++
		logger().Warn("game skipped", "source", res.Source, "error", res.Error)
		return nil
	case dup != nil && dup.CheckAndAdd(res.Game):
		stats.Duplicates++
		logger().Debug("duplicate suppressed", "source", res.Source)
		return nil
	}
	if err := w.WriteGame(res.Game, res.Tags); err != nil {
		return err
	}
	stats.Written++
	if res.Analysis != nil && res.Analysis.RepetitionDetected() {
		logger().Info("threefold repetition", "source", res.Source)
	}
	return nil
}

// reportStatistics logs the final batch statistics.
func reportStatistics(stats batchStats) {
	logger().Info("batch finished",
		"games", stats.Total,
		"written", stats.Written,
		"duplicates", stats.Duplicates,
		"failed", stats.Failed,
	)
}
