// Package engine orchestrates concurrent classification of audio recordings
// and aggregates the outcome of an evaluation run.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"voxpitch/internal/gender"
	"voxpitch/internal/model"
)

// Config holds configuration options for the evaluator.
type Config struct {
	// OnResult, when set, observes every completed record. It is invoked
	// from the collecting goroutine only, never concurrently.
	OnResult func(model.Record)
	// Workers sets the size of the worker pool. A single worker processes
	// files sequentially in submission order.
	Workers int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Workers: 1}
}

// Evaluator runs the classification pipeline over a batch of audio files.
type Evaluator struct {
	loader    ClipLoader
	estimator PitchEstimator
	table     GroundTruth
	cfg       Config
}

// New creates an evaluator with the default configuration.
func New(loader ClipLoader, estimator PitchEstimator, table GroundTruth) *Evaluator {
	return NewWithConfig(loader, estimator, table, DefaultConfig())
}

// NewWithConfig creates an evaluator with custom configuration.
func NewWithConfig(loader ClipLoader, estimator PitchEstimator, table GroundTruth, cfg Config) *Evaluator {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Evaluator{
		loader:    loader,
		estimator: estimator,
		table:     table,
		cfg:       cfg,
	}
}

// Run classifies every named file and returns the per-file records plus the
// aggregate summary. Records arrive in submission order with one worker and
// in completion order otherwise; the summary is folded from the finished
// records afterwards, so counts never depend on arrival order. A file that
// cannot be loaded or analyzed degrades to a single error-labeled record.
// Run itself fails only on context cancellation and then still returns the
// records completed so far.
func (ev *Evaluator) Run(ctx context.Context, files []string) ([]model.Record, model.Summary, error) {
	start := time.Now()

	slog.Info("starting evaluation",
		"files", len(files),
		"workers", ev.cfg.Workers)

	var (
		records []model.Record
		err     error
	)
	if ev.cfg.Workers == 1 {
		records, err = ev.runSequential(ctx, files)
	} else {
		records, err = ev.runParallel(ctx, files)
	}

	summary := model.Summarize(records, time.Since(start))
	if err != nil {
		return records, summary, err
	}

	slog.Info("evaluation complete",
		"total", summary.Total,
		"correct", summary.Correct,
		"incorrect", summary.Incorrect,
		"unclassified", summary.Unclassified,
		"elapsed", summary.Elapsed.Round(time.Millisecond))

	return records, summary, nil
}

func (ev *Evaluator) runSequential(ctx context.Context, files []string) ([]model.Record, error) {
	records := make([]model.Record, 0, len(files))
	for _, name := range files {
		select {
		case <-ctx.Done():
			return records, ctx.Err()
		default:
		}

		record := ev.classifyFile(ctx, name)
		records = append(records, record)
		if ev.cfg.OnResult != nil {
			ev.cfg.OnResult(record)
		}
	}
	return records, nil
}

func (ev *Evaluator) runParallel(ctx context.Context, files []string) ([]model.Record, error) {
	workChan := make(chan string, len(files))
	for _, name := range files {
		workChan <- name
	}
	close(workChan)

	resultsChan := make(chan model.Record, len(files))

	var wg sync.WaitGroup
	wg.Add(ev.cfg.Workers)
	for i := 0; i < ev.cfg.Workers; i++ {
		go func() {
			defer wg.Done()
			ev.worker(ctx, workChan, resultsChan)
		}()
	}

	// Close the results channel once every worker has drained out.
	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	records := make([]model.Record, 0, len(files))
	for record := range resultsChan {
		records = append(records, record)
		if ev.cfg.OnResult != nil {
			ev.cfg.OnResult(record)
		}
	}

	if err := ctx.Err(); err != nil {
		return records, err
	}
	return records, nil
}

// worker drains the work channel one file at a time, stopping early when the
// context is canceled.
func (ev *Evaluator) worker(ctx context.Context, workChan <-chan string, resultsChan chan<- model.Record) {
	for name := range workChan {
		select {
		case <-ctx.Done():
			return
		default:
		}
		resultsChan <- ev.classifyFile(ctx, name)
	}
}

// classifyFile runs the per-file pipeline: load, estimate, classify, score.
// Failures while loading or analyzing degrade the record to the error label
// instead of failing the batch; the ground truth is recorded either way.
func (ev *Evaluator) classifyFile(ctx context.Context, name string) model.Record {
	groundTruth := ev.table.Lookup(name)

	clip, err := ev.loader.Load(ctx, name)
	if err != nil {
		slog.Warn("failed to load audio",
			"file", name,
			"error", err)
		return model.NewRecord(name, model.LabelError, model.NoPitch(), groundTruth)
	}

	estimate, err := ev.estimator.Estimate(clip)
	if err != nil {
		slog.Warn("failed to estimate pitch",
			"file", name,
			"error", err)
		return model.NewRecord(name, model.LabelError, model.NoPitch(), groundTruth)
	}

	predicted := gender.Classify(estimate)

	slog.Debug("classified file",
		"file", name,
		"predicted", string(predicted),
		"pitch_hz", fmt.Sprintf("%.2f", estimate.Hz))

	return model.NewRecord(name, predicted, estimate, groundTruth)
}
