// Package main contains the voxpitch CLI commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"voxpitch/internal/audio"
	"voxpitch/internal/common"
	"voxpitch/internal/config"
	"voxpitch/internal/engine"
	"voxpitch/internal/model"
	"voxpitch/internal/pitch"
	"voxpitch/internal/report"
	"voxpitch/internal/truth"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify speaker gender for a directory of recordings",
		Long: `Classify the speaker gender of audio recordings from their pitch.

Each file is decoded, its fundamental frequency is estimated over voiced
frames, and the mean pitch is mapped to male (85-150 Hz) or female
(150-255 Hz). Predictions are scored against a ground truth table and
written to a results CSV alongside an accuracy summary.

Examples:
  voxpitch classify                      # First 10 files under data/audio
  voxpitch classify --all --workers 8    # Every file, 8 concurrent workers
  voxpitch classify -n 50 -o run.csv     # First 50 files, custom output`,
		RunE: runClassify,
	}

	// Flags
	cmd.Flags().String("audio-dir", config.DefaultAudioDir, "Directory containing audio files")
	cmd.Flags().String("meta", config.DefaultMetaPath, "Ground truth CSV file")
	cmd.Flags().StringP("out", "o", config.DefaultOutPath, "Results CSV file")
	cmd.Flags().IntP("limit", "n", config.DefaultLimit, "Number of files to classify")
	cmd.Flags().BoolP("all", "a", false, "Classify every file, ignoring --limit")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers, "Number of concurrent workers")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("paths.audio_dir", cmd.Flags().Lookup("audio-dir"))
	_ = viper.BindPFlag("paths.meta", cmd.Flags().Lookup("meta"))
	_ = viper.BindPFlag("paths.out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("classify.limit", cmd.Flags().Lookup("limit"))
	_ = viper.BindPFlag("classify.all", cmd.Flags().Lookup("all"))
	_ = viper.BindPFlag("classify.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runClassify(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := config.FromViper()
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.Info(report.FormatTitle("Classifying voice recordings"))
	slog.Info("Run settings",
		"audio_dir", cfg.AudioDir,
		"meta", cfg.MetaPath,
		"out", cfg.OutPath,
		"workers", cfg.Workers)

	table, err := truth.LoadFile(cfg.MetaPath)
	if err != nil {
		return common.NewUserError("could not read ground truth", err)
	}

	files, err := audio.ListDir(cfg.AudioDir)
	if err != nil {
		return common.NewUserError("could not list audio directory", err)
	}
	files = selectFiles(files, cfg.Limit, cfg.All)

	if len(files) == 0 {
		slog.Warn(report.FormatWarning("No audio files to classify"), "dir", cfg.AudioDir)
	}

	var bar *report.Progress
	if len(files) > 0 {
		bar = report.NewProgress(os.Stderr, len(files))
	}

	eval := engine.NewWithConfig(
		audio.NewFileLoader(cfg.AudioDir),
		pitch.NewEstimator(),
		table,
		engine.Config{
			Workers: cfg.Workers,
			OnResult: func(_ model.Record) {
				if bar != nil {
					bar.Add()
				}
			},
		},
	)

	records, summary, err := eval.Run(ctx, files)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("Classification interrupted, discarding partial results")
			return nil
		}
		return fmt.Errorf("classification failed: %w", err)
	}

	if bar != nil {
		bar.Finish()
	}

	if err := report.NewCSVWriter(cfg.OutPath).Write(records); err != nil {
		return common.NewUserError("could not write results", err)
	}

	slog.Info(report.FormatSuccess(fmt.Sprintf("Wrote %d results to %s", len(records), cfg.OutPath)))

	report.NewPrinter(os.Stdout).PrintSummary(summary)

	return nil
}

// selectFiles cuts the candidate list down to the first limit entries
// unless all is set.
func selectFiles(files []string, limit int, all bool) []string {
	if all || len(files) <= limit {
		return files
	}
	return files[:limit]
}
