// Package config holds the settings for an evaluation run and the
// plumbing to assemble them from viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"voxpitch/internal/common"
)

// Defaults applied when a key is absent from flags, environment, and file.
const (
	DefaultAudioDir = "data/audio"
	DefaultMetaPath = "data/meta.csv"
	DefaultOutPath  = "results.csv"
	DefaultLimit    = 10
	DefaultWorkers  = 1
)

// Settings describes one evaluation run: where the audio and ground truth
// live, where results are written, how much of the candidate set to take,
// and how many workers classify it.
type Settings struct {
	AudioDir string
	MetaPath string
	OutPath  string
	Limit    int
	Workers  int
	All      bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		AudioDir: DefaultAudioDir,
		MetaPath: DefaultMetaPath,
		OutPath:  DefaultOutPath,
		Limit:    DefaultLimit,
		Workers:  DefaultWorkers,
	}
}

// SetViperDefaults registers the default value for every configuration key
// so that unset keys resolve sensibly regardless of source.
func SetViperDefaults() {
	viper.SetDefault("paths.audio_dir", DefaultAudioDir)
	viper.SetDefault("paths.meta", DefaultMetaPath)
	viper.SetDefault("paths.out", DefaultOutPath)
	viper.SetDefault("classify.limit", DefaultLimit)
	viper.SetDefault("classify.workers", DefaultWorkers)
	viper.SetDefault("classify.all", false)
}

// FromViper assembles run settings from the loaded viper state, expanding
// ~ and environment variables in every path.
func FromViper() Settings {
	return Settings{
		AudioDir: ExpandPath(viper.GetString("paths.audio_dir")),
		MetaPath: ExpandPath(viper.GetString("paths.meta")),
		OutPath:  ExpandPath(viper.GetString("paths.out")),
		Limit:    viper.GetInt("classify.limit"),
		Workers:  viper.GetInt("classify.workers"),
		All:      viper.GetBool("classify.all"),
	}
}

// Validate checks that the settings describe a runnable evaluation.
func (s Settings) Validate() error {
	if s.AudioDir == "" {
		return fmt.Errorf("audio directory is required: %w", common.ErrInvalidConfig)
	}
	if s.MetaPath == "" {
		return fmt.Errorf("ground truth path is required: %w", common.ErrInvalidConfig)
	}
	if s.OutPath == "" {
		return fmt.Errorf("output path is required: %w", common.ErrInvalidConfig)
	}
	if s.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d: %w", s.Limit, common.ErrInvalidConfig)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d: %w", s.Workers, common.ErrInvalidConfig)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory and expands
// environment variables in the path.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}
	return os.ExpandEnv(path)
}
