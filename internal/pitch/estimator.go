// Package pitch estimates the fundamental frequency of recorded speech.
//
// The estimator implements the YIN algorithm: a cumulative mean normalized
// difference function computed over fixed-size frames, an absolute threshold
// to pick the first plausible lag, and parabolic interpolation to refine it.
// The lag search is restricted to a plausible human-voice band, and the final
// estimate is the arithmetic mean of the per-frame frequencies judged voiced.
package pitch

import (
	"fmt"
	"math"

	"voxpitch/internal/audio"
	"voxpitch/internal/common"
	"voxpitch/internal/model"
)

// Config holds the tunable parameters of the estimator.
type Config struct {
	// FloorHz and CeilHz bound the frequency search band.
	FloorHz float64
	CeilHz  float64
	// Threshold is the YIN absolute threshold on the normalized difference.
	Threshold float64
	// SilenceRMS gates out frames too quiet to carry voice.
	SilenceRMS float64
}

// DefaultConfig returns the configuration used for speech recordings.
func DefaultConfig() Config {
	return Config{
		FloorHz:    50,
		CeilHz:     300,
		Threshold:  0.1,
		SilenceRMS: 0.01,
	}
}

// Estimator extracts a mean fundamental frequency from a waveform.
type Estimator struct {
	cfg Config
}

// NewEstimator creates an estimator with the default speech configuration.
func NewEstimator() *Estimator {
	e, err := NewEstimatorWithConfig(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}
	return e
}

// NewEstimatorWithConfig creates an estimator with custom parameters.
func NewEstimatorWithConfig(cfg Config) (*Estimator, error) {
	if cfg.FloorHz <= 0 {
		return nil, fmt.Errorf("frequency floor must be positive, got %g: %w", cfg.FloorHz, common.ErrInvalidConfig)
	}
	if cfg.CeilHz <= cfg.FloorHz {
		return nil, fmt.Errorf("frequency ceiling %g must exceed floor %g: %w", cfg.CeilHz, cfg.FloorHz, common.ErrInvalidConfig)
	}
	if cfg.Threshold <= 0 || cfg.Threshold >= 1 {
		return nil, fmt.Errorf("threshold must be in (0, 1), got %g: %w", cfg.Threshold, common.ErrInvalidConfig)
	}
	if cfg.SilenceRMS < 0 {
		return nil, fmt.Errorf("silence floor must not be negative, got %g: %w", cfg.SilenceRMS, common.ErrInvalidConfig)
	}
	return &Estimator{cfg: cfg}, nil
}

// Estimate analyzes a clip and returns its mean voiced pitch. A clip with no
// voiced frames (silence, noise, or too short to hold a single frame) yields
// an absent estimate and no error; an error is returned only when the clip
// itself cannot be analyzed.
func (e *Estimator) Estimate(clip audio.Clip) (model.Pitch, error) {
	if clip.SampleRate <= 0 {
		return model.NoPitch(), fmt.Errorf("cannot analyze clip: %w", common.ErrInvalidSampleRate)
	}

	rate := float64(clip.SampleRate)
	tauMax := int(rate / e.cfg.FloorHz)
	tauMin := int(math.Ceil(rate / e.cfg.CeilHz))
	if tauMin < 2 {
		tauMin = 2
	}
	if tauMax <= tauMin {
		return model.NoPitch(), fmt.Errorf("sample rate %d Hz cannot resolve the %g-%g Hz band: %w",
			clip.SampleRate, e.cfg.FloorHz, e.cfg.CeilHz, common.ErrInvalidSampleRate)
	}

	// Each frame holds two integration windows so every lag up to tauMax
	// still compares full windows.
	window := tauMax
	frameLen := 2 * window
	hop := window

	diff := make([]float64, window+1)
	cmnd := make([]float64, window+1)

	var sum float64
	var voiced int
	for start := 0; start+frameLen <= len(clip.Samples); start += hop {
		frame := clip.Samples[start : start+frameLen]
		if rms(frame) < e.cfg.SilenceRMS {
			continue
		}

		difference(frame, window, diff)
		cumulativeMeanNormalized(diff, cmnd)

		tau := absoluteThreshold(cmnd, tauMin, tauMax, e.cfg.Threshold)
		if tau < 0 {
			continue
		}

		lag := refineLag(cmnd, tau, tauMin, tauMax)
		sum += rate / lag
		voiced++
	}

	if voiced == 0 {
		return model.NoPitch(), nil
	}
	return model.VoicedPitch(sum / float64(voiced)), nil
}
