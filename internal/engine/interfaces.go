package engine

import (
	"context"

	"voxpitch/internal/audio"
	"voxpitch/internal/model"
)

// ClipLoader defines the contract for turning a file identifier into an
// analyzable waveform.
type ClipLoader interface {
	Load(ctx context.Context, name string) (audio.Clip, error)
}

// PitchEstimator defines the contract for extracting a mean pitch from a
// waveform.
type PitchEstimator interface {
	Estimate(clip audio.Clip) (model.Pitch, error)
}

// GroundTruth defines the contract for looking up the expected label of a
// file identifier.
type GroundTruth interface {
	Lookup(fileID string) string
}
