// Package audio loads audio files into analyzable waveforms and enumerates
// candidate recordings on disk.
package audio

import "time"

// Clip is a decoded mono waveform. Samples are normalized to [-1, 1] and the
// slice is never mutated after loading.
type Clip struct {
	Samples    []float64
	SampleRate int
}

// Duration returns the clip length as wall-clock time.
func (c Clip) Duration() time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	seconds := float64(len(c.Samples)) / float64(c.SampleRate)
	return time.Duration(seconds * float64(time.Second))
}
