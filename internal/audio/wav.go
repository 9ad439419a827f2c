package audio

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// decodeWAV reads a RIFF/WAVE stream into a normalized mono clip. Stereo and
// multi-channel material is mixed down by averaging the channels.
func decodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return Clip{}, errors.New("invalid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, fmt.Errorf("failed to decode wav: %w", err)
	}
	if buf.Format == nil || buf.Format.SampleRate <= 0 || buf.Format.NumChannels <= 0 {
		return Clip{}, errors.New("wav file has no usable format")
	}

	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = 16
	}

	// 8-bit wav samples are unsigned; everything deeper is signed and
	// centered already.
	var offset float64
	if bitDepth == 8 {
		offset = 128
	}
	scale := float64(int64(1) << (bitDepth - 1))

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		var sum float64
		for ch := 0; ch < channels; ch++ {
			sum += float64(buf.Data[i*channels+ch]) - offset
		}
		samples[i] = sum / (float64(channels) * scale)
	}

	return Clip{Samples: samples, SampleRate: buf.Format.SampleRate}, nil
}
