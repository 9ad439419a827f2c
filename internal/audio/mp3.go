package audio

import (
	"encoding/binary"
	"fmt"
	"io"

	mp3 "github.com/hajimehoshi/go-mp3"
)

// decodeMP3 reads an MPEG audio stream into a normalized mono clip. The
// decoder always emits 16-bit little-endian stereo, so a frame is four bytes.
func decodeMP3(r io.Reader) (Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Clip{}, fmt.Errorf("failed to decode mp3: %w", err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return Clip{}, fmt.Errorf("failed to decode mp3 stream: %w", err)
	}

	samples := make([]float64, 0, len(raw)/4)
	for i := 0; i+3 < len(raw); i += 4 {
		left := int16(binary.LittleEndian.Uint16(raw[i:]))
		right := int16(binary.LittleEndian.Uint16(raw[i+2:]))
		samples = append(samples, (float64(left)+float64(right))/(2*32768))
	}

	return Clip{Samples: samples, SampleRate: dec.SampleRate()}, nil
}
