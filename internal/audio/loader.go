package audio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"voxpitch/internal/common"
)

// SupportedExtensions lists the formats the loader decodes, lowercase with
// leading dot.
var SupportedExtensions = []string{".mp3", ".wav"}

// FileLoader decodes audio files under a base directory into mono clips.
type FileLoader struct {
	dir string
}

// NewFileLoader creates a loader rooted at the given directory.
func NewFileLoader(dir string) *FileLoader {
	return &FileLoader{dir: dir}
}

// Load decodes the named file into a mono waveform. The decoder is chosen by
// file extension.
func (l *FileLoader) Load(ctx context.Context, name string) (Clip, error) {
	if err := ctx.Err(); err != nil {
		return Clip{}, err
	}

	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		return Clip{}, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer func() { _ = f.Close() }()

	switch strings.ToLower(filepath.Ext(name)) {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	default:
		return Clip{}, fmt.Errorf("%q: %w", name, common.ErrUnsupportedFormat)
	}
}

// IsSupported reports whether the loader can decode the named file, judged
// by extension.
func IsSupported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}
