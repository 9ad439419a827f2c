package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.wav", "a.mp3", "notes.txt", "B.MP3"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.mp3"), 0o750))

	names, err := ListDir(dir)

	require.NoError(t, err)
	assert.Equal(t, []string{"B.MP3", "a.mp3", "b.wav"}, names)
}

func TestListDir_Empty(t *testing.T) {
	names, err := ListDir(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestListDir_MissingDirectory(t *testing.T) {
	_, err := ListDir(filepath.Join(t.TempDir(), "does-not-exist"))

	require.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "clip.mp3", want: true},
		{name: "clip.wav", want: true},
		{name: "CLIP.WAV", want: true},
		{name: "clip.flac", want: false},
		{name: "clip.mp3.bak", want: false},
		{name: "clip", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSupported(tt.name), tt.name)
	}
}
