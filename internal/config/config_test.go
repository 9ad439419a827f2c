package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpitch/internal/common"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	assert.Equal(t, "data/audio", s.AudioDir)
	assert.Equal(t, "data/meta.csv", s.MetaPath)
	assert.Equal(t, "results.csv", s.OutPath)
	assert.Equal(t, 10, s.Limit)
	assert.Equal(t, 1, s.Workers)
	assert.False(t, s.All)
}

func TestFromViper_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetViperDefaults()

	assert.Equal(t, DefaultSettings(), FromViper())
}

func TestFromViper_Overrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	SetViperDefaults()
	viper.Set("paths.audio_dir", "/var/voice/clips")
	viper.Set("paths.out", "out/run1.csv")
	viper.Set("classify.limit", 250)
	viper.Set("classify.workers", 8)
	viper.Set("classify.all", true)

	s := FromViper()

	assert.Equal(t, "/var/voice/clips", s.AudioDir)
	assert.Equal(t, DefaultMetaPath, s.MetaPath)
	assert.Equal(t, "out/run1.csv", s.OutPath)
	assert.Equal(t, 250, s.Limit)
	assert.Equal(t, 8, s.Workers)
	assert.True(t, s.All)
}

func TestFromViper_ExpandsPaths(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("VOXPITCH_TEST_ROOT", "/srv/voxpitch")

	SetViperDefaults()
	viper.Set("paths.audio_dir", "$VOXPITCH_TEST_ROOT/audio")
	viper.Set("paths.meta", "~/meta.csv")

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	s := FromViper()

	assert.Equal(t, "/srv/voxpitch/audio", s.AudioDir)
	assert.Equal(t, filepath.Join(home, "meta.csv"), s.MetaPath)
}

func TestValidate(t *testing.T) {
	valid := DefaultSettings()

	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr bool
	}{
		{
			name:   "defaults are valid",
			mutate: func(s *Settings) {},
		},
		{
			name:   "all files with many workers",
			mutate: func(s *Settings) { s.All = true; s.Workers = 16 },
		},
		{
			name:    "empty audio dir",
			mutate:  func(s *Settings) { s.AudioDir = "" },
			wantErr: true,
		},
		{
			name:    "empty meta path",
			mutate:  func(s *Settings) { s.MetaPath = "" },
			wantErr: true,
		},
		{
			name:    "empty output path",
			mutate:  func(s *Settings) { s.OutPath = "" },
			wantErr: true,
		},
		{
			name:    "zero limit",
			mutate:  func(s *Settings) { s.Limit = 0 },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(s *Settings) { s.Workers = -2 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := valid
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("VOXPITCH_TEST_DIR", "/data/runs")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain relative", in: "data/audio", want: "data/audio"},
		{name: "plain absolute", in: "/var/audio", want: "/var/audio"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde prefix", in: "~/clips", want: filepath.Join(home, "clips")},
		{name: "env var", in: "$VOXPITCH_TEST_DIR/out.csv", want: "/data/runs/out.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
