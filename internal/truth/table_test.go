package truth

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpitch/internal/common"
)

func TestLoad(t *testing.T) {
	csv := strings.Join([]string{
		"filename,gender",
		"clip1.mp3,male",
		" clip2.mp3 , FEMALE ",
		"clip3.mp3,",
		"clip1.mp3,female",
	}, "\n")

	table, err := Load(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 3, table.Len())
	assert.Equal(t, "female", table.Lookup("clip1.mp3"), "last row wins for duplicates")
	assert.Equal(t, "female", table.Lookup("clip2.mp3"), "values are trimmed and lowercased")
	assert.Equal(t, "", table.Lookup("clip3.mp3"), "empty gender cell stays empty")
	assert.Equal(t, UnknownLabel, table.Lookup("absent.mp3"))
}

func TestLoad_ColumnOrderAndExtras(t *testing.T) {
	csv := strings.Join([]string{
		"age,gender,filename",
		"31,male,clip1.mp3",
		"44,female,clip2.mp3",
	}, "\n")

	table, err := Load(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, "male", table.Lookup("clip1.mp3"))
	assert.Equal(t, "female", table.Lookup("clip2.mp3"))
}

func TestLoad_NoGenderColumn(t *testing.T) {
	csv := "filename\nclip1.mp3\n"

	table, err := Load(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, "", table.Lookup("clip1.mp3"))
}

func TestLoad_ShortAndBlankRows(t *testing.T) {
	csv := strings.Join([]string{
		"filename,gender",
		"clip1.mp3",
		",female",
		"clip2.mp3,male",
	}, "\n")

	table, err := Load(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "", table.Lookup("clip1.mp3"))
	assert.Equal(t, "male", table.Lookup("clip2.mp3"))
}

func TestLoad_ByteOrderMark(t *testing.T) {
	csv := "\uFEFFfilename,gender\nclip1.mp3,male\n"

	table, err := Load(strings.NewReader(csv))

	require.NoError(t, err)
	assert.Equal(t, "male", table.Lookup("clip1.mp3"))
}

func TestLoad_Failures(t *testing.T) {
	tests := []struct {
		name    string
		csv     string
		wantErr error
	}{
		{name: "empty source", csv: ""},
		{name: "missing filename column", csv: "file,gender\nclip1.mp3,male\n", wantErr: common.ErrMissingColumn},
		{name: "malformed quoting", csv: "filename,gender\n\"clip1.mp3,male\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.csv")
	require.NoError(t, os.WriteFile(path, []byte("filename,gender\nclip1.mp3,male\n"), 0o600))

	table, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "male", table.Lookup("clip1.mp3"))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.csv"))

	require.Error(t, err)
}
