package audio

import (
	"fmt"
	"os"
	"sort"
)

// ListDir returns the names of supported audio files directly under dir,
// sorted ascending so runs over the same directory are reproducible.
func ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list audio directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !IsSupported(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}
