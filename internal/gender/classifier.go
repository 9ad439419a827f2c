// Package gender maps pitch estimates to gender labels using fixed frequency bands.
package gender

import "voxpitch/internal/model"

// Frequency bands in Hz. A mean pitch inside [MaleMinHz, MaleMaxHz] reads as
// male, inside (MaleMaxHz, FemaleMaxHz] as female. The shared 150 Hz edge
// belongs to the male band.
const (
	MaleMinHz   = 85.0
	MaleMaxHz   = 150.0
	FemaleMaxHz = 255.0
)

// Classify maps a pitch estimate to a gender label. Absent estimates and
// frequencies outside both bands come back unclassified. The decision is
// memoryless: the same estimate always produces the same label.
func Classify(p model.Pitch) model.Label {
	if !p.Voiced {
		return model.LabelUnclassified
	}

	switch {
	case p.Hz >= MaleMinHz && p.Hz <= MaleMaxHz:
		return model.LabelMale
	case p.Hz > MaleMaxHz && p.Hz <= FemaleMaxHz:
		return model.LabelFemale
	default:
		return model.LabelUnclassified
	}
}
