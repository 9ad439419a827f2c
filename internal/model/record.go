package model

// Record is the scored outcome for a single audio file.
type Record struct {
	File         string
	Predicted    Label
	GroundTruth  string
	Pitch        Pitch
	Correct      bool
	Incorrect    bool
	Unclassified bool
}

// NewRecord derives the three mutually exclusive outcome flags from the
// predicted and ground-truth labels. Exactly one flag is set: Correct and
// Incorrect require a gendered prediction, and everything else, including
// analysis failures, counts as Unclassified.
func NewRecord(file string, predicted Label, pitch Pitch, groundTruth string) Record {
	r := Record{
		File:        file,
		Predicted:   predicted,
		GroundTruth: groundTruth,
		Pitch:       pitch,
	}
	switch {
	case !predicted.Gendered():
		r.Unclassified = true
	case string(predicted) == groundTruth:
		r.Correct = true
	default:
		r.Incorrect = true
	}
	return r
}
