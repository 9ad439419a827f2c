package model

// Pitch is the outcome of pitch analysis for one recording. When Voiced is
// false, no voiced frames were found and Hz carries no meaning.
type Pitch struct {
	Hz     float64
	Voiced bool
}

// VoicedPitch returns a present estimate at the given mean frequency.
func VoicedPitch(hz float64) Pitch {
	return Pitch{Hz: hz, Voiced: true}
}

// NoPitch returns the absent estimate.
func NoPitch() Pitch {
	return Pitch{}
}
