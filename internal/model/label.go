// Package model defines the core domain types shared across the application.
package model

// Label is the predicted gender for a single recording.
type Label string

// Predicted label constants. LabelError marks files whose audio could not be
// decoded or analyzed; it is distinct from LabelUnclassified, which means the
// analysis ran but produced no usable pitch.
const (
	LabelMale         Label = "male"
	LabelFemale       Label = "female"
	LabelUnclassified Label = "unclassified"
	LabelError        Label = "error"
)

// Gendered reports whether the label is one of the two gender bands.
func (l Label) Gendered() bool {
	return l == LabelMale || l == LabelFemale
}
