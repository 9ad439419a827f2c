package model

import "time"

// Summary aggregates the outcome counts of a finished evaluation run.
type Summary struct {
	Elapsed      time.Duration
	Total        int
	Correct      int
	Incorrect    int
	Unclassified int
}

// Summarize folds a finished record slice into aggregate counts. The fold is
// order-independent, so sequential and concurrent runs over the same records
// agree on every count.
func Summarize(records []Record, elapsed time.Duration) Summary {
	s := Summary{Total: len(records), Elapsed: elapsed}
	for _, r := range records {
		switch {
		case r.Correct:
			s.Correct++
		case r.Incorrect:
			s.Incorrect++
		default:
			s.Unclassified++
		}
	}
	return s
}

// CorrectRate returns the fraction of records scored correct, 0 for an empty run.
func (s Summary) CorrectRate() float64 {
	return s.rate(s.Correct)
}

// IncorrectRate returns the fraction of records scored incorrect.
func (s Summary) IncorrectRate() float64 {
	return s.rate(s.Incorrect)
}

// UnclassifiedRate returns the fraction of records left unclassified.
func (s Summary) UnclassifiedRate() float64 {
	return s.rate(s.Unclassified)
}

func (s Summary) rate(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(n) / float64(s.Total)
}
