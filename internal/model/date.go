package model

import (
	"fmt"
	"time"
)

const (
	// StoredDateLayout is the on-disk date form. Lexicographic order on this
	// layout matches chronological order, which the range filters rely on.
	StoredDateLayout = "2006-01-02"

	// DisplayDateLayout is the human-facing date form.
	DisplayDateLayout = "01/02/2006"
)

// NormalizeDate accepts MM/DD/YYYY or YYYY-MM-DD input and returns the
// stored YYYY-MM-DD form.
func NormalizeDate(in string) (string, error) {
	if in == "" {
		return "", fmt.Errorf("%w: date is required", ErrValidation)
	}
	if t, err := time.Parse(DisplayDateLayout, in); err == nil {
		return t.Format(StoredDateLayout), nil
	}
	if t, err := time.Parse(StoredDateLayout, in); err == nil {
		return t.Format(StoredDateLayout), nil
	}
	return "", fmt.Errorf("%w: date %q must be MM/DD/YYYY or YYYY-MM-DD", ErrValidation, in)
}

// DisplayDate renders a stored date for presentation. Unparseable values are
// returned unchanged rather than dropped.
func DisplayDate(stored string) string {
	t, err := time.Parse(StoredDateLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(DisplayDateLayout)
}
