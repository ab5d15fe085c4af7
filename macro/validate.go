package macro

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Shape constraints for entry fields. The tool layer declares the same
// constraints in its JSON schemas; these are the single source of truth for
// the patterns and bounds.
const (
	DatePattern = `^\d{4}-\d{2}-\d{2}$`
	TimePattern = `^([01]\d|2[0-3]):[0-5]\d$`

	DescriptionMinLen = 1
	DescriptionMaxLen = 500
)

var (
	dateRE = regexp.MustCompile(DatePattern)
	timeRE = regexp.MustCompile(TimePattern)
)

// ValidateDate checks the YYYY-MM-DD shape.
func ValidateDate(date string) error {
	if !dateRE.MatchString(date) {
		return fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, date)
	}
	return nil
}

// ValidateTime checks the 24-hour HH:MM shape.
func ValidateTime(t string) error {
	if !timeRE.MatchString(t) {
		return fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidInput, t)
	}
	return nil
}

// ValidateDescription checks the description length bounds. Length is
// counted in characters, matching the schema's MaxLength semantics.
func ValidateDescription(desc string) error {
	if n := utf8.RuneCountInString(desc); n < DescriptionMinLen || n > DescriptionMaxLen {
		return fmt.Errorf("%w: description must be %d-%d characters",
			ErrInvalidInput, DescriptionMinLen, DescriptionMaxLen)
	}
	return nil
}

// ValidateEntry checks every field of a complete entry.
func ValidateEntry(e FoodEntry) error {
	if err := ValidateTime(e.Time); err != nil {
		return err
	}
	if err := ValidateDescription(e.Description); err != nil {
		return err
	}
	if e.Calories < 0 {
		return fmt.Errorf("%w: calories must be non-negative", ErrInvalidInput)
	}
	if e.Protein < 0 {
		return fmt.Errorf("%w: protein must be non-negative", ErrInvalidInput)
	}
	return nil
}
