package validation

import "errors"

// ErrInvalidDate is returned when a date is not shaped like YYYY-MM-DD.
var ErrInvalidDate = errors.New("date must be formatted YYYY-MM-DD")

// IsValidDateSyntax reports whether s is shaped like YYYY-MM-DD: ten bytes,
// dashes at offsets 4 and 7, ASCII digits everywhere else. Month and day
// ranges are not checked, so "2024-13-99" passes.
func IsValidDateSyntax(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
