package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrNumberRequired indicates an empty task number.
var ErrNumberRequired = errors.New("task number required")

// ErrInvalidNumber indicates task number text that is not a positive integer.
var ErrInvalidNumber = errors.New("invalid task number")

// ParsePosition parses a 1-based task number typed by the user.
// Surrounding whitespace is ignored; anything but ASCII digits is rejected.
// Range checking against the list is left to the service.
func ParsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrNumberRequired
	}
	if !isAllDigits(s) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidNumber, s)
	}
	return n, nil
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r > unicode.MaxASCII || !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
