package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt trims and parses a form value as an int.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return n, nil
}

// ParseGrade parses a grade form value and checks the 0-100 range.
func ParseGrade(s string) (int, error) {
	n, err := ParseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 100 {
		return 0, fmt.Errorf("grade %d out of range 0-100", n)
	}
	return n, nil
}
