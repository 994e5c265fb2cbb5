package utils

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ErrBadNumber is returned by the Parse*Param helpers for malformed input.
var ErrBadNumber = errors.New("not a number")

// ParseFloatParam parses a query value. Blank input yields def; NaN, ±Inf and
// malformed values yield ErrBadNumber.
func ParseFloatParam(s string, def float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrBadNumber
	}
	return f, nil
}

// ParseIntParam is ParseFloatParam for integers.
func ParseIntParam(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, ErrBadNumber
	}
	return n, nil
}
