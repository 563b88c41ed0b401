package utils

import (
	"strconv"
)

// StringToInt converts string to int, returns 0 if error
func StringToInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return i
}

// StringToUintPtr parses a positive id string. Returns nil for empty,
// unparseable, or non-positive input.
func StringToUintPtr(s string) *uint {
	if s == "" {
		return nil
	}
	i, err := strconv.ParseUint(s, 10, 32)
	if err != nil || i == 0 {
		return nil
	}
	u := uint(i)
	return &u
}

// StringToIntPtr parses an optional integer form value.
func StringToIntPtr(s string) *int {
	if s == "" {
		return nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &i
}

// StringToFloatPtr parses an optional decimal form value.
func StringToFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// Truncate limits s to max bytes, cutting on a rune boundary.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	for len(string(runes)) > max {
		runes = runes[:len(runes)-1]
	}
	return string(runes)
}
