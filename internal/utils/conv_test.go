package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringToUintPtr(t *testing.T) {
	assert.Nil(t, StringToUintPtr(""))
	assert.Nil(t, StringToUintPtr("abc"))
	assert.Nil(t, StringToUintPtr("12x"))
	assert.Nil(t, StringToUintPtr("-4"))
	assert.Nil(t, StringToUintPtr("0"))

	v := StringToUintPtr("42")
	assert.NotNil(t, v)
	assert.Equal(t, uint(42), *v)
}

func TestStringToIntPtr(t *testing.T) {
	assert.Nil(t, StringToIntPtr(""))
	assert.Nil(t, StringToIntPtr("oops"))

	v := StringToIntPtr("-3")
	assert.NotNil(t, v)
	assert.Equal(t, -3, *v)
}

func TestStringToFloatPtr(t *testing.T) {
	assert.Nil(t, StringToFloatPtr(""))
	assert.Nil(t, StringToFloatPtr("2,5"))

	v := StringToFloatPtr("2.5")
	assert.NotNil(t, v)
	assert.Equal(t, 2.5, *v)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "abc", Truncate("abc", 3))
	assert.Equal(t, "ab", Truncate("abcd", 2))

	// Multibyte input is cut on a rune boundary, never mid-sequence.
	out := Truncate(strings.Repeat("é", 10), 5)
	assert.Equal(t, "éé", out)
	assert.LessOrEqual(t, len(out), 5)
}
