package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "৳ 0"},
		{500, "৳ 500"},
		{1500, "৳ 1,500"},
		{1234567, "৳ 1,234,567"},
		{1500.5, "৳ 1,500.50"},
		{99.99, "৳ 99.99"},
		{-250, "-৳ 250"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAmount(tt.in), "FormatAmount(%v)", tt.in)
	}
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+ ৳ 100", FormatSigned(100))
	assert.Equal(t, "- ৳ 100", FormatSigned(-100))
}

func TestFormatMonth(t *testing.T) {
	assert.Equal(t, "March 2024", FormatMonth("2024-03"))
	assert.Equal(t, "bogus", FormatMonth("bogus"))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "9 Mar 2024", FormatDate("2024-03-09"))
	assert.Equal(t, "??", FormatDate("??"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "longe…", Truncate("longer text", 6))
	assert.Equal(t, "বাজার", Truncate("বাজার", 5), "rune-aware, not byte-aware")
}
