package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii string", "hello", 5},
		{"peso signs", "₱₱", 2},
		{"unicode chars", "日本語", 6},
		{"mixed", "abc日本", 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "test", 0, "test"},
		{"negative width", "test", -1, "test"},
		{"exact width", "test", 4, "test"},
		{"longer than width", "testing", 4, "testing"},
		{"needs padding", "test", 8, "test    "},
		{"wide chars", "寿司", 6, "寿司  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToWidth(tt.val, tt.width))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Tomas Morato", Truncate("Tomas Morato", 20))
	assert.Equal(t, "Tomas…", Truncate("Tomas Morato", 6))
	assert.Equal(t, "abc", Truncate("abc", 0))
}

func TestTrimAndSplit(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"1,2,3", []string{"1", "2", "3"}},
		{"Delivery, Takeout", []string{"Delivery", "Takeout"}},
		{"all", []string{}},
		{"", []string{}},
		{" , wheelchair ,", []string{"wheelchair"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TrimAndSplit(tt.input, ","), tt.input)
	}
}

func TestFindIgnoreCase(t *testing.T) {
	slice := []string{"Delivery", "Dine-in"}
	got, ok := FindIgnoreCase(slice, "dine-IN")
	assert.True(t, ok)
	assert.Equal(t, "Dine-in", got)

	_, ok = FindIgnoreCase(slice, "Takeout")
	assert.False(t, ok)
	_, ok = FindIgnoreCase(nil, "a")
	assert.False(t, ok)
}

func TestAlignRight(t *testing.T) {
	assert.Equal(t, "  4.5", AlignRight("4.5", 5))
	assert.Equal(t, " ₱₱", AlignRight("₱₱", 3))
	assert.Equal(t, "300", AlignRight("300", 2))
}
