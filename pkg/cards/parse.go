package cards

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// ParseInt parses the leading integer of s, ignoring leading whitespace and any
// trailing garbage ("3 tiers" is 3, "2.9" is 2). It returns 0 when s does not
// start with a number. Values out of range clamp to the largest or smallest int.
func ParseInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := signEnd(s)
	digits := end
	for digits < len(s) && isDigit(s[digits]) {
		digits++
	}
	if digits == end {
		return 0
	}
	n, err := strconv.Atoi(s[:digits])
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return n
}

// ParseFloat parses the leading decimal number of s ("4.5 stars" is 4.5).
// It returns 0 when s does not start with a number and ±Inf when the value
// overflows a float64.
func ParseFloat(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := signEnd(s)
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	mantissa := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		mantissa += j - i - 1
		if j-i-1 > 0 || i > intStart {
			i = j
		}
	}
	if mantissa == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := signEnd(s[i+1:]) + i + 1
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	f, err := strconv.ParseFloat(s[:i], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0
	}
	return f
}

func signEnd(s string) int {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
