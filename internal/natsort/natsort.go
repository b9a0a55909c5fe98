// Package natsort orders strings so that embedded numbers compare by value:
// "2.jpg" sorts before "10.jpg".
package natsort

import "strings"

type chunk struct {
	text    string
	numeric bool
}

// split breaks s into alternating runs of ASCII digits and non-digits.
func split(s string) []chunk {
	var out []chunk
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[start]) {
			out = append(out, chunk{text: s[start:i], numeric: isDigit(s[start])})
			start = i
		}
	}
	return out
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// compareNumeric compares two digit runs by value without parsing, so runs
// longer than any integer type still order correctly.
func compareNumeric(a, b string) int {
	ta := strings.TrimLeft(a, "0")
	tb := strings.TrimLeft(b, "0")
	if len(ta) != len(tb) {
		if len(ta) < len(tb) {
			return -1
		}
		return 1
	}
	if c := strings.Compare(ta, tb); c != 0 {
		return c
	}
	// Equal value: fewer leading zeros first.
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Compare returns -1, 0 or +1. Digit runs compare numerically, other runs
// compare case-insensitively. Strings that tie under those rules fall back to
// byte order so the result is a total order.
func Compare(a, b string) int {
	ca, cb := split(a), split(b)
	for i := 0; i < len(ca) && i < len(cb); i++ {
		x, y := ca[i], cb[i]
		var c int
		if x.numeric && y.numeric {
			c = compareNumeric(x.text, y.text)
		} else {
			c = strings.Compare(strings.ToLower(x.text), strings.ToLower(y.text))
		}
		if c != 0 {
			return c
		}
	}
	switch {
	case len(ca) < len(cb):
		return -1
	case len(ca) > len(cb):
		return 1
	}
	return strings.Compare(a, b)
}

// Less reports whether a sorts before b.
func Less(a, b string) bool { return Compare(a, b) < 0 }
