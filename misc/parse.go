package misc

import (
	"strconv"
	"strings"
)

// ParsePair parses s of the form <left><separator><right>, such as "400x600"
// or "-1.20,0.35", converting both halves with parse. ok is false unless both
// halves convert.
func ParsePair[T any](s string, separator string, parse func(string) (T, error)) (left T, right T, ok bool) {
	l, r, found := strings.Cut(s, separator)
	if !found {
		return left, right, false
	}
	left, err := parse(l)
	if err != nil {
		return left, right, false
	}
	right, err = parse(r)
	if err != nil {
		return left, right, false
	}
	return left, right, true
}

func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// ParseBounds parses image dimensions such as "1000x750".
func ParseBounds(s string) (width int, height int, ok bool) {
	return ParsePair(s, "x", ParseInt)
}

// ParseComplex parses a point such as "-1.20,0.35" into a complex number.
func ParseComplex(s string) (complex128, bool) {
	re, im, ok := ParsePair(s, ",", ParseFloat)
	if !ok {
		return 0, false
	}
	return complex(re, im), true
}
