package parser

import (
	"regexp"
	"strconv"
)

var (
	// decimalPattern accepts plain decimal literals: optional sign, digits,
	// optional '.' fraction. Exponents and digit grouping are rejected.
	decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)
	// unsignedPattern is decimalPattern without the sign, for margins.
	unsignedPattern = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)
)

// parseNumber parses a coordinate literal.
func parseNumber(s string) (float64, error) {
	if !decimalPattern.MatchString(s) {
		return 0, syntaxErrorf("invalid number %q", s)
	}
	return toFloat(s)
}

// parseUnsigned parses a non-negative literal such as an error margin.
func parseUnsigned(s string) (float64, error) {
	if !unsignedPattern.MatchString(s) {
		return 0, syntaxErrorf("invalid non-negative number %q", s)
	}
	return toFloat(s)
}

// toFloat converts a literal already matched by a pattern. Literals beyond
// float64 range are rejected rather than turned into infinities.
func toFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, syntaxErrorf("number %q out of range", s)
	}
	return v, nil
}

// parsePair splits "a,b" on its single comma and parses both halves.
func parsePair(s string, parse func(string) (float64, error)) (float64, float64, error) {
	left, right, ok := cutSingle(s, ',')
	if !ok {
		return 0, 0, syntaxErrorf("expected exactly one comma in %q", s)
	}
	a, err := parse(left)
	if err != nil {
		return 0, 0, err
	}
	b, err := parse(right)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// cutSingle is strings.Cut that fails when sep occurs more than once.
func cutSingle(s string, sep byte) (before, after string, ok bool) {
	idx := -1
	for i := 0; i < len(s); i++ {
		if s[i] != sep {
			continue
		}
		if idx >= 0 {
			return "", "", false
		}
		idx = i
	}
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
