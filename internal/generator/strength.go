package generator

import (
	"strings"
	"unicode/utf8"
)

// Label is the ordinal strength bucket.
type Label string

const (
	Weak   Label = "Weak"
	Medium Label = "Medium"
	Strong Label = "Strong"
)

// Strength is a heuristic rating for display. The zero value means there is
// no password to rate yet.
type Strength struct {
	Label   Label  `json:"label"`
	Percent int    `json:"percent"`
	Color   string `json:"color"`
}

// IsZero reports whether s is the "no password yet" rating.
func (s Strength) IsZero() bool {
	return s.Label == ""
}

var (
	weakStrength   = Strength{Label: Weak, Percent: 33, Color: "destructive"}
	mediumStrength = Strength{Label: Medium, Percent: 66, Color: "warning"}
	strongStrength = Strength{Label: Strong, Percent: 100, Color: "success"}
)

// Score rates password against the flags it was (or will be) generated with.
// One point each for length >= 12, length >= 16, and for every selected class
// that actually occurs in the password. 0-2 is Weak, 3-4 Medium, 5-6 Strong.
//
// A selected class that happens not to occur simply earns no point; the
// score is a heuristic, not a coverage check.
func Score(password string, flags Flags) Strength {
	if password == "" {
		return Strength{}
	}

	n := utf8.RuneCountInString(password)
	points := 0
	if n >= 12 {
		points++
	}
	if n >= 16 {
		points++
	}
	if flags.Uppercase && strings.ContainsAny(password, uppercaseChars) {
		points++
	}
	if flags.Lowercase && strings.ContainsAny(password, lowercaseChars) {
		points++
	}
	if flags.Numbers && strings.ContainsAny(password, numberChars) {
		points++
	}
	if flags.Symbols && strings.ContainsAny(password, symbolChars) {
		points++
	}

	switch {
	case points <= 2:
		return weakStrength
	case points <= 4:
		return mediumStrength
	default:
		return strongStrength
	}
}
