package generator

import (
	"errors"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// ErrEmptyAlphabet is returned when no character class is selected.
var ErrEmptyAlphabet = errors.New("select at least one option")

// Flags selects which character classes make up an alphabet.
type Flags struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// AllFlags returns flags with every character class enabled.
func AllFlags() Flags {
	return Flags{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true}
}

// Any reports whether at least one class is selected.
func (f Flags) Any() bool {
	return f.Uppercase || f.Lowercase || f.Numbers || f.Symbols
}

// Alphabet is the ordered set of characters eligible for sampling.
type Alphabet string

// Len returns the number of characters in the alphabet.
func (a Alphabet) Len() int {
	return len(a)
}

// Contains reports whether r is part of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	return strings.ContainsRune(string(a), r)
}

// BuildAlphabet concatenates the selected classes in fixed order:
// uppercase, lowercase, digits, symbols.
func BuildAlphabet(flags Flags) (Alphabet, error) {
	var b strings.Builder

	if flags.Uppercase {
		b.WriteString(uppercaseChars)
	}
	if flags.Lowercase {
		b.WriteString(lowercaseChars)
	}
	if flags.Numbers {
		b.WriteString(numberChars)
	}
	if flags.Symbols {
		b.WriteString(symbolChars)
	}

	if b.Len() == 0 {
		return "", ErrEmptyAlphabet
	}
	return Alphabet(b.String()), nil
}
