package generator

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestSample(t *testing.T) {
	alphabet := Alphabet(uppercaseChars + numberChars)

	for _, n := range []int{0, 1, 2, 8, 16, 32, 100} {
		got := Sample(newTestRand(), alphabet, n)
		if len(got) != n {
			t.Errorf("Sample(n=%d) length = %d", n, len(got))
		}
		for _, r := range got {
			if !alphabet.Contains(r) {
				t.Errorf("Sample(n=%d) produced %q outside the alphabet", n, r)
			}
		}
	}
}

func TestSampleNegativeLength(t *testing.T) {
	if got := Sample(newTestRand(), "abc", -3); got != "" {
		t.Errorf("Sample(n=-3) = %q, want empty string", got)
	}
}

func TestSampleSingleCharacterAlphabet(t *testing.T) {
	got := Sample(newTestRand(), "x", 12)
	if got != strings.Repeat("x", 12) {
		t.Errorf("Sample() = %q, want 12 x's", got)
	}
}

func TestSampleDeterministicForSeed(t *testing.T) {
	alphabet, _ := BuildAlphabet(AllFlags())

	a := Sample(rand.New(rand.NewPCG(42, 42)), alphabet, 32)
	b := Sample(rand.New(rand.NewPCG(42, 42)), alphabet, 32)
	if a != b {
		t.Errorf("same seed produced %q and %q", a, b)
	}
}

func TestSampleReachesWholeAlphabet(t *testing.T) {
	alphabet := Alphabet(numberChars)
	got := Sample(newTestRand(), alphabet, 2000)

	for _, r := range alphabet {
		if !strings.ContainsRune(got, r) {
			t.Errorf("2000 draws never produced %q", r)
		}
	}
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		charset string
		wantErr error
	}{
		{
			name:    "default options",
			opts:    DefaultOptions(),
			charset: uppercaseChars + lowercaseChars + numberChars + symbolChars,
		},
		{
			name:    "uppercase only",
			opts:    Options{Length: 8, Flags: Flags{Uppercase: true}},
			charset: uppercaseChars,
		},
		{
			name:    "lowercase only",
			opts:    Options{Length: 32, Flags: Flags{Lowercase: true}},
			charset: lowercaseChars,
		},
		{
			name:    "numbers only",
			opts:    Options{Length: 32, Flags: Flags{Numbers: true}},
			charset: numberChars,
		},
		{
			name:    "symbols only",
			opts:    Options{Length: 32, Flags: Flags{Symbols: true}},
			charset: symbolChars,
		},
		{
			name:    "length one",
			opts:    Options{Length: 1, Flags: Flags{Lowercase: true}},
			charset: lowercaseChars,
		},
		{
			name:    "no character types selected",
			opts:    Options{Length: 16},
			wantErr: ErrEmptyAlphabet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(newTestRand(), tt.opts)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
				}
				if result != "" {
					t.Error("Generate() should return empty string on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if len(result) != tt.opts.Length {
				t.Errorf("Generate() length = %d, want %d", len(result), tt.opts.Length)
			}
			for _, ch := range result {
				if !strings.ContainsRune(tt.charset, ch) {
					t.Errorf("password contains unexpected character %q (not in %q)", string(ch), tt.charset)
				}
			}
		})
	}
}

func TestCheckLength(t *testing.T) {
	tests := []struct {
		n       int
		wantErr bool
	}{
		{0, true},
		{MinLength - 1, true},
		{MinLength, false},
		{DefaultLength, false},
		{MaxLength, false},
		{MaxLength + 1, true},
	}

	for _, tt := range tests {
		err := CheckLength(tt.n)
		if (err != nil) != tt.wantErr {
			t.Errorf("CheckLength(%d) error = %v, wantErr %v", tt.n, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrLengthOutOfRange) {
			t.Errorf("CheckLength(%d) error = %v, want ErrLengthOutOfRange", tt.n, err)
		}
	}
}

func TestIsUserError(t *testing.T) {
	if !IsUserError(ErrEmptyAlphabet) || !IsUserError(ErrLengthOutOfRange) {
		t.Error("sentinel errors should be user errors")
	}
	if IsUserError(errors.New("boom")) {
		t.Error("arbitrary error should not be a user error")
	}
}
