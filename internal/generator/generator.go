package generator

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

const (
	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 16
)

// ErrLengthOutOfRange is returned when a requested length falls outside
// [MinLength, MaxLength].
var ErrLengthOutOfRange = fmt.Errorf("password length must be between %d and %d", MinLength, MaxLength)

// Options configures a single generation.
type Options struct {
	Length int
	Flags
}

// DefaultOptions returns 16 characters with all classes enabled.
func DefaultOptions() Options {
	return Options{
		Length: DefaultLength,
		Flags:  AllFlags(),
	}
}

// CheckLength validates n against the selectable length range.
func CheckLength(n int) error {
	if n < MinLength || n > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// Sample draws n characters from alphabet independently and uniformly,
// with replacement. It returns "" for n <= 0. alphabet must not be empty.
func Sample(rng *rand.Rand, alphabet Alphabet, n int) string {
	if n <= 0 {
		return ""
	}

	result := make([]byte, n)
	for i := range result {
		result[i] = alphabet[rng.IntN(alphabet.Len())]
	}
	return string(result)
}

// Generate builds the alphabet for opts and samples opts.Length characters
// from it. The length range is not enforced here; callers facing user input
// use CheckLength.
func Generate(rng *rand.Rand, opts Options) (string, error) {
	alphabet, err := BuildAlphabet(opts.Flags)
	if err != nil {
		return "", err
	}
	return Sample(rng, alphabet, opts.Length), nil
}

// NewRand returns a PCG-backed generator. A zero seed picks a random one.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// IsUserError reports whether err stems from invalid generation input rather
// than an internal fault.
func IsUserError(err error) bool {
	return errors.Is(err, ErrEmptyAlphabet) || errors.Is(err, ErrLengthOutOfRange)
}
