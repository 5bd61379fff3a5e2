// Package form holds the state behind a password generator form: the
// selected length and classes, and the last generated password.
//
// A Form has a single owner and is not safe for concurrent use. Strength is
// derived on each call; nothing is cached or observed.
package form

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/passgen/passgen-go/internal/generator"
)

var (
	// ErrNoPassword is returned by Copy before anything was generated.
	ErrNoPassword = errors.New("generate a password first")

	// ErrClipboardWrite wraps a failed clipboard write.
	ErrClipboardWrite = errors.New("could not copy the password")
)

// Clipboard receives the password on copy.
type Clipboard interface {
	WriteText(text string) error
}

// Form is the state of one generator form.
type Form struct {
	rng      *rand.Rand
	opts     generator.Options
	password string
}

// New returns a form with the given initial options and no password.
func New(rng *rand.Rand, opts generator.Options) (*Form, error) {
	if err := generator.CheckLength(opts.Length); err != nil {
		return nil, err
	}
	return &Form{rng: rng, opts: opts}, nil
}

// Options returns the current selection.
func (f *Form) Options() generator.Options {
	return f.opts
}

// SetLength changes the length used by the next Generate.
func (f *Form) SetLength(n int) error {
	if err := generator.CheckLength(n); err != nil {
		return err
	}
	f.opts.Length = n
	return nil
}

// SetFlags changes the classes used by the next Generate and by Strength.
func (f *Form) SetFlags(flags generator.Flags) {
	f.opts.Flags = flags
}

// Generate replaces the password with a fresh one. On error the previous
// password is kept.
func (f *Form) Generate() (string, error) {
	password, err := generator.Generate(f.rng, f.opts)
	if err != nil {
		return "", err
	}
	f.password = password
	return password, nil
}

// Password returns the current password, or "" if none was generated yet.
func (f *Form) Password() string {
	return f.password
}

// Strength rates the current password against the current flags.
func (f *Form) Strength() generator.Strength {
	return generator.Score(f.password, f.opts.Flags)
}

// Copy hands the current password to cb. It is a single attempt.
func (f *Form) Copy(cb Clipboard) error {
	if f.password == "" {
		return ErrNoPassword
	}
	if err := cb.WriteText(f.password); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardWrite, err)
	}
	return nil
}
