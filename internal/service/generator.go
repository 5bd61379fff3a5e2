package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/passgen/passgen-go/internal/generator"
	"github.com/passgen/passgen-go/internal/model"
)

// ErrPasswordTooLong is returned when a password submitted for rating exceeds
// 1024 characters (runes, not bytes).
var ErrPasswordTooLong = errors.New("password must be at most 1024 characters")

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	mu            sync.Mutex
	rng           *rand.Rand
	defaultLength int
	validate      *validator.Validate
}

// NewGeneratorService creates a new GeneratorService drawing from rng.
// defaultLength is used when a request omits the length.
func NewGeneratorService(rng *rand.Rand, defaultLength int) *GeneratorService {
	return &GeneratorService{
		rng:           rng,
		defaultLength: defaultLength,
		validate:      validator.New(),
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.GenerateResponse{}, translate(err, generator.ErrLengthOutOfRange)
	}

	opts := generator.Options{
		Length: req.Length,
		Flags:  flagsOrDefault(req.Uppercase, req.Lowercase, req.Numbers, req.Symbols),
	}
	if opts.Length == 0 {
		opts.Length = s.defaultLength
	}

	s.mu.Lock()
	password, err := generator.Generate(s.rng, opts)
	s.mu.Unlock()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: generator.Score(password, opts.Flags),
	}, nil
}

// Score rates a password against the given class selection.
func (s *GeneratorService) Score(req model.StrengthRequest) (model.StrengthResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return model.StrengthResponse{}, translate(err, ErrPasswordTooLong)
	}

	flags := flagsOrDefault(req.Uppercase, req.Lowercase, req.Numbers, req.Symbols)
	return model.StrengthResponse{Strength: generator.Score(req.Password, flags)}, nil
}

// translate maps a struct validation failure onto the domain sentinel so
// callers can keep matching with errors.Is.
func translate(err error, sentinel error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return fmt.Errorf("%w: field %s failed %s", sentinel, verrs[0].Field(), verrs[0].Tag())
	}
	return err
}

func flagsOrDefault(upper, lower, numbers, symbols *bool) generator.Flags {
	return generator.Flags{
		Uppercase: boolOrDefault(upper, true),
		Lowercase: boolOrDefault(lower, true),
		Numbers:   boolOrDefault(numbers, true),
		Symbols:   boolOrDefault(symbols, true),
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
