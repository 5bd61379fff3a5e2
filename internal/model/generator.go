package model

import "github.com/passgen/passgen-go/internal/generator"

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length    int   `json:"length" validate:"omitempty,min=8,max=32"`
	Uppercase *bool `json:"uppercase"`
	Lowercase *bool `json:"lowercase"`
	Numbers   *bool `json:"numbers"`
	Symbols   *bool `json:"symbols"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string             `json:"password"`
	Length   int                `json:"length"`
	Strength generator.Strength `json:"strength"`
}

// StrengthRequest asks for the rating of an existing password under the
// given class selection. Missing flags default to true. Password is capped
// at 1024 characters, counted in runes.
type StrengthRequest struct {
	Password  string `json:"password" validate:"max=1024"`
	Uppercase *bool  `json:"uppercase"`
	Lowercase *bool  `json:"lowercase"`
	Numbers   *bool  `json:"numbers"`
	Symbols   *bool  `json:"symbols"`
}

// StrengthResponse is the rating of a password. All fields are empty when
// the password was empty.
type StrengthResponse struct {
	generator.Strength
}
