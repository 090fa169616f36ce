package main

import (
	"github.com/google/uuid"
)

// GuidConverter turns a URL-safe Base64 string into an identifier.
type GuidConverter interface {
	TryConvert(input string) (uuid.UUID, bool)
}

// LineSource supplies one line of input. A nil line means the stream ended
// before anything was read.
type LineSource interface {
	ReadLine() (*string, error)
}

type DecodeResult struct {
	Ok         bool   `json:"ok"`
	Identifier string `json:"identifier,omitempty"`
	Error      string `json:"error,omitempty"`
}

// Sink renders a decode result for the user.
type Sink interface {
	Prompt(text string) error
	Write(result DecodeResult) error
}
