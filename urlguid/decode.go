// Package urlguid decodes URL-safe Base64 (RFC 4648 section 5) renderings of
// 16-byte identifiers into uuid.UUID values without allocating.
package urlguid

import (
	"encoding/base64"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// Base64 of 16 bytes is 24 chars including up to two '=' padding chars.
	maxEncodedLength = 24
	minEncodedLength = 2
	guidByteLength   = 16
)

var (
	ErrEmpty       = errors.New("urlguid: input is empty or blank")
	ErrLength      = errors.New("urlguid: input length out of range")
	ErrWhitespace  = errors.New("urlguid: input contains interior whitespace")
	ErrResidue     = errors.New("urlguid: input length leaves residue 1 mod 4")
	ErrAlphabet    = errors.New("urlguid: input is not valid base64")
	ErrPayloadSize = errors.New("urlguid: input does not decode to 16 bytes")
)

// Converter is a zero-size handle on TryConvert for callers that want to hold
// the capability as a value.
type Converter struct{}

func (Converter) TryConvert(input string) (uuid.UUID, bool) {
	return TryConvert(input)
}

// TryConvert parses a URL-safe Base64 identifier such as
// "A3qfTzF6Q0u9p0YV4f0a9w". Padding is optional and surrounding whitespace is
// ignored. On failure it returns uuid.Nil and false.
func TryConvert(input string) (uuid.UUID, bool) {
	id, err := Decode(input)
	return id, err == nil
}

// TryConvertOptional is TryConvert for a value that may be absent, like a line
// read from a stream that has already ended.
func TryConvertOptional(input *string) (uuid.UUID, bool) {
	if input == nil {
		return uuid.Nil, false
	}
	return TryConvert(*input)
}

// Decode is TryConvert reporting which check rejected the input.
func Decode(input string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return uuid.Nil, ErrEmpty
	}
	if len(trimmed) < minEncodedLength || len(trimmed) > maxEncodedLength {
		return uuid.Nil, ErrLength
	}

	var chars [maxEncodedLength]byte
	written, err := normalize(trimmed, chars[:])
	if err != nil {
		return uuid.Nil, err
	}
	written, err = pad(chars[:], written)
	if err != nil {
		return uuid.Nil, err
	}

	// Sized to DecodedLen(24) so the decoder never runs short of room.
	var decoded [(maxEncodedLength / 4) * 3]byte
	n, err := base64.StdEncoding.Decode(decoded[:], chars[:written])
	if err != nil {
		return uuid.Nil, ErrAlphabet
	}
	if n != guidByteLength {
		return uuid.Nil, ErrPayloadSize
	}
	return uuid.UUID(decoded[:guidByteLength]), nil
}

// normalize copies src into dst translating the URL-safe alphabet to the
// standard one and returns the number of bytes written.
func normalize(src string, dst []byte) (int, error) {
	if len(src) > len(dst) {
		return 0, ErrLength
	}
	written := 0
	for _, r := range src {
		switch r {
		case '-':
			r = '+'
		case '_':
			r = '/'
		}
		if unicode.IsSpace(r) {
			return 0, ErrWhitespace
		}
		if r >= utf8.RuneSelf {
			return 0, ErrAlphabet
		}
		dst[written] = byte(r)
		written++
	}
	return written, nil
}

// pad appends '=' so that length becomes a multiple of 4.
func pad(buf []byte, length int) (int, error) {
	mod := length % 4
	if mod == 1 {
		return 0, ErrResidue
	}
	if mod == 0 {
		return length, nil
	}
	padding := 4 - mod
	if length+padding > len(buf) {
		return 0, ErrLength
	}
	for i := 0; i < padding; i++ {
		buf[length+i] = '='
	}
	return length + padding, nil
}
