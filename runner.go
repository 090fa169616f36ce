package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// runDecode prompts once, reads one line, decodes it and reports the outcome.
// The returned bool is the decode outcome; the error covers I/O only.
func runDecode(converter GuidConverter, source LineSource, sink Sink, prompt string) (bool, error) {
	if err := sink.Prompt(prompt); err != nil {
		return false, fmt.Errorf("writing prompt: %w", err)
	}
	line, err := source.ReadLine()
	if err != nil {
		return false, fmt.Errorf("reading input: %w", err)
	}
	if line == nil {
		log.Debug().Msg("input stream ended before a line was read")
	}

	result := DecodeResult{Error: INVALID_MESSAGE}
	if line != nil {
		if id, ok := converter.TryConvert(*line); ok {
			result = DecodeResult{Ok: true, Identifier: id.String()}
		}
		log.Debug().Int("length", len(*line)).Bool("ok", result.Ok).Msg("decoded input")
	}

	if err := sink.Write(result); err != nil {
		return result.Ok, fmt.Errorf("writing result: %w", err)
	}
	return result.Ok, nil
}
