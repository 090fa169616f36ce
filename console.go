package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

const INVALID_MESSAGE = "Invalid Base64 URL string for Guid."

type ReaderSource struct {
	reader *bufio.Reader
}

func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{bufio.NewReader(r)}
}

// ReadLine returns the next line with its terminator still attached; the
// decoder trims surrounding whitespace anyway.
func (source *ReaderSource) ReadLine() (*string, error) {
	line, err := source.reader.ReadString('\n')
	if errors.Is(err, io.EOF) {
		if line == "" {
			return nil, nil
		}
		return &line, nil
	}
	if err != nil {
		return nil, err
	}
	return &line, nil
}

// ArgSource hands out a value given on the command line, once.
type ArgSource struct {
	value    string
	consumed bool
}

func (source *ArgSource) ReadLine() (*string, error) {
	if source.consumed {
		return nil, nil
	}
	source.consumed = true
	return &source.value, nil
}

type TextSink struct {
	out io.Writer
}

func (sink *TextSink) Prompt(text string) error {
	_, err := io.WriteString(sink.out, text)
	return err
}

func (sink *TextSink) Write(result DecodeResult) error {
	var err error
	if result.Ok {
		_, err = fmt.Fprintf(sink.out, "Parsed Guid: %s\n", result.Identifier)
	} else {
		_, err = fmt.Fprintln(sink.out, result.Error)
	}
	return err
}

type JSONSink struct {
	encoder *json.Encoder
}

func NewJSONSink(out io.Writer) *JSONSink {
	return &JSONSink{json.NewEncoder(out)}
}

// Prompt is a no-op so stdout stays a single JSON document.
func (sink *JSONSink) Prompt(text string) error {
	return nil
}

func (sink *JSONSink) Write(result DecodeResult) error {
	return sink.encoder.Encode(result)
}

func NewSink(format string, out io.Writer) Sink {
	if format == OUTPUT_JSON {
		return NewJSONSink(out)
	}
	return &TextSink{out}
}
