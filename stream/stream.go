// Package stream formats delimited records read from an io.Reader.
//
// Every input line is split into fields which become the arguments of a
// composite template. The formatted lines are produced lazily through an
// io.Reader, so arbitrarily large inputs are processed with bounded memory.
//
// Example - render a CSV file as aligned columns:
//
//	file, _ := os.Open("prices.csv")
//	defer file.Close()
//
//	tmpl := composite.Compile("{0,-12}|{1,10:0.00}")
//	_, err := stream.FormatReader(file, os.Stdout, tmpl, stream.Config{
//	    Separator: ",",
//	    TrimSpace: true,
//	})
package stream

import (
	"context"
	"errors"
	"fmt"
)

// DefaultBufferSize is the default maximum line length (64KB).
const DefaultBufferSize = 64 * 1024

// Config configures record formatting.
type Config struct {
	// BufferSize is the maximum length of one input line.
	// Default: 64KB (65536).
	BufferSize int

	// Separator splits a line into fields.
	// Default: "" (split on runs of white space).
	Separator string

	// TrimSpace trims white space around every field.
	TrimSpace bool

	// SkipEmpty drops blank lines instead of formatting them.
	SkipEmpty bool

	// Context for cancellation support.
	// Default: nil (no cancellation).
	Context context.Context
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize: DefaultBufferSize,
	}
}

// ErrBufferTooSmall is returned when Config.BufferSize is negative.
type ErrBufferTooSmall struct {
	Requested int
}

func (e ErrBufferTooSmall) Error() string {
	return fmt.Sprintf("stream: buffer size %d too small", e.Requested)
}

// Validate validates the Config and returns an error if invalid.
func (c Config) Validate() error {
	if c.BufferSize < 0 {
		return ErrBufferTooSmall{Requested: c.BufferSize}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c
	if result.BufferSize == 0 {
		result.BufferSize = DefaultBufferSize
	}
	return result
}

// RecordError reports the input line that could not be formatted.
type RecordError struct {
	Line int // 1-based input line number
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("stream: line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// IsRecordError reports whether err is, or wraps, a *RecordError.
func IsRecordError(err error) bool {
	var re *RecordError
	return errors.As(err, &re)
}
