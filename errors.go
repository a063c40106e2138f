package pcmwav

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrMalformedHeader is returned when the RIFF or WAVE tag is missing or
	// the RIFF size field can't describe a WAVE form.
	ErrMalformedHeader = errors.New("malformed RIFF/WAVE header")
	// ErrUnsupportedFormat is returned for non-PCM format tags, ambiguous
	// extensible sub-formats and bit depths outside 8/16/24/32.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrTruncatedFile is returned when the stream ends before the fmt and
	// data chunks are found, or a chunk claims more bytes than remain.
	ErrTruncatedFile = errors.New("truncated wav file")
	// ErrCorruptData is returned when the format fields contradict each other
	// or the data payload doesn't hold a whole number of samples.
	ErrCorruptData = errors.New("corrupt wav data")
	// ErrInvalidSampleCount is returned by the encoder when the samples don't
	// form complete frames or don't fit in a RIFF container.
	ErrInvalidSampleCount = errors.New("invalid sample count")
	// ErrInvalidFormat is returned by the encoder for a zero sample rate or
	// channel count.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrSampleOutOfRange is returned by the encoder when a sample can't be
	// represented at the configured bit depth.
	ErrSampleOutOfRange = errors.New("sample out of range")
	// ErrIO wraps failures of the underlying reader or writer.
	ErrIO = errors.New("wav i/o error")
)

// readErr classifies a failed read. Running out of bytes means the container
// is truncated, anything else is a failure of the source itself.
func readErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", ErrTruncatedFile, what)
	}

	return fmt.Errorf("%w: failed to read %s: %w", ErrIO, what, err)
}

func writeErr(what string, err error) error {
	return fmt.Errorf("%w: failed to write %s: %w", ErrIO, what, err)
}

func unsupportedFormatTagError(formatTag uint16) error {
	if name, ok := formatTagNames[formatTag]; ok {
		return fmt.Errorf("%w: %s (format tag %d)", ErrUnsupportedFormat, name, formatTag)
	}

	return fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, formatTag)
}
