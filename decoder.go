package pcmwav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

var errNilReader = errors.New("can't decode from a nil reader")

// Decode reads a complete RIFF/WAVE stream and returns its PCM samples.
//
// Chunks other than fmt and data may appear anywhere and are skipped. The
// declared length of the data chunk is trusted over the outer RIFF size,
// which some writers get wrong. Decode stops reading as soon as both chunks
// have been seen, and returns either a complete Data or an error, never both.
func Decode(r io.Reader) (*Data, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, errNilReader)
	}

	cr := newChunkReader(r)
	if err := cr.readHeader(); err != nil {
		return nil, err
	}

	var (
		format  *Format
		payload []byte
		hasData bool
	)

	for format == nil || !hasData {
		chunk, err := cr.next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch {
		case chunk.ID == riff.FmtID && format == nil:
			format, err = readFormat(cr, chunk)
		case chunk.ID == riff.DataFormatID && !hasData:
			payload, err = cr.readPayload(chunk)
			hasData = err == nil
		default:
			err = cr.skip(chunk)
		}

		if err != nil {
			return nil, err
		}

		if format != nil && hasData {
			break
		}

		if err := cr.skipPad(chunk); err != nil {
			return nil, err
		}
	}

	if format == nil {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrTruncatedFile)
	}

	if !hasData {
		return nil, fmt.Errorf("%w: no data chunk", ErrTruncatedFile)
	}

	samples, err := decodeSamples(payload, format.BitDepth)
	if err != nil {
		return nil, err
	}

	return &Data{Format: *format, Samples: samples}, nil
}

// DecodeBytes decodes an in-memory wav file.
func DecodeBytes(b []byte) (*Data, error) {
	return Decode(bytes.NewReader(b))
}

func readFormat(cr *chunkReader, chunk *riff.Chunk) (*Format, error) {
	payload, err := cr.readPayload(chunk)
	if err != nil {
		return nil, err
	}

	fmtChunk, err := parseFmtChunk(payload)
	if err != nil {
		return nil, err
	}

	format, err := fmtChunk.pcmFormat()
	if err != nil {
		return nil, err
	}

	return &format, nil
}
