package pcmwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// chunkReader walks the chunk list of a RIFF/WAVE stream in a single forward
// pass. It never seeks.
type chunkReader struct {
	r      io.Reader
	parser *riff.Parser
}

func newChunkReader(r io.Reader) *chunkReader {
	return &chunkReader{
		r:      r,
		parser: riff.New(r),
	}
}

// readHeader consumes and validates the 12 byte RIFF/WAVE envelope.
func (c *chunkReader) readHeader() error {
	var hdr [riffHeaderSize]byte

	n, err := io.ReadFull(c.r, hdr[:])
	if n >= 4 && [4]byte(hdr[0:4]) != riff.RiffID {
		return fmt.Errorf("%w: %q is not a RIFF tag", ErrMalformedHeader, hdr[0:4])
	}

	if err != nil {
		return readErr("RIFF header", err)
	}

	if [4]byte(hdr[8:12]) != riff.WavFormatID {
		return fmt.Errorf("%w: %q is not a WAVE form", ErrMalformedHeader, hdr[8:12])
	}

	size := binary.LittleEndian.Uint32(hdr[4:8])
	if size < 4 {
		return fmt.Errorf("%w: RIFF size %d can't hold the WAVE form type", ErrMalformedHeader, size)
	}

	c.parser.ID = riff.RiffID
	c.parser.Size = size
	c.parser.Format = riff.WavFormatID

	return nil
}

// riffSize returns the outer size field as recorded in the envelope.
func (c *chunkReader) riffSize() uint32 {
	return c.parser.Size
}

// next reads the following chunk header. io.EOF is returned untouched when the
// stream ends exactly on a chunk boundary, a header cut short is truncation.
// riff.Parser.IDnSize isn't used since it drops errors reading the size.
func (c *chunkReader) next() (*riff.Chunk, error) {
	var hdr [chunkHeaderSize]byte

	n, err := io.ReadFull(c.r, hdr[:])
	if n == 0 && errors.Is(err, io.EOF) {
		return nil, io.EOF
	}

	if err != nil {
		return nil, readErr("chunk header", err)
	}

	id := [4]byte(hdr[0:4])
	size := binary.LittleEndian.Uint32(hdr[4:8])

	return &riff.Chunk{
		ID:   id,
		Size: int(size),
		R:    io.LimitReader(c.r, int64(size)),
	}, nil
}

// readPayload reads the declared payload of the chunk. The buffer grows with
// the data actually received so an oversized length field fails with
// ErrTruncatedFile instead of a huge allocation.
func (c *chunkReader) readPayload(ch *riff.Chunk) ([]byte, error) {
	var buf bytes.Buffer

	n, err := io.CopyN(&buf, ch.R, int64(ch.Size-ch.Pos))
	ch.Pos += int(n)

	if err != nil {
		return nil, chunkBodyErr(ch, n, err)
	}

	return buf.Bytes(), nil
}

// skip discards the remaining payload of the chunk without interpreting it.
func (c *chunkReader) skip(ch *riff.Chunk) error {
	n, err := io.CopyN(io.Discard, ch.R, int64(ch.Size-ch.Pos))
	ch.Pos += int(n)

	if err != nil {
		return chunkBodyErr(ch, n, err)
	}

	return nil
}

// skipPad consumes the word alignment byte that follows odd sized chunks.
// A missing pad byte at the very end of the stream is tolerated, the next
// header read reports the end of the stream.
func (c *chunkReader) skipPad(ch *riff.Chunk) error {
	if ch.Size%2 == 0 {
		return nil
	}

	_, err := io.CopyN(io.Discard, c.r, 1)
	if err != nil && !errors.Is(err, io.EOF) {
		return readErr("chunk padding", err)
	}

	return nil
}

func chunkBodyErr(ch *riff.Chunk, got int64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %q chunk declares %d bytes but only %d remain", ErrTruncatedFile, ch.ID[:], ch.Size, got)
	}

	return fmt.Errorf("%w: failed to read %q chunk: %w", ErrIO, ch.ID[:], err)
}
