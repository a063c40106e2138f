package pcmwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/riff"
)

var (
	errNilWriter = errors.New("can't write to a nil writer")
	errNilBuffer = errors.New("can't encode a nil buffer")
)

// Encode writes samples as a canonical PCM wav stream: the RIFF envelope, a
// 16 byte fmt chunk and the data chunk, padded to an even length. The whole
// file is assembled in memory and handed to w in a single Write. If w has a
// Flush method it is flushed afterwards, regular files are synced.
//
// The output is a pure function of the arguments.
func Encode(w io.Writer, samples []int, format Format) error {
	if w == nil {
		return fmt.Errorf("%w: %w", ErrIO, errNilWriter)
	}

	b, err := EncodeBytes(samples, format)
	if err != nil {
		return err
	}

	n, err := w.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}

	if err != nil {
		return writeErr("wav stream", err)
	}

	return flush(w)
}

// EncodeBytes returns the encoded wav file.
func EncodeBytes(samples []int, format Format) ([]byte, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	if len(samples)%int(format.NumChans) != 0 {
		return nil, fmt.Errorf("%w: %d samples don't split into %d-channel frames", ErrInvalidSampleCount, len(samples), format.NumChans)
	}

	dataSize := uint64(len(samples)) * uint64(format.BytesPerSample())
	riffSize := 4 + chunkHeaderSize + pcmFmtChunkSize + chunkHeaderSize + dataSize + dataSize%2

	if riffSize > maxRIFFPayload {
		return nil, fmt.Errorf("%w: %d data bytes exceed the RIFF size limit", ErrInvalidSampleCount, dataSize)
	}

	e := &encoder{buf: bytes.NewBuffer(make([]byte, 0, chunkHeaderSize+riffSize))}

	e.addLE(riff.RiffID)
	e.addLE(uint32(riffSize))
	e.addLE(riff.WavFormatID)
	e.writeFmtChunk(format)
	e.addLE(riff.DataFormatID)
	e.addLE(uint32(dataSize))

	out, err := appendSamples(e.buf.Bytes(), samples, format.BitDepth)
	if err != nil {
		return nil, err
	}

	if dataSize%2 == 1 {
		out = append(out, 0)
	}

	return out, nil
}

// EncodeBuffer encodes a go-audio buffer. The bit depth is taken from
// buf.SourceBitDepth.
func EncodeBuffer(w io.Writer, buf *audio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, errNilBuffer)
	}

	if buf.Format.NumChannels < 0 || buf.Format.SampleRate < 0 || buf.SourceBitDepth < 0 {
		return fmt.Errorf("%w: negative buffer format field", ErrInvalidFormat)
	}

	format := Format{
		SampleRate: uint32(buf.Format.SampleRate),
		NumChans:   uint16(buf.Format.NumChannels),
		BitDepth:   uint16(buf.SourceBitDepth),
	}

	return Encode(w, buf.Data, format)
}

// encoder accumulates the little-endian header fields of a wav file.
type encoder struct {
	buf *bytes.Buffer
}

// addLE serializes the passed value using little endian. Writes to a
// bytes.Buffer can't fail.
func (e *encoder) addLE(src any) {
	_ = binary.Write(e.buf, binary.LittleEndian, src)
}

func (e *encoder) writeFmtChunk(format Format) {
	e.addLE(riff.FmtID)
	e.addLE(uint32(pcmFmtChunkSize))
	e.addLE(uint16(wavFormatPCM))
	e.addLE(format.NumChans)
	e.addLE(format.SampleRate)
	e.addLE(format.ByteRate())
	e.addLE(format.BlockAlign())
	e.addLE(format.BitDepth)
}

func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return writeErr("flush", err)
		}
	}

	f, ok := w.(*os.File)
	if !ok {
		return nil
	}

	// pipes and terminals can't be synced
	if fi, err := f.Stat(); err != nil || !fi.Mode().IsRegular() {
		return nil
	}

	if err := f.Sync(); err != nil {
		return writeErr("sync", err)
	}

	return nil
}
