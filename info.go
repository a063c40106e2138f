package pcmwav

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/go-audio/riff"
)

// ChunkInfo describes one top-level chunk as found in the container.
type ChunkInfo struct {
	ID   string
	Size uint32
}

// Info is the result of inspecting a wav container without decoding its
// samples.
type Info struct {
	// Format holds the stream parameters exactly as stored in the fmt chunk.
	Format Format
	// FormatTag is the effective format tag, resolved through the
	// WAVE_FORMAT_EXTENSIBLE sub-format when possible.
	FormatTag uint16
	// ByteRate is the average bytes per second field of the fmt chunk.
	ByteRate uint32
	// RIFFSize is the outer size field, which isn't always accurate.
	RIFFSize uint32
	// DataSize is the declared length of the data chunk.
	DataSize uint32
	// FactSamples is the per-channel sample count of a fact chunk, if any.
	FactSamples uint32
	// Chunks lists every top-level chunk in file order.
	Chunks []ChunkInfo
	// Metadata holds LIST/INFO entries, nil when the file has none.
	Metadata *Metadata
	// Sampler holds the smpl chunk, nil when the file has none.
	Sampler *SamplerInfo
}

// IsPCM reports whether Decode can handle the stream encoding.
func (i *Info) IsPCM() bool {
	return i != nil && i.FormatTag == wavFormatPCM && supportedBitDepth(i.Format.BitDepth)
}

// Codec returns a human readable name for the stream encoding.
func (i *Info) Codec() string {
	if i == nil {
		return ""
	}

	if i.FormatTag == wavFormatPCM {
		return "PCM"
	}

	if name, ok := formatTagNames[i.FormatTag]; ok {
		return name
	}

	return fmt.Sprintf("format tag %d", i.FormatTag)
}

// Duration returns the playback length. Compressed streams with a fact chunk
// use its sample count, everything else is derived from the byte rate.
func (i *Info) Duration() time.Duration {
	if i == nil {
		return 0
	}

	if i.FormatTag != wavFormatPCM && i.FactSamples > 0 {
		return framesDuration(int(i.FactSamples), i.Format.SampleRate)
	}

	if i.ByteRate == 0 {
		return 0
	}

	return time.Duration(math.Round(float64(i.DataSize) / float64(i.ByteRate) * float64(time.Second)))
}

// ReadInfo walks every chunk of a wav container and reports its layout,
// format fields and metadata without decoding samples. Unlike Decode it
// doesn't reject compressed encodings, so it can describe any wav file.
func ReadInfo(r io.Reader) (*Info, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, errNilReader)
	}

	cr := newChunkReader(r)
	if err := cr.readHeader(); err != nil {
		return nil, err
	}

	info := &Info{RIFFSize: cr.riffSize()}
	registry := newDefaultChunkRegistry()

	var hasFmt, hasData bool

	for {
		chunk, err := cr.next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		info.Chunks = append(info.Chunks, ChunkInfo{ID: string(chunk.ID[:]), Size: uint32(chunk.Size)})

		switch {
		case chunk.ID == riff.FmtID && !hasFmt:
			err = info.readFmt(cr, chunk)
			hasFmt = err == nil
		case chunk.ID == riff.DataFormatID && !hasData:
			info.DataSize = uint32(chunk.Size)
			hasData = true
		default:
			_, err = registry.Decode(info, chunk)
		}

		if err != nil {
			return nil, err
		}

		if err := cr.skip(chunk); err != nil {
			return nil, err
		}

		if err := cr.skipPad(chunk); err != nil {
			return nil, err
		}
	}

	if !hasFmt {
		return nil, fmt.Errorf("%w: no fmt chunk", ErrTruncatedFile)
	}

	if !hasData {
		return nil, fmt.Errorf("%w: no data chunk", ErrTruncatedFile)
	}

	return info, nil
}

func (i *Info) readFmt(cr *chunkReader, chunk *riff.Chunk) error {
	payload, err := cr.readPayload(chunk)
	if err != nil {
		return err
	}

	fmtChunk, err := parseFmtChunk(payload)
	if err != nil {
		return err
	}

	i.Format = Format{
		SampleRate: fmtChunk.SampleRate,
		NumChans:   fmtChunk.NumChannels,
		BitDepth:   fmtChunk.BitsPerSample,
	}
	i.FormatTag = fmtChunk.EffectiveFormatTag()
	i.ByteRate = fmtChunk.AvgBytesPerSec

	return nil
}
