package pcmwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	ksSubFormatGUIDTail0  = 0x00
	ksSubFormatGUIDTail1  = 0x00
	ksSubFormatGUIDTail2  = 0x10
	ksSubFormatGUIDTail3  = 0x00
	ksSubFormatGUIDTail4  = 0x80
	ksSubFormatGUIDTail5  = 0x00
	ksSubFormatGUIDTail6  = 0x00
	ksSubFormatGUIDTail7  = 0xAA
	ksSubFormatGUIDTail8  = 0x00
	ksSubFormatGUIDTail9  = 0x38
	ksSubFormatGUIDTail10 = 0x9B
	ksSubFormatGUIDTail11 = 0x71
)

// fmtChunk is the decoded payload of a fmt chunk before any validation.
type fmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
	// Extensible is set for WAVE_FORMAT_EXTENSIBLE chunks carrying a
	// complete 22 byte extension.
	Extensible *fmtExtensible
}

type fmtExtensible struct {
	ValidBitsPerSample uint16
	ChannelMask        uint32
	SubFormat          [16]byte
}

// parseFmtChunk reads the fixed 16 byte header and, for extensible chunks,
// the channel mask and sub-format. Any other extension bytes are ignored.
func parseFmtChunk(payload []byte) (*fmtChunk, error) {
	if len(payload) < pcmFmtChunkSize {
		return nil, fmt.Errorf("%w: fmt chunk is %d bytes, want at least %d", ErrCorruptData, len(payload), pcmFmtChunkSize)
	}

	le := binary.LittleEndian
	chunk := &fmtChunk{
		FormatTag:      le.Uint16(payload[0:2]),
		NumChannels:    le.Uint16(payload[2:4]),
		SampleRate:     le.Uint32(payload[4:8]),
		AvgBytesPerSec: le.Uint32(payload[8:12]),
		BlockAlign:     le.Uint16(payload[12:14]),
		BitsPerSample:  le.Uint16(payload[14:16]),
	}

	if chunk.FormatTag != wavFormatExtensible || len(payload) < extensibleFmtMinSize {
		return chunk, nil
	}

	if extraSize := le.Uint16(payload[16:18]); extraSize < 22 {
		return chunk, nil
	}

	ext := &fmtExtensible{
		ValidBitsPerSample: le.Uint16(payload[18:20]),
		ChannelMask:        le.Uint32(payload[20:24]),
	}
	copy(ext.SubFormat[:], payload[24:40])
	chunk.Extensible = ext

	return chunk, nil
}

// EffectiveFormatTag resolves the format tag of extensible chunks whose
// sub-format is one of the KSDATAFORMAT GUIDs derived from a legacy tag.
func (f *fmtChunk) EffectiveFormatTag() uint16 {
	if f == nil {
		return 0
	}

	if f.FormatTag != wavFormatExtensible || f.Extensible == nil {
		return f.FormatTag
	}

	tag := binary.LittleEndian.Uint16(f.Extensible.SubFormat[:2])
	if f.Extensible.SubFormat != makeSubFormatGUID(tag) {
		return wavFormatExtensible
	}

	return tag
}

// pcmFormat validates the chunk as linear PCM and cross-checks the derived
// fields against the values stored in the container.
func (f *fmtChunk) pcmFormat() (Format, error) {
	switch {
	case f.FormatTag == wavFormatPCM:
	case f.FormatTag == wavFormatExtensible && f.Extensible == nil:
		return Format{}, fmt.Errorf("%w: extensible fmt chunk without a sub-format", ErrUnsupportedFormat)
	case f.FormatTag == wavFormatExtensible:
		if !bytes.Equal(f.Extensible.SubFormat[:], pcmSubFormat[:]) {
			if tag := f.EffectiveFormatTag(); tag != wavFormatExtensible {
				return Format{}, unsupportedFormatTagError(tag)
			}

			return Format{}, fmt.Errorf("%w: extensible sub-format %x", ErrUnsupportedFormat, f.Extensible.SubFormat)
		}
	default:
		return Format{}, unsupportedFormatTagError(f.FormatTag)
	}

	if !supportedBitDepth(f.BitsPerSample) {
		return Format{}, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, f.BitsPerSample)
	}

	if f.NumChannels == 0 {
		return Format{}, fmt.Errorf("%w: zero channels", ErrCorruptData)
	}

	if f.SampleRate == 0 {
		return Format{}, fmt.Errorf("%w: zero sample rate", ErrCorruptData)
	}

	blockAlign := uint64(f.NumChannels) * uint64(f.BitsPerSample) / 8
	if uint64(f.BlockAlign) != blockAlign {
		return Format{}, fmt.Errorf("%w: block align %d, want %d", ErrCorruptData, f.BlockAlign, blockAlign)
	}

	byteRate := uint64(f.SampleRate) * blockAlign
	if uint64(f.AvgBytesPerSec) != byteRate {
		return Format{}, fmt.Errorf("%w: byte rate %d, want %d", ErrCorruptData, f.AvgBytesPerSec, byteRate)
	}

	return Format{
		SampleRate: f.SampleRate,
		NumChans:   f.NumChannels,
		BitDepth:   f.BitsPerSample,
	}, nil
}

var pcmSubFormat = makeSubFormatGUID(wavFormatPCM)

func makeSubFormatGUID(formatTag uint16) [16]byte {
	var guid [16]byte
	binary.LittleEndian.PutUint32(guid[:4], uint32(formatTag))
	guid[4] = ksSubFormatGUIDTail0
	guid[5] = ksSubFormatGUIDTail1
	guid[6] = ksSubFormatGUIDTail2
	guid[7] = ksSubFormatGUIDTail3
	guid[8] = ksSubFormatGUIDTail4
	guid[9] = ksSubFormatGUIDTail5
	guid[10] = ksSubFormatGUIDTail6
	guid[11] = ksSubFormatGUIDTail7
	guid[12] = ksSubFormatGUIDTail8
	guid[13] = ksSubFormatGUIDTail9
	guid[14] = ksSubFormatGUIDTail10
	guid[15] = ksSubFormatGUIDTail11

	return guid
}
