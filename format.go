package pcmwav

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	wavFormatPCM         = 1
	wavFormatADPCM       = 2
	wavFormatIEEEFloat   = 3
	wavFormatALaw        = 6
	wavFormatMuLaw       = 7
	wavFormatIMAADPCM    = 17
	wavFormatTrueSpeech  = 34
	wavFormatGSM610      = 49
	wavFormatMPEG        = 80
	wavFormatMPEGLayer3  = 85
	wavFormatVoxware     = 6172
	wavFormatExtensible  = 0xFFFE
	maxRIFFPayload       = math.MaxUint32
	riffHeaderSize       = 12
	chunkHeaderSize      = 8
	pcmFmtChunkSize      = 16
	extensibleFmtMinSize = 40
)

var formatTagNames = map[uint16]string{
	wavFormatADPCM:      "Microsoft ADPCM",
	wavFormatIEEEFloat:  "IEEE float",
	wavFormatALaw:       "A-law",
	wavFormatMuLaw:      "mu-law",
	wavFormatIMAADPCM:   "IMA ADPCM",
	wavFormatTrueSpeech: "TrueSpeech",
	wavFormatGSM610:     "GSM 6.10",
	wavFormatMPEG:       "MPEG",
	wavFormatMPEGLayer3: "MPEG Layer 3",
	wavFormatVoxware:    "Voxware",
}

// Format describes the shape of a PCM stream.
type Format struct {
	// SampleRate is the number of frames per second.
	SampleRate uint32
	// NumChans is the number of interleaved channels.
	NumChans uint16
	// BitDepth is the storage width of one sample: 8, 16, 24 or 32.
	BitDepth uint16
}

// BytesPerSample returns the storage size of a single sample.
func (f Format) BytesPerSample() int {
	return int(f.BitDepth) / 8
}

// BlockAlign returns the size in bytes of one frame.
func (f Format) BlockAlign() uint16 {
	return uint16(uint32(f.NumChans) * uint32(f.BitDepth) / 8)
}

// ByteRate returns the number of bytes per second of audio.
func (f Format) ByteRate() uint32 {
	return f.SampleRate * uint32(f.BlockAlign())
}

// Validate reports whether the format can be stored in a PCM wav container.
func (f Format) Validate() error {
	if f.SampleRate == 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidFormat)
	}

	if f.NumChans == 0 {
		return fmt.Errorf("%w: channel count must be positive", ErrInvalidFormat)
	}

	if !supportedBitDepth(f.BitDepth) {
		return fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, f.BitDepth)
	}

	blockAlign := uint64(f.NumChans) * uint64(f.BitDepth) / 8
	if blockAlign > math.MaxUint16 {
		return fmt.Errorf("%w: %d channels don't fit a 16-bit block align", ErrInvalidFormat, f.NumChans)
	}

	if uint64(f.SampleRate)*blockAlign > math.MaxUint32 {
		return fmt.Errorf("%w: byte rate overflows 32 bits", ErrInvalidFormat)
	}

	return nil
}

// AudioFormat converts the format into its go-audio counterpart.
func (f Format) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: int(f.NumChans),
		SampleRate:  int(f.SampleRate),
	}
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz @ %d bits, %d channel(s)", f.SampleRate, f.BitDepth, f.NumChans)
}

func supportedBitDepth(bitDepth uint16) bool {
	switch bitDepth {
	case 8, 16, 24, 32:
		return true
	default:
		return false
	}
}
