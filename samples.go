package pcmwav

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	minPCMInt24 = -8388608
	maxPCMInt24 = 8388607
)

// sampleDecodeFunc returns a function converting one little-endian sample
// into an int. Note that 8bit samples are unsigned, all other widths are
// signed.
func sampleDecodeFunc(bitDepth uint16) (func([]byte) int, error) {
	switch bitDepth {
	case 8:
		return func(b []byte) int {
			return int(b[0])
		}, nil
	case 16:
		return func(b []byte) int {
			return int(int16(binary.LittleEndian.Uint16(b)))
		}, nil
	case 24:
		return func(b []byte) int {
			return int(audio.Int24LETo32(b[:3]))
		}, nil
	case 32:
		return func(b []byte) int {
			return int(int32(binary.LittleEndian.Uint32(b)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bitDepth)
	}
}

// sampleEncodeFunc returns a function appending the little-endian encoding
// of a sample to a buffer. Range checks are done by sampleRange.
func sampleEncodeFunc(bitDepth uint16) (func([]byte, int) []byte, error) {
	switch bitDepth {
	case 8:
		return func(b []byte, v int) []byte {
			return append(b, uint8(v))
		}, nil
	case 16:
		return func(b []byte, v int) []byte {
			return binary.LittleEndian.AppendUint16(b, uint16(int16(v)))
		}, nil
	case 24:
		return func(b []byte, v int) []byte {
			return append(b, audio.Int32toInt24LEBytes(int32(v))...)
		}, nil
	case 32:
		return func(b []byte, v int) []byte {
			return binary.LittleEndian.AppendUint32(b, uint32(int32(v)))
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d-bit PCM", ErrUnsupportedFormat, bitDepth)
	}
}

// sampleRange returns the inclusive range of values storable at bitDepth.
func sampleRange(bitDepth uint16) (lo, hi int) {
	switch bitDepth {
	case 8:
		return 0, math.MaxUint8
	case 16:
		return math.MinInt16, math.MaxInt16
	case 24:
		return minPCMInt24, maxPCMInt24
	default:
		return math.MinInt32, math.MaxInt32
	}
}

// decodeSamples converts a raw data chunk payload into interleaved samples.
func decodeSamples(payload []byte, bitDepth uint16) ([]int, error) {
	decodeF, err := sampleDecodeFunc(bitDepth)
	if err != nil {
		return nil, err
	}

	width := int(bitDepth) / 8
	if len(payload)%width != 0 {
		return nil, fmt.Errorf("%w: %d data bytes is not a multiple of the %d byte sample width", ErrCorruptData, len(payload), width)
	}

	samples := make([]int, len(payload)/width)
	for i := range samples {
		samples[i] = decodeF(payload[i*width : (i+1)*width])
	}

	return samples, nil
}

// appendSamples serializes samples after checking each one fits bitDepth.
func appendSamples(b []byte, samples []int, bitDepth uint16) ([]byte, error) {
	encodeF, err := sampleEncodeFunc(bitDepth)
	if err != nil {
		return nil, err
	}

	lo, hi := sampleRange(bitDepth)
	for i, v := range samples {
		if v < lo || v > hi {
			return nil, fmt.Errorf("%w: sample %d is %d, %d-bit PCM holds [%d, %d]", ErrSampleOutOfRange, i, v, bitDepth, lo, hi)
		}

		b = encodeF(b, v)
	}

	return b, nil
}
