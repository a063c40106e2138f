// Package pcm converts between normalized floating point audio and integer
// PCM samples as stored in wav files.
package pcm

import "math"

const (
	maxPCMInt8Unsigned = 255
	floatPCM8Center    = 127.5
	floatPCM8Scale     = 127.5
	scalePCMInt16      = 32768.0
	scalePCMInt24      = 8388608.0
	scalePCMInt32      = 2147483648.0
	maxPCMInt16        = 32767
	maxPCMInt24        = 8388607
	maxPCMInt32        = 2147483647
)

func clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// Quantize converts a value in [-1, 1] into a sample of the given bit depth.
// Values outside the range are clipped. 8-bit samples are unsigned and
// centred on 128, unsupported bit depths yield 0.
func Quantize(value float64, bitDepth int) int {
	value = clamp(value, -1, 1)

	switch bitDepth {
	case 8:
		scaled := int(math.Round((value + 1.0) * floatPCM8Scale))
		return min(max(scaled, 0), maxPCMInt8Unsigned)
	case 16:
		return scaleClamp(value, scalePCMInt16, maxPCMInt16)
	case 24:
		return scaleClamp(value, scalePCMInt24, maxPCMInt24)
	case 32:
		return scaleClamp(value, scalePCMInt32, maxPCMInt32)
	default:
		return 0
	}
}

func scaleClamp(value, scale float64, hi int64) int {
	sample := min(int64(math.Round(value*scale)), hi)

	if lo := int64(-scale); sample < lo {
		sample = lo
	}

	return int(sample)
}

// Normalize maps a sample of the given bit depth into [-1, 1].
func Normalize(sample int, bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return (float64(sample) - floatPCM8Center) / floatPCM8Scale
	case 16:
		return float64(sample) / scalePCMInt16
	case 24:
		return float64(sample) / scalePCMInt24
	case 32:
		return float64(sample) / scalePCMInt32
	default:
		return 0
	}
}

// Peak returns the largest absolute normalized value of each channel of an
// interleaved sample slice.
func Peak(samples []int, numChans, bitDepth int) []float64 {
	if numChans <= 0 {
		return nil
	}

	peaks := make([]float64, numChans)
	for i, s := range samples {
		ch := i % numChans
		peaks[ch] = max(peaks[ch], math.Abs(Normalize(s, bitDepth)))
	}

	return peaks
}

// Decibels converts a linear amplitude into dBFS. Silence is -Inf.
func Decibels(amplitude float64) float64 {
	if amplitude <= 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(amplitude)
}
