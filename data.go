package pcmwav

import (
	"io"
	"math"
	"time"

	"github.com/go-audio/audio"
)

// Data is a decoded PCM stream. Samples are interleaved by channel: sample 0
// is channel 0 of frame 0, sample 1 is channel 1 of frame 0 and so on.
// 8-bit samples are unsigned (0..255), wider samples are signed.
type Data struct {
	Format  Format
	Samples []int
}

// NumFrames returns the number of complete frames.
func (d *Data) NumFrames() int {
	if d == nil || d.Format.NumChans == 0 {
		return 0
	}

	return len(d.Samples) / int(d.Format.NumChans)
}

// Duration returns the playback length of the stream.
func (d *Data) Duration() time.Duration {
	if d == nil {
		return 0
	}

	return framesDuration(d.NumFrames(), d.Format.SampleRate)
}

// IntBuffer returns a go-audio buffer sharing the sample slice.
func (d *Data) IntBuffer() *audio.IntBuffer {
	if d == nil {
		return nil
	}

	return &audio.IntBuffer{
		Format:         d.Format.AudioFormat(),
		Data:           d.Samples,
		SourceBitDepth: int(d.Format.BitDepth),
	}
}

// Encode writes the data as a canonical wav stream.
func (d *Data) Encode(w io.Writer) error {
	if d == nil {
		return Encode(w, nil, Format{})
	}

	return Encode(w, d.Samples, d.Format)
}

func framesDuration(frames int, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Duration(math.Round(float64(frames) * float64(time.Second) / float64(sampleRate)))
}
