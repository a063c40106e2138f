package pcmwav

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/require"
)

var compatFormats = []Format{
	{SampleRate: 22050, NumChans: 1, BitDepth: 16},
	{SampleRate: 44100, NumChans: 2, BitDepth: 16},
	{SampleRate: 48000, NumChans: 2, BitDepth: 24},
	{SampleRate: 96000, NumChans: 1, BitDepth: 24},
}

// TestCompat_GoAudioReadsOurFiles checks our canonical output against the
// go-audio/wav decoder.
func TestCompat_GoAudioReadsOurFiles(t *testing.T) {
	for _, format := range compatFormats {
		t.Run(format.String(), func(t *testing.T) {
			samples := rampSamples(64*int(format.NumChans), format.BitDepth)

			b, err := EncodeBytes(samples, format)
			require.NoError(t, err)

			dec := wav.NewDecoder(bytes.NewReader(b))
			require.True(t, dec.IsValidFile())

			buf, err := dec.FullPCMBuffer()
			require.NoError(t, err)

			require.Equal(t, int(format.SampleRate), buf.Format.SampleRate)
			require.Equal(t, int(format.NumChans), buf.Format.NumChannels)
			require.Equal(t, format.BitDepth, dec.BitDepth)
			require.Equal(t, samples, buf.Data)
		})
	}
}

// TestCompat_WeReadGoAudioFiles decodes files produced by the go-audio/wav
// encoder.
func TestCompat_WeReadGoAudioFiles(t *testing.T) {
	dir := t.TempDir()

	for i, format := range compatFormats {
		t.Run(format.String(), func(t *testing.T) {
			path := filepath.Join(dir, fmt.Sprintf("goaudio-%d.wav", i))
			samples := rampSamples(50*int(format.NumChans), format.BitDepth)

			f, err := os.Create(path)
			require.NoError(t, err)

			enc := wav.NewEncoder(f, int(format.SampleRate), int(format.BitDepth), int(format.NumChans), 1)
			require.NoError(t, enc.Write(&audio.IntBuffer{
				Format:         format.AudioFormat(),
				Data:           samples,
				SourceBitDepth: int(format.BitDepth),
			}))
			require.NoError(t, enc.Close())
			require.NoError(t, f.Close())

			data, err := ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, format, data.Format)
			require.Equal(t, samples, data.Samples)

			ours, err := EncodeBytes(samples, format)
			require.NoError(t, err)

			theirs, err := os.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, theirs, ours, "both encoders produce the canonical layout")
		})
	}
}

func TestCompat_EncodeBufferFromGoAudio(t *testing.T) {
	format := Format{SampleRate: 44100, NumChans: 2, BitDepth: 16}
	samples := rampSamples(20, 16)

	b, err := EncodeBytes(samples, format)
	require.NoError(t, err)

	buf, err := wav.NewDecoder(bytes.NewReader(b)).FullPCMBuffer()
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, EncodeBuffer(&out, buf))
	require.Equal(t, b, out.Bytes())
}
