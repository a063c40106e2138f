package pcmwav

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

func TestData_Duration(t *testing.T) {
	testCases := []struct {
		data *Data
		want time.Duration
	}{
		{&Data{Format: Format{SampleRate: 22050, NumChans: 1, BitDepth: 16}, Samples: make([]int, 4502)}, 204172336 * time.Nanosecond},
		{&Data{Format: Format{SampleRate: 44100, NumChans: 2, BitDepth: 16}, Samples: make([]int, 88200)}, time.Second},
		{&Data{Format: Format{SampleRate: 8000, NumChans: 1, BitDepth: 8}}, 0},
		{&Data{}, 0},
		{nil, 0},
	}

	for i, tc := range testCases {
		if got := tc.data.Duration(); got != tc.want {
			t.Errorf("case %d: duration=%v, want %v", i, got, tc.want)
		}
	}
}

func TestData_NumFrames(t *testing.T) {
	data := &Data{Format: Format{SampleRate: 8000, NumChans: 3, BitDepth: 16}, Samples: make([]int, 10)}
	if got := data.NumFrames(); got != 3 {
		t.Fatalf("frames=%d, want 3", got)
	}

	var nilData *Data
	if nilData.NumFrames() != 0 {
		t.Fatal("nil data should have no frames")
	}
}

func TestData_IntBuffer(t *testing.T) {
	data := &Data{Format: Format{SampleRate: 48000, NumChans: 2, BitDepth: 24}, Samples: []int{1, 2, 3, 4}}

	buf := data.IntBuffer()
	if buf.Format.SampleRate != 48000 || buf.Format.NumChannels != 2 || buf.SourceBitDepth != 24 {
		t.Fatalf("unexpected buffer format %+v / %d", buf.Format, buf.SourceBitDepth)
	}

	if buf.NumFrames() != 2 {
		t.Fatalf("buffer frames=%d, want 2", buf.NumFrames())
	}

	buf.Data[0] = 42
	if data.Samples[0] != 42 {
		t.Fatal("expected the buffer to share the sample slice")
	}

	var nilData *Data
	if nilData.IntBuffer() != nil {
		t.Fatal("nil data should produce a nil buffer")
	}
}

func TestData_Encode(t *testing.T) {
	data := &Data{Format: Format{SampleRate: 44100, NumChans: 2, BitDepth: 16}, Samples: []int{100, -100, 200, -200}}

	var out bytes.Buffer
	if err := data.Encode(&out); err != nil {
		t.Fatalf("encode: %v", err)
	}

	if out.Len() != 52 {
		t.Fatalf("expected 52 bytes, got %d", out.Len())
	}

	var nilData *Data
	if err := nilData.Encode(&out); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat for nil data, got %v", err)
	}
}
