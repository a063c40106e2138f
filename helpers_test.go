package pcmwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// pcmFmtPayload returns a 16 byte fmt payload with consistent derived fields.
func pcmFmtPayload(numChans uint16, sampleRate uint32, bitDepth uint16) []byte {
	blockAlign := numChans * bitDepth / 8

	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], wavFormatPCM)
	binary.LittleEndian.PutUint16(payload[2:4], numChans)
	binary.LittleEndian.PutUint32(payload[4:8], sampleRate)
	binary.LittleEndian.PutUint32(payload[8:12], sampleRate*uint32(blockAlign))
	binary.LittleEndian.PutUint16(payload[12:14], blockAlign)
	binary.LittleEndian.PutUint16(payload[14:16], bitDepth)

	return payload
}

// extensibleFmtPayload returns a 40 byte WAVE_FORMAT_EXTENSIBLE payload.
func extensibleFmtPayload(numChans uint16, sampleRate uint32, bitDepth uint16, subFormat [16]byte) []byte {
	payload := pcmFmtPayload(numChans, sampleRate, bitDepth)
	binary.LittleEndian.PutUint16(payload[0:2], wavFormatExtensible)

	ext := make([]byte, 24)
	binary.LittleEndian.PutUint16(ext[0:2], 22)
	binary.LittleEndian.PutUint16(ext[2:4], bitDepth)
	binary.LittleEndian.PutUint32(ext[4:8], 0x3)
	copy(ext[8:24], subFormat[:])

	return append(payload, ext...)
}

// makeWav assembles a RIFF/WAVE file from the chunks in order and fixes up
// the RIFF size.
func makeWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	err := binary.Write(&b, binary.LittleEndian, uint32(0))
	if err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")

	for _, ch := range chunks {
		writeTestChunk(t, &b, ch.id, ch.data)
	}

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	err := binary.Write(b, binary.LittleEndian, uint32(len(payload)))
	if err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}

	if len(payload)%2 == 1 {
		err := b.WriteByte(0)
		if err != nil {
			t.Fatalf("write chunk pad for %q: %v", id, err)
		}
	}
}

func chunk(id string, data []byte) testChunk {
	return testChunk{id: id, size: uint32(len(data)), data: data}
}

func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < 12 {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := 12
	for offset+8 <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += 8

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		payload := append([]byte(nil), data[offset:end]...)
		chunks = append(chunks, testChunk{id: id, size: size, data: payload})

		offset = end
		if size%2 == 1 {
			offset++
		}
	}

	return chunks, nil
}

func findChunk(chunks []testChunk, id string) (*testChunk, int) {
	for i := range chunks {
		if chunks[i].id == id {
			return &chunks[i], i
		}
	}

	return nil, -1
}

func int16LE(values ...int16) []byte {
	out := make([]byte, 0, 2*len(values))
	for _, v := range values {
		out = binary.LittleEndian.AppendUint16(out, uint16(v))
	}

	return out
}

// failingWriter fails every write with err.
type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// failingReader serves data and then fails with err instead of io.EOF.
type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}

	n := copy(p, r.data)
	r.data = r.data[n:]

	return n, nil
}
