package pcmwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-audio/riff"
)

// smpl chunk is documented here:
// https://sites.google.com/site/musicgapi/technical-documents/wav-file-format#smpl

const (
	samplerHeaderSize = 36
	sampleLoopSize    = 24
)

// SamplerInfo holds the content of a smpl chunk.
type SamplerInfo struct {
	Manufacturer uint32
	Product      uint32
	// SamplePeriod is the duration of one sample in nanoseconds.
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	Loops             []SampleLoop
}

// SampleLoop is a loop region of a smpl chunk. Start and End are sample frame
// offsets, End is inclusive.
type SampleLoop struct {
	CuePointID uint32
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

type samplerHeader struct {
	Manufacturer      uint32
	Product           uint32
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	NumSampleLoops    uint32
	SamplerDataSize   uint32
}

type samplerChunkHandler struct{}

func (h *samplerChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDSmpl
}

// Decode stores the chunk in info.Sampler. Chunks too short for the fixed
// header are ignored, a loop count larger than the payload is clipped.
func (h *samplerChunkHandler) Decode(info *Info, ch *riff.Chunk) error {
	buf, err := io.ReadAll(ch)
	if err != nil {
		return readErr("smpl chunk", err)
	}

	if len(buf) < ch.Size {
		return readErr("smpl chunk", io.ErrUnexpectedEOF)
	}

	if len(buf) < samplerHeaderSize {
		return nil
	}

	r := bytes.NewReader(buf)

	var hdr samplerHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return fmt.Errorf("%w: smpl header: %w", ErrCorruptData, err)
	}

	numLoops := min(int(hdr.NumSampleLoops), (len(buf)-samplerHeaderSize)/sampleLoopSize)
	loops := make([]SampleLoop, numLoops)

	if err := binary.Read(r, binary.LittleEndian, loops); err != nil {
		return fmt.Errorf("%w: smpl loops: %w", ErrCorruptData, err)
	}

	info.Sampler = &SamplerInfo{
		Manufacturer:      hdr.Manufacturer,
		Product:           hdr.Product,
		SamplePeriod:      hdr.SamplePeriod,
		MIDIUnityNote:     hdr.MIDIUnityNote,
		MIDIPitchFraction: hdr.MIDIPitchFraction,
		SMPTEFormat:       hdr.SMPTEFormat,
		SMPTEOffset:       hdr.SMPTEOffset,
		Loops:             loops,
	}

	return nil
}
