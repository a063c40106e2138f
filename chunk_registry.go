package pcmwav

import (
	"fmt"

	"github.com/go-audio/riff"
)

var (
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDInfo is the list type of an INFO LIST chunk.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}
	// CIDFact is the chunk ID for the fact chunk.
	CIDFact = [4]byte{'f', 'a', 'c', 't'}
	// CIDSmpl is the chunk ID for a smpl chunk.
	CIDSmpl = [4]byte{'s', 'm', 'p', 'l'}
)

// chunkHandler interprets an optional chunk for ReadInfo. Handlers may leave
// part of the payload unread, the caller drains it.
type chunkHandler interface {
	CanHandle(chunkID [4]byte) bool
	Decode(info *Info, ch *riff.Chunk) error
}

// chunkRegistry resolves chunks to handlers.
type chunkRegistry struct {
	handlers []chunkHandler
}

func newDefaultChunkRegistry() *chunkRegistry {
	return &chunkRegistry{
		handlers: []chunkHandler{
			&factChunkHandler{},
			&listChunkHandler{},
			&samplerChunkHandler{},
		},
	}
}

// Decode dispatches a chunk to the first matching handler.
func (r *chunkRegistry) Decode(info *Info, ch *riff.Chunk) (bool, error) {
	if r == nil || ch == nil {
		return false, nil
	}

	for _, handler := range r.handlers {
		if !handler.CanHandle(ch.ID) {
			continue
		}

		if err := handler.Decode(info, ch); err != nil {
			return true, fmt.Errorf("failed to decode %q chunk: %w", ch.ID[:], err)
		}

		return true, nil
	}

	return false, nil
}

type factChunkHandler struct{}

func (h *factChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDFact
}

// Decode reads the sample count. Short fact chunks are ignored.
func (h *factChunkHandler) Decode(info *Info, ch *riff.Chunk) error {
	if ch.Size < 4 {
		return nil
	}

	var sampleCount uint32
	if err := ch.ReadLE(&sampleCount); err != nil {
		return readErr("fact sample count", err)
	}

	info.FactSamples = sampleCount

	return nil
}

type listChunkHandler struct{}

func (h *listChunkHandler) CanHandle(chunkID [4]byte) bool {
	return chunkID == CIDList
}

func (h *listChunkHandler) Decode(info *Info, ch *riff.Chunk) error {
	return decodeListChunk(info, ch)
}
