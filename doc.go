// Package pcmwav reads and writes uncompressed PCM audio stored in RIFF/WAVE
// containers.
//
// Decode walks the chunk list of a forward-only reader, tolerates vendor and
// metadata chunks in any position, and returns interleaved integer samples
// together with the stream Format. Encode is its inverse and always emits the
// minimal canonical layout: a 16 byte PCM fmt chunk followed by the data
// chunk.
//
// Supported sample widths are 8 (unsigned), 16, 24 and 32 bit (signed,
// little-endian). Compressed or floating point encodings are rejected with
// ErrUnsupportedFormat.
//
// ReadInfo inspects a container without decoding samples and reports the
// chunk inventory, LIST/INFO metadata and smpl loop points.
package pcmwav
