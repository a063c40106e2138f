package pcmwav

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/go-audio/riff"
)

// Metadata holds the text entries of a LIST/INFO chunk.
// See http://bwfmetaedit.sourceforge.net/listinfo.html
type Metadata struct {
	Artist       string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Title        string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string
}

var infoFields = map[[4]byte]func(*Metadata) *string{
	{'I', 'A', 'R', 'T'}: func(m *Metadata) *string { return &m.Artist },
	{'I', 'C', 'M', 'T'}: func(m *Metadata) *string { return &m.Comments },
	{'I', 'C', 'O', 'P'}: func(m *Metadata) *string { return &m.Copyright },
	{'I', 'C', 'R', 'D'}: func(m *Metadata) *string { return &m.CreationDate },
	{'I', 'E', 'N', 'G'}: func(m *Metadata) *string { return &m.Engineer },
	{'I', 'T', 'C', 'H'}: func(m *Metadata) *string { return &m.Technician },
	{'I', 'G', 'N', 'R'}: func(m *Metadata) *string { return &m.Genre },
	{'I', 'K', 'E', 'Y'}: func(m *Metadata) *string { return &m.Keywords },
	{'I', 'M', 'E', 'D'}: func(m *Metadata) *string { return &m.Medium },
	{'I', 'N', 'A', 'M'}: func(m *Metadata) *string { return &m.Title },
	{'I', 'P', 'R', 'D'}: func(m *Metadata) *string { return &m.Product },
	{'I', 'S', 'B', 'J'}: func(m *Metadata) *string { return &m.Subject },
	{'I', 'S', 'F', 'T'}: func(m *Metadata) *string { return &m.Software },
	{'I', 'S', 'R', 'C'}: func(m *Metadata) *string { return &m.Source },
	{'I', 'A', 'R', 'L'}: func(m *Metadata) *string { return &m.Location },
	{'I', 'T', 'R', 'K'}: func(m *Metadata) *string { return &m.TrackNbr },
	// some writers emit the track marker in lower case
	{'i', 't', 'r', 'k'}: func(m *Metadata) *string { return &m.TrackNbr },
}

// decodeListChunk reads a LIST chunk and stores INFO entries in
// info.Metadata. Other list types (adtl, ...) are ignored. A malformed entry
// ends parsing but keeps what was read so far.
func decodeListChunk(info *Info, ch *riff.Chunk) error {
	buf, err := io.ReadAll(ch)
	if err != nil {
		return readErr("LIST chunk", err)
	}

	if len(buf) < ch.Size {
		return readErr("LIST chunk", io.ErrUnexpectedEOF)
	}

	if len(buf) < 4 || !bytes.Equal(buf[:4], CIDInfo[:]) {
		return nil
	}

	if info.Metadata == nil {
		info.Metadata = &Metadata{}
	}

	for offset := 4; offset+chunkHeaderSize <= len(buf); {
		var id [4]byte
		copy(id[:], buf[offset:offset+4])
		size := int(binary.LittleEndian.Uint32(buf[offset+4 : offset+8]))
		offset += chunkHeaderSize

		if size > len(buf)-offset {
			break
		}

		if field, ok := infoFields[id]; ok {
			*field(info.Metadata) = nullTermStr(buf[offset : offset+size])
		}

		offset += size + size%2
	}

	return nil
}

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}
