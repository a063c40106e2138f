package pcmwav

import (
	"bufio"
	"fmt"
	"os"
)

// ReadFile decodes the wav file at path.
func ReadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// WriteFile encodes samples into a new wav file at path, replacing any
// existing file.
func WriteFile(path string, samples []int, format Format) error {
	b, err := EncodeBytes(samples, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if _, err := f.Write(b); err != nil {
		f.Close()
		return writeErr(path, err)
	}

	if err := flush(f); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return writeErr(path, err)
	}

	return nil
}
