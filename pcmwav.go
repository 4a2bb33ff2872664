package pcmwav

import (
	"errors"
	"fmt"
	"os"
)

var (
	// ErrInvalidContainer is returned when the RIFF/WAVE tags are missing
	// or wrong.
	ErrInvalidContainer = errors.New("invalid RIFF/WAVE container")

	// ErrUnsupportedEncoding is returned for any format tag other than
	// linear integer PCM.
	ErrUnsupportedEncoding = errors.New("unsupported encoding, expected integer PCM")

	// ErrInvalidHeader is returned when derived header fields contradict
	// each other.
	ErrInvalidHeader = errors.New("inconsistent wav header")

	// ErrTruncated is returned when the stream ends before the header or
	// the declared sample payload is complete.
	ErrTruncated = errors.New("truncated wav stream")

	// ErrDataTooLarge is returned when the declared payload exceeds what a
	// decoder is willing to allocate.
	ErrDataTooLarge = errors.New("declared data size too large")

	// ErrEmptyBuffer is returned when an operation needs samples and the
	// clip has none to offer.
	ErrEmptyBuffer = errors.New("no sample buffer")

	// ErrInvalidChannel is returned when a channel index is negative or
	// not present in the source.
	ErrInvalidChannel = errors.New("invalid channel index")

	// ErrDataSizeMismatch is returned when a header declares a payload its
	// sample buffer cannot cover.
	ErrDataSizeMismatch = errors.New("data size does not match sample buffer")

	// ErrUnsupportedBitDepth is returned when converting buffers whose
	// samples do not fit 16 bits.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
)

// ReadFile decodes the wav file at path into a Clip.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return NewDecoder(f).Decode()
}

// WriteFile encodes the clip into a new file at path, replacing any
// existing file.
func WriteFile(path string, c *Clip) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
