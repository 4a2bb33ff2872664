package pcmwav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-audio/riff"
)

// maxDataSize caps how much payload a decode is willing to allocate for.
// DataSize is untrusted input and can declare up to 4 GiB.
const maxDataSize = 1 << 30

// Decoder reads a canonical PCM wav stream: the fixed 44-byte header
// followed by the raw little-endian sample payload.
type Decoder struct {
	r io.Reader

	// Header holds the parsed header once ReadHeader has succeeded.
	Header WavHeader

	headerRead bool
}

// NewDecoder creates a decoder for the passed wav reader.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadHeader reads the 44-byte header and checks the container tags and the
// format tag. Calling it again after it succeeded is a no-op, so it can be
// used to peek at the header before committing to ReadSamples.
func (d *Decoder) ReadHeader() error {
	if d.headerRead {
		return nil
	}

	if err := binary.Read(d.r, binary.LittleEndian, &d.Header); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("failed to read header: %w", ErrTruncated)
		}

		return fmt.Errorf("failed to read header: %w", err)
	}

	if d.Header.FileTypeChunkID != riff.RiffID || d.Header.FileFormatID != riff.WavFormatID {
		err := fmt.Errorf("%s/%s tags: %w",
			string(d.Header.FileTypeChunkID[:]), string(d.Header.FileFormatID[:]), ErrInvalidContainer)
		d.Header = WavHeader{}

		return err
	}

	if d.Header.AudioFormat != AudioFormatPCM {
		err := fmt.Errorf("format tag %d: %w", d.Header.AudioFormat, ErrUnsupportedEncoding)
		d.Header = WavHeader{}

		return err
	}

	d.headerRead = true

	return nil
}

// ReadSamples reads the payload declared by the header into a freshly
// allocated buffer of interleaved 16-bit samples. The header is read first
// if it has not been yet.
func (d *Decoder) ReadSamples() ([]int16, error) {
	if err := d.ReadHeader(); err != nil {
		return nil, err
	}

	if d.Header.DataSize > maxDataSize {
		return nil, fmt.Errorf("data size %d: %w", d.Header.DataSize, ErrDataTooLarge)
	}

	raw := make([]byte, d.Header.DataSize)
	if _, err := io.ReadFull(d.r, raw); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("failed to read sample data: %w", ErrTruncated)
		}

		return nil, fmt.Errorf("failed to read sample data: %w", err)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
	}

	return samples, nil
}

// Decode reads the header and the full payload as one Clip.
func (d *Decoder) Decode() (*Clip, error) {
	samples, err := d.ReadSamples()
	if err != nil {
		return nil, err
	}

	return &Clip{Header: d.Header, Samples: samples}, nil
}

// Duration returns the whole-second playback time of the stream, reading
// the header first if needed. The payload itself stays unread.
func (d *Decoder) Duration() (time.Duration, error) {
	if err := d.ReadHeader(); err != nil {
		return 0, err
	}

	return d.Header.Duration(), nil
}
