package pcmwav

import (
	"encoding/binary"
	"fmt"
	"io"
)

// sampleChunkBytes is the write granularity for the payload; samples are
// flushed in slabs instead of one binary.Write call per sample.
const sampleChunkBytes = 8192

// Encoder serializes a clip as one canonical PCM wav stream: the 44-byte
// header followed by the raw payload, no metadata chunks, no padding.
type Encoder struct {
	w io.Writer
}

// NewEncoder creates a new encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes c's header followed by exactly c.Header.DataSize bytes of
// samples. The header's DataSize is authoritative: samples beyond it are
// ignored, and a DataSize the buffer cannot cover is rejected before
// anything is written.
func (e *Encoder) Encode(c *Clip) error {
	if c == nil || c.Samples == nil {
		return ErrEmptyBuffer
	}

	size := int(c.Header.DataSize)
	if size%2 != 0 || size > len(c.Samples)*2 {
		return fmt.Errorf("data size %d with %d samples buffered: %w",
			size, len(c.Samples), ErrDataSizeMismatch)
	}

	if err := binary.Write(e.w, binary.LittleEndian, &c.Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	return e.writeSamples(c.Samples[:size/2])
}

func (e *Encoder) writeSamples(samples []int16) error {
	const chunkSamples = sampleChunkBytes / 2

	buf := make([]byte, min(len(samples), chunkSamples)*2)

	for start := 0; start < len(samples); start += chunkSamples {
		chunk := samples[start:min(start+chunkSamples, len(samples))]

		buf = buf[:len(chunk)*2]
		for i, s := range chunk {
			binary.LittleEndian.PutUint16(buf[2*i:2*i+2], uint16(s))
		}

		if _, err := e.w.Write(buf); err != nil {
			return fmt.Errorf("failed to write sample data: %w", err)
		}
	}

	return nil
}
