package pcmwav

import (
	"fmt"

	"github.com/go-audio/audio"
)

// Clip bundles a header with the interleaved 16-bit samples it describes.
// The two travel together through decode, extraction and encode but stay
// plain caller-owned values: no operation in this package retains a clip or
// shares its buffer after returning.
type Clip struct {
	Header  WavHeader
	Samples []int16
}

// Clone returns a deep copy of the clip.
func (c *Clip) Clone() *Clip {
	if c == nil {
		return nil
	}

	out := &Clip{Header: c.Header}
	if c.Samples != nil {
		out.Samples = append([]int16(nil), c.Samples...)
	}

	return out
}

// Format describes the clip with the go-audio format type.
func (c *Clip) Format() *audio.Format {
	if c == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(c.Header.NbChannels),
		SampleRate:  int(c.Header.SampleRate),
	}
}

// IntBuffer widens the samples into a go-audio buffer so the clip can feed
// the go-audio encoders and transforms directly.
func (c *Clip) IntBuffer() *audio.IntBuffer {
	if c == nil {
		return nil
	}

	data := make([]int, len(c.Samples))
	for i, s := range c.Samples {
		data[i] = int(s)
	}

	return &audio.IntBuffer{
		Format:         c.Format(),
		SourceBitDepth: 16,
		Data:           data,
	}
}

// FromIntBuffer narrows a go-audio buffer holding 16-bit PCM back into a
// Clip, deriving a fresh header from the buffer's format. Buffers sourced
// at other depths are rejected rather than silently clipped.
func FromIntBuffer(buf *audio.IntBuffer) (*Clip, error) {
	if buf == nil || buf.Format == nil || buf.Data == nil {
		return nil, ErrEmptyBuffer
	}

	depth := buf.SourceBitDepth
	if depth == 0 {
		depth = 16
	}
	if depth != 16 {
		return nil, fmt.Errorf("source bit depth %d: %w", depth, ErrUnsupportedBitDepth)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	c := &Clip{
		Header:  NewHeader(buf.Format.SampleRate, 16, buf.Format.NumChannels, buf.NumFrames()),
		Samples: samples,
	}

	if err := c.Header.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}
