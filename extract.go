package pcmwav

import "fmt"

// ExtractChannel gathers one channel of the interleaved source into a fresh
// mono clip, rederiving the size and rate fields of the header so the
// result stands on its own. A negative maxFrames, or one beyond what the
// source holds, extracts everything available; 0 extracts an empty payload.
//
// The source is never modified.
func (c *Clip) ExtractChannel(channel, maxFrames int) (*Clip, error) {
	if c == nil || c.Samples == nil {
		return nil, ErrEmptyBuffer
	}

	if channel < 0 || channel >= MaxChannels || channel >= int(c.Header.NbChannels) {
		return nil, fmt.Errorf("channel %d of %d: %w", channel, c.Header.NbChannels, ErrInvalidChannel)
	}

	if c.Header.BytePerChunk == 0 {
		return nil, fmt.Errorf("zero block size: %w", ErrInvalidHeader)
	}

	stride := int(c.Header.NbChannels)

	// Frames the header declares, clamped to what the buffer actually holds.
	frames := c.Header.NumFrames()
	if held := len(c.Samples) / stride; frames > held {
		frames = held
	}

	if maxFrames < 0 || maxFrames > frames {
		maxFrames = frames
	}

	bytesPerSample := uint32(c.Header.BitsPerSample) / 8

	out := &Clip{Header: c.Header, Samples: make([]int16, maxFrames)}
	out.Header.NbChannels = 1
	out.Header.DataSize = uint32(maxFrames) * bytesPerSample
	out.Header.BytePerChunk = uint16(bytesPerSample)
	out.Header.BytePerSec = out.Header.SampleRate * uint32(out.Header.BytePerChunk)
	out.Header.FileSize = out.Header.DataSize + HeaderSize - 8

	for i := range out.Samples {
		out.Samples[i] = c.Samples[i*stride+channel]
	}

	return out, nil
}
