package pcmwav

import (
	"fmt"
	"time"

	"github.com/go-audio/riff"
)

// HeaderSize is the byte length of the canonical RIFF/WAVE PCM header: the
// RIFF descriptor, one 16-byte fmt chunk and the data chunk header, with no
// extension or metadata chunks in between.
const HeaderSize = 44

// MaxChannels is the highest channel count the canonical speaker layout
// describes (center left, left, center, center right, right, surround).
const MaxChannels = 6

// AudioFormatPCM is the fmt chunk format tag for linear integer PCM, the
// only encoding this package handles.
const AudioFormatPCM = 1

// pcmFmtChunkSize is the fmt chunk body size for plain PCM (no extension).
const pcmFmtChunkSize = 16

// WavHeader mirrors the canonical 44-byte header field for field. Every
// field has a fixed width, so encoding/binary reads and writes the struct
// against the wire format with no padding in either direction.
type WavHeader struct {
	FileTypeChunkID [4]byte // "RIFF"
	FileSize        uint32  // total file size minus 8
	FileFormatID    [4]byte // "WAVE"

	FormatChunkID [4]byte // "fmt "
	FmtChunkSize  uint32  // 16 for PCM
	AudioFormat   uint16  // 1 = integer PCM
	NbChannels    uint16
	SampleRate    uint32
	BytePerSec    uint32 // SampleRate * BytePerChunk
	BytePerChunk  uint16 // bytes per frame, NbChannels * BitsPerSample / 8
	BitsPerSample uint16

	DataChunkID [4]byte // "data"
	DataSize    uint32  // byte length of the sample payload
}

// NewHeader returns a header describing numFrames frames of interleaved
// integer PCM, with the block, rate and size fields derived from the
// arguments so the result always passes Validate.
func NewHeader(sampleRate, bitDepth, numChans, numFrames int) WavHeader {
	bytePerChunk := uint32(numChans) * uint32(bitDepth) / 8
	dataSize := uint32(numFrames) * bytePerChunk

	return WavHeader{
		FileTypeChunkID: riff.RiffID,
		FileSize:        dataSize + HeaderSize - 8,
		FileFormatID:    riff.WavFormatID,
		FormatChunkID:   riff.FmtID,
		FmtChunkSize:    pcmFmtChunkSize,
		AudioFormat:     AudioFormatPCM,
		NbChannels:      uint16(numChans),
		SampleRate:      uint32(sampleRate),
		BytePerSec:      uint32(sampleRate) * bytePerChunk,
		BytePerChunk:    uint16(bytePerChunk),
		BitsPerSample:   uint16(bitDepth),
		DataChunkID:     riff.DataFormatID,
		DataSize:        dataSize,
	}
}

// Validate checks the chunk tags, the encoding and the arithmetic relations
// between the derived fields. Decoding only enforces the tags and the PCM
// format tag; callers that need the full set of relations to hold run this
// explicitly.
func (h WavHeader) Validate() error {
	if h.FileTypeChunkID != riff.RiffID || h.FileFormatID != riff.WavFormatID {
		return fmt.Errorf("%s/%s tags: %w",
			string(h.FileTypeChunkID[:]), string(h.FileFormatID[:]), ErrInvalidContainer)
	}

	if h.FormatChunkID != riff.FmtID || h.DataChunkID != riff.DataFormatID {
		return fmt.Errorf("%s/%s chunk tags: %w",
			string(h.FormatChunkID[:]), string(h.DataChunkID[:]), ErrInvalidContainer)
	}

	if h.AudioFormat != AudioFormatPCM {
		return fmt.Errorf("format tag %d: %w", h.AudioFormat, ErrUnsupportedEncoding)
	}

	if h.FmtChunkSize != pcmFmtChunkSize {
		return fmt.Errorf("fmt chunk size %d, want %d: %w", h.FmtChunkSize, pcmFmtChunkSize, ErrInvalidHeader)
	}

	if h.NbChannels < 1 || h.NbChannels > MaxChannels {
		return fmt.Errorf("%d channels: %w", h.NbChannels, ErrInvalidHeader)
	}

	if h.BitsPerSample != 8 && h.BitsPerSample != 16 {
		return fmt.Errorf("%d bits per sample: %w", h.BitsPerSample, ErrInvalidHeader)
	}

	if want := uint32(h.NbChannels) * uint32(h.BitsPerSample) / 8; uint32(h.BytePerChunk) != want {
		return fmt.Errorf("block size %d, want %d: %w", h.BytePerChunk, want, ErrInvalidHeader)
	}

	if want := uint64(h.SampleRate) * uint64(h.BytePerChunk); uint64(h.BytePerSec) != want {
		return fmt.Errorf("byte rate %d, want %d: %w", h.BytePerSec, want, ErrInvalidHeader)
	}

	if want := uint64(h.DataSize) + HeaderSize - 8; uint64(h.FileSize) != want {
		return fmt.Errorf("file size %d, want %d: %w", h.FileSize, want, ErrInvalidHeader)
	}

	if h.DataSize%uint32(h.BytePerChunk) != 0 {
		return fmt.Errorf("data size %d not a multiple of block size %d: %w",
			h.DataSize, h.BytePerChunk, ErrInvalidHeader)
	}

	return nil
}

// NumFrames returns the number of sample frames the header declares.
func (h WavHeader) NumFrames() int {
	if h.BytePerChunk == 0 {
		return 0
	}

	return int(h.DataSize / uint32(h.BytePerChunk))
}

// Duration returns the playback time of the declared payload, truncated to
// whole seconds.
func (h WavHeader) Duration() time.Duration {
	if h.BytePerSec == 0 {
		return 0
	}

	return time.Duration(h.DataSize/h.BytePerSec) * time.Second
}
