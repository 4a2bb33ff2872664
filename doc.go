// Package pcmwav reads, transforms and writes audio held in the canonical
// RIFF/WAVE container restricted to linear integer PCM.
//
// The package handles exactly the 44-byte single-fmt, single-data layout: a
// WavHeader mirrors the wire format field for field and the payload is kept
// as interleaved signed 16-bit samples. Three operations cover the surface:
//
//   - Decoder reads a header and payload from an io.Reader.
//   - Clip.ExtractChannel gathers one channel into a fresh mono clip with
//     the size and rate fields rederived.
//   - Encoder writes a header and payload back out, byte for byte.
//
// Headers and sample buffers are plain values owned by the caller; every
// operation allocates fresh output and never retains its arguments. Streams
// carrying metadata chunks, fmt extensions or non-PCM encodings are
// rejected up front rather than partially decoded.
//
// Clips convert to and from go-audio buffers via IntBuffer and
// FromIntBuffer, which is the bridge used to hand decoded audio to other
// go-audio encoders.
package pcmwav
