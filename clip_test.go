package pcmwav

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-audio/audio"
)

func TestClipClone(t *testing.T) {
	src := testClip(t, 2, 8)

	got := src.Clone()
	if got == src {
		t.Fatal("clone returned the same pointer")
	}

	if got.Header != src.Header || !reflect.DeepEqual(got.Samples, src.Samples) {
		t.Fatal("clone differs from its source")
	}

	got.Samples[0] = -1
	got.Header.SampleRate = 1

	if src.Samples[0] == -1 || src.Header.SampleRate == 1 {
		t.Fatal("mutating the clone reached the source")
	}

	var nilClip *Clip
	if nilClip.Clone() != nil {
		t.Fatal("clone of nil should stay nil")
	}
}

func TestClipCloneNilSamples(t *testing.T) {
	src := &Clip{Header: NewHeader(8000, 16, 1, 0)}

	got := src.Clone()
	if got.Samples != nil {
		t.Fatal("clone invented a sample buffer")
	}
}

func TestClipNilReceivers(t *testing.T) {
	var c *Clip

	if c.Format() != nil {
		t.Fatal("nil clip Format should be nil")
	}

	if c.IntBuffer() != nil {
		t.Fatal("nil clip IntBuffer should be nil")
	}

	if _, err := FromIntBuffer(c.IntBuffer()); !errors.Is(err, ErrEmptyBuffer) {
		t.Fatalf("FromIntBuffer()=%v, want %v", err, ErrEmptyBuffer)
	}
}

func TestClipIntBuffer(t *testing.T) {
	clip := &Clip{
		Header:  NewHeader(48000, 16, 2, 2),
		Samples: []int16{-32768, -1, 0, 32767},
	}

	buf := clip.IntBuffer()

	if buf.Format.NumChannels != 2 || buf.Format.SampleRate != 48000 {
		t.Fatalf("format=%+v, want 2 channels at 48000 Hz", buf.Format)
	}

	if buf.SourceBitDepth != 16 {
		t.Fatalf("source bit depth=%d, want 16", buf.SourceBitDepth)
	}

	if want := []int{-32768, -1, 0, 32767}; !reflect.DeepEqual(buf.Data, want) {
		t.Fatalf("data=%v, want %v", buf.Data, want)
	}
}

func TestFromIntBuffer(t *testing.T) {
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: 44100},
		SourceBitDepth: 16,
		Data:           []int{1, -2, 3, -4},
	}

	clip, err := FromIntBuffer(buf)
	if err != nil {
		t.Fatalf("FromIntBuffer failed: %v", err)
	}

	if want := NewHeader(44100, 16, 2, 2); clip.Header != want {
		t.Fatalf("header mismatch\ngot:  %+v\nwant: %+v", clip.Header, want)
	}

	if want := []int16{1, -2, 3, -4}; !reflect.DeepEqual(clip.Samples, want) {
		t.Fatalf("samples=%v, want %v", clip.Samples, want)
	}
}

func TestFromIntBufferDefaultsBitDepth(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{5, 6, 7},
	}

	clip, err := FromIntBuffer(buf)
	if err != nil {
		t.Fatalf("FromIntBuffer failed: %v", err)
	}

	if clip.Header.BitsPerSample != 16 {
		t.Fatalf("bit depth=%d, want 16", clip.Header.BitsPerSample)
	}
}

func TestFromIntBufferRejects(t *testing.T) {
	tests := []struct {
		name    string
		buf     *audio.IntBuffer
		wantErr error
	}{
		{name: "nil buffer", buf: nil, wantErr: ErrEmptyBuffer},
		{
			name:    "nil format",
			buf:     &audio.IntBuffer{Data: []int{1}},
			wantErr: ErrEmptyBuffer,
		},
		{
			name:    "nil data",
			buf:     &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}},
			wantErr: ErrEmptyBuffer,
		},
		{
			name: "24-bit source",
			buf: &audio.IntBuffer{
				Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
				SourceBitDepth: 24,
				Data:           []int{1 << 20},
			},
			wantErr: ErrUnsupportedBitDepth,
		},
		{
			name: "zero channels",
			buf: &audio.IntBuffer{
				Format:         &audio.Format{NumChannels: 0, SampleRate: 8000},
				SourceBitDepth: 16,
				Data:           []int{1, 2},
			},
			wantErr: ErrInvalidHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromIntBuffer(tt.buf)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FromIntBuffer()=%v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClipBufferRoundTrip(t *testing.T) {
	in := testClip(t, 2, 32)

	out, err := FromIntBuffer(in.IntBuffer())
	if err != nil {
		t.Fatalf("FromIntBuffer failed: %v", err)
	}

	if out.Header != in.Header {
		t.Fatalf("header mismatch\ngot:  %+v\nwant: %+v", out.Header, in.Header)
	}

	if !reflect.DeepEqual(out.Samples, in.Samples) {
		t.Fatal("samples do not survive the buffer round trip")
	}
}
