package main

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cwbudde/pcmwav"
)

func writeStereoWav(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stereo.wav")

	clip := &pcmwav.Clip{
		Header: pcmwav.NewHeader(8000, 16, 2, 4),
		Samples: []int16{
			10, -10,
			20, -20,
			30, -30,
			40, -40,
		},
	}

	if err := pcmwav.WriteFile(path, clip); err != nil {
		t.Fatalf("failed to write test wav: %v", err)
	}

	return path
}

func TestRunExtractsChannel(t *testing.T) {
	in := writeStereoWav(t)
	out := filepath.Join(t.TempDir(), "mono.wav")

	err := run([]string{"-in", in, "-out", out, "-channel", "1"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got, err := pcmwav.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read extracted file: %v", err)
	}

	if got.Header.NbChannels != 1 {
		t.Fatalf("channels=%d, want 1", got.Header.NbChannels)
	}

	if want := []int16{-10, -20, -30, -40}; !reflect.DeepEqual(got.Samples, want) {
		t.Fatalf("samples=%v, want %v", got.Samples, want)
	}
}

func TestRunLimitsFrames(t *testing.T) {
	in := writeStereoWav(t)
	out := filepath.Join(t.TempDir(), "mono.wav")

	err := run([]string{"-in", in, "-out", out, "-frames", "2"})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	got, err := pcmwav.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read extracted file: %v", err)
	}

	if want := []int16{10, 20}; !reflect.DeepEqual(got.Samples, want) {
		t.Fatalf("samples=%v, want %v", got.Samples, want)
	}
}

func TestRunRequiresPaths(t *testing.T) {
	err := run([]string{"-channel", "0"})
	if !errors.Is(err, errMissingPaths) {
		t.Fatalf("run()=%v, want %v", err, errMissingPaths)
	}
}

func TestRunRejectsMissingChannel(t *testing.T) {
	in := writeStereoWav(t)
	out := filepath.Join(t.TempDir(), "mono.wav")

	err := run([]string{"-in", in, "-out", out, "-channel", "5"})
	if !errors.Is(err, pcmwav.ErrInvalidChannel) {
		t.Fatalf("run()=%v, want %v", err, pcmwav.ErrInvalidChannel)
	}
}

func TestRunFlagParseError(t *testing.T) {
	if err := run([]string{"-frames", "not-a-number"}); err == nil {
		t.Fatal("expected failure for invalid flag value")
	}
}

func TestRunMissingInput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "mono.wav")

	if err := run([]string{"-in", "no-such.wav", "-out", out}); err == nil {
		t.Fatal("expected failure for missing input file")
	}
}
