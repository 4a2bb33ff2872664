// This tool prints the header fields and duration of the passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	dec := pcmwav.NewDecoder(file)
	if err := dec.ReadHeader(); err != nil {
		return err
	}

	h := dec.Header

	fmt.Fprintf(out, "Container: %s/%s\n", h.FileTypeChunkID[:], h.FileFormatID[:])
	fmt.Fprintf(out, "AudioFormat: %d\n", h.AudioFormat)
	fmt.Fprintf(out, "Channels: %d\n", h.NbChannels)
	fmt.Fprintf(out, "SampleRate: %d\n", h.SampleRate)
	fmt.Fprintf(out, "BitsPerSample: %d\n", h.BitsPerSample)
	fmt.Fprintf(out, "BytePerSec: %d\n", h.BytePerSec)
	fmt.Fprintf(out, "BytePerChunk: %d\n", h.BytePerChunk)
	fmt.Fprintf(out, "DataSize: %d\n", h.DataSize)
	fmt.Fprintf(out, "Frames: %d\n", h.NumFrames())
	fmt.Fprintf(out, "Duration: %s\n", h.Duration())

	if err := h.Validate(); err != nil {
		fmt.Fprintf(out, "Consistent: no (%v)\n", err)
	} else {
		fmt.Fprintln(out, "Consistent: yes")
	}

	return nil
}
