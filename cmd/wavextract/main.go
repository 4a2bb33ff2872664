// This tool pulls a single channel out of a multi-channel wav file and
// writes it to a new mono wav file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/cwbudde/pcmwav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingPaths = errors.New("both -in and -out must be set")

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavextract", flag.ContinueOnError)

	input := flagSet.String("in", "", "path of the wav file to read")
	output := flagSet.String("out", "", "path of the mono wav file to write")
	channel := flagSet.Int("channel", 0, "zero-based index of the channel to extract")
	frames := flagSet.Int("frames", -1, "number of frames to extract, -1 for everything")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *input == "" || *output == "" {
		return errMissingPaths
	}

	clip, err := pcmwav.ReadFile(*input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", *input, err)
	}

	mono, err := clip.ExtractChannel(*channel, *frames)
	if err != nil {
		return err
	}

	if err := pcmwav.WriteFile(*output, mono); err != nil {
		return err
	}

	log.Printf("extracted channel %d of %d (%d frames) into %s",
		*channel, clip.Header.NbChannels, mono.Header.NumFrames(), *output)

	return nil
}
