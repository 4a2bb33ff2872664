// This tool generates a wav file holding one sine tone per channel, channel
// n playing (n+1) times the base frequency. Handy for producing small
// multi-channel inputs for wavextract.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/cwbudde/pcmwav"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavgen", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "base frequency in hertz")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	rate := flagSet.Int("rate", 48000, "sample rate in hertz")
	channels := flagSet.Int("channels", 2, "number of channels to generate")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *channels < 1 || *channels > pcmwav.MaxChannels {
		return fmt.Errorf("channels must be between 1 and %d, got %d", pcmwav.MaxChannels, *channels)
	}

	log.Printf("generating %f sec of %d-channel sine at %f hz base", *length, *channels, *frequency)

	numFrames := int(float64(*rate) * *length)
	numChans := *channels
	samples := make([]int16, numFrames*numChans)

	for f := 0; f < numFrames; f++ {
		for c := 0; c < numChans; c++ {
			fv := math.Sin(float64(f) / float64(*rate) * *frequency * float64(c+1) * 2 * math.Pi)
			samples[f*numChans+c] = int16(fv * math.MaxInt16)
		}
	}

	clip := &pcmwav.Clip{
		Header:  pcmwav.NewHeader(*rate, 16, numChans, numFrames),
		Samples: samples,
	}

	return pcmwav.WriteFile(*output, clip)
}
