// This tool converts a canonical PCM wav file into an identical aiff file
// and stores it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/pcmwav"
	"github.com/go-audio/aiff"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

var errMissingPath = errors.New("you must set the -path flag")

func run(args []string) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	clip, err := pcmwav.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	outPath := sourcePath[:len(sourcePath)-len(filepath.Ext(sourcePath))] + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	enc := aiff.NewEncoder(outFile,
		int(clip.Header.SampleRate),
		int(clip.Header.BitsPerSample),
		int(clip.Header.NbChannels))

	if err := enc.Write(clip.IntBuffer()); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to encode aiff: %w", err)
	}

	if err := enc.Close(); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to finalize aiff: %w", err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", outPath, err)
	}

	log.Printf("wav file converted to %s", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to resolve the user home directory: %w", err)
	}

	return strings.Replace(path, "~", usr.HomeDir, 1), nil
}
