// This tool converts a PCM wav file into an identical aiff file and stores
// it in the same folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/go-audio/aiff"
	"github.com/go-audio/audio"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/pcmwav"
	"github.com/cwbudde/pcmwav/internal/config"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := cfg.Logger()
	if err := run(os.Args[1:], log); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, log logrus.FieldLogger) error {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	sourcePath := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	outPath := flagSet.String("output", "", "Destination path, defaults to the source path with an .aif extension")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *sourcePath == "" {
		return errMissingPath
	}

	src, err := expandHome(*sourcePath)
	if err != nil {
		return err
	}

	dst := *outPath
	if dst == "" {
		dst = src[:len(src)-len(filepath.Ext(src))] + ".aif"
	}

	data, err := pcmwav.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", src, err)
	}

	if err := writeAIFF(dst, data); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"source": src,
		"output": dst,
		"frames": data.NumFrames(),
		"format": data.Format.String(),
	}).Info("wav file converted")

	return nil
}

func writeAIFF(path string, data *pcmwav.Data) error {
	outFile, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encoder := aiff.NewEncoder(outFile, int(data.Format.SampleRate), int(data.Format.BitDepth), int(data.Format.NumChans))

	if err := encoder.Write(aiffBuffer(data)); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := encoder.Close(); err != nil {
		outFile.Close()
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	if err := outFile.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}

// aiffBuffer adapts wav samples to aiff. Both formats agree on signed samples
// except at 8 bits, where wav is unsigned and aiff is signed.
func aiffBuffer(data *pcmwav.Data) *audio.IntBuffer {
	buf := data.IntBuffer()
	if data.Format.BitDepth != 8 {
		return buf
	}

	signed := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		signed[i] = v - 128
	}

	buf.Data = signed

	return buf
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}
