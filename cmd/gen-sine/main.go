package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/pcmwav"
	"github.com/cwbudde/pcmwav/internal/config"
	"github.com/cwbudde/pcmwav/internal/pcm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := cfg.Logger()
	if err := run(os.Args[1:], cfg, log); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, cfg config.Config, log logrus.FieldLogger) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	amplitude := flagSet.Float64("amplitude", 1, "peak amplitude between 0 and 1")
	sampleRate := flagSet.Int("rate", cfg.SampleRate, "sample rate in hertz")
	bitDepth := flagSet.Int("bits", cfg.BitDepth, "bits per sample: 8, 16, 24 or 32")
	channels := flagSet.Int("channels", cfg.Channels, "number of channels, all carry the same tone")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	if *length < 0 || *sampleRate <= 0 || uint64(*sampleRate) > math.MaxUint32 ||
		*channels <= 0 || *channels > math.MaxUint16 || *bitDepth <= 0 || *bitDepth > math.MaxUint16 {
		return fmt.Errorf("%w: rate=%d bits=%d channels=%d length=%f", pcmwav.ErrInvalidFormat, *sampleRate, *bitDepth, *channels, *length)
	}

	format := pcmwav.Format{
		SampleRate: uint32(*sampleRate),
		NumChans:   uint16(*channels),
		BitDepth:   uint16(*bitDepth),
	}

	if err := format.Validate(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"output":    *output,
		"frequency": *frequency,
		"length":    *length,
		"format":    format.String(),
	}).Info("generating sine wave")

	numFrames := int(float64(*sampleRate) * *length)
	samples := make([]int, 0, numFrames*(*channels))

	for i := 0; i < numFrames; i++ {
		fv := *amplitude * math.Sin(float64(i)/float64(*sampleRate)*(*frequency)*2*math.Pi)

		v := pcm.Quantize(fv, *bitDepth)
		for c := 0; c < *channels; c++ {
			samples = append(samples, v)
		}
	}

	if err := pcmwav.WriteFile(*output, samples, format); err != nil {
		return fmt.Errorf("error writing %s: %w", *output, err)
	}

	log.WithField("frames", numFrames).Debug("sine wave written")

	return nil
}
