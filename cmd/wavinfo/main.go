// This tool prints the layout, format and metadata of a wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/pcmwav"
	"github.com/cwbudde/pcmwav/internal/config"
	"github.com/cwbudde/pcmwav/internal/pcm"
)

const missingPathMessage = "You must pass the path of the file to inspect"

var errMissingPath = errors.New("missing path argument")

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	log := cfg.Logger()

	err = run(os.Args[1:], os.Stdout, log)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

func run(args []string, out io.Writer, log logrus.FieldLogger) error {
	if len(args) < 1 {
		return errMissingPath
	}

	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := pcmwav.ReadInfo(file)
	if err != nil {
		return fmt.Errorf("failed to inspect %s: %w", path, err)
	}

	fmt.Fprintf(out, "File: %s\n", path)
	fmt.Fprintf(out, "Codec: %s\n", info.Codec())
	fmt.Fprintf(out, "Format: %s\n", info.Format)
	fmt.Fprintf(out, "Duration: %s\n", info.Duration())
	fmt.Fprintf(out, "RIFF size: %d\n", info.RIFFSize)
	fmt.Fprintf(out, "Data size: %d\n", info.DataSize)

	fmt.Fprintln(out, "Chunks:")

	for i, c := range info.Chunks {
		fmt.Fprintf(out, "\tchunk [%d]:\t%q %d bytes\n", i, c.ID, c.Size)
	}

	printMetadata(out, info.Metadata)
	printSampler(out, info.Sampler)

	if !info.IsPCM() {
		log.WithField("codec", info.Codec()).Debug("skipping level analysis of non PCM stream")
		return nil
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind %s: %w", path, err)
	}

	data, err := pcmwav.Decode(file)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}

	for ch, peak := range pcm.Peak(data.Samples, int(data.Format.NumChans), int(data.Format.BitDepth)) {
		fmt.Fprintf(out, "Peak ch%d: %.2f dBFS\n", ch, pcm.Decibels(peak))
	}

	return nil
}

func printMetadata(out io.Writer, md *pcmwav.Metadata) {
	if md == nil {
		fmt.Fprintln(out, "No metadata present")
		return
	}

	fmt.Fprintf(out, "Artist: %s\n", md.Artist)
	fmt.Fprintf(out, "Title: %s\n", md.Title)
	fmt.Fprintf(out, "Comments: %s\n", md.Comments)
	fmt.Fprintf(out, "Copyright: %s\n", md.Copyright)
	fmt.Fprintf(out, "CreationDate: %s\n", md.CreationDate)
	fmt.Fprintf(out, "Engineer: %s\n", md.Engineer)
	fmt.Fprintf(out, "Technician: %s\n", md.Technician)
	fmt.Fprintf(out, "Genre: %s\n", md.Genre)
	fmt.Fprintf(out, "Keywords: %s\n", md.Keywords)
	fmt.Fprintf(out, "Medium: %s\n", md.Medium)
	fmt.Fprintf(out, "Product: %s\n", md.Product)
	fmt.Fprintf(out, "Subject: %s\n", md.Subject)
	fmt.Fprintf(out, "Software: %s\n", md.Software)
	fmt.Fprintf(out, "Source: %s\n", md.Source)
	fmt.Fprintf(out, "Location: %s\n", md.Location)
	fmt.Fprintf(out, "TrackNbr: %s\n", md.TrackNbr)
}

func printSampler(out io.Writer, smpl *pcmwav.SamplerInfo) {
	if smpl == nil {
		return
	}

	fmt.Fprintf(out, "Sampler: unity note %d, %d loop(s)\n", smpl.MIDIUnityNote, len(smpl.Loops))

	for i, l := range smpl.Loops {
		fmt.Fprintf(out, "\tloop [%d]:\tframes %d-%d, play count %d\n", i, l.Start, l.End, l.PlayCount)
	}
}
