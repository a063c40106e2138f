package pcmwav_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/cwbudde/pcmwav"
)

func ExampleEncode() {
	format := pcmwav.Format{SampleRate: 44100, NumChans: 2, BitDepth: 16}

	var buf bytes.Buffer
	if err := pcmwav.Encode(&buf, []int{100, -100, 200, -200}, format); err != nil {
		log.Fatal(err)
	}

	fmt.Println(buf.Len(), "bytes")
	fmt.Printf("% x\n", buf.Bytes()[36:])
	// Output:
	// 52 bytes
	// 64 61 74 61 08 00 00 00 64 00 9c ff c8 00 38 ff
}

func ExampleDecode() {
	format := pcmwav.Format{SampleRate: 8000, NumChans: 1, BitDepth: 8}

	b, err := pcmwav.EncodeBytes([]int{0, 128, 255, 128}, format)
	if err != nil {
		log.Fatal(err)
	}

	data, err := pcmwav.Decode(bytes.NewReader(b))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(data.Format)
	fmt.Println(data.Samples, data.Duration())
	// Output:
	// 8000 Hz @ 8 bits, 1 channel(s)
	// [0 128 255 128] 500µs
}

func ExampleReadInfo() {
	format := pcmwav.Format{SampleRate: 22050, NumChans: 1, BitDepth: 16}

	b, err := pcmwav.EncodeBytes(make([]int, 22050), format)
	if err != nil {
		log.Fatal(err)
	}

	info, err := pcmwav.ReadInfo(bytes.NewReader(b))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(info.Codec(), info.Duration())

	for _, ch := range info.Chunks {
		fmt.Printf("%q %d\n", ch.ID, ch.Size)
	}
	// Output:
	// PCM 1s
	// "fmt " 16
	// "data" 44100
}
