// Command fftanalyze demonstrates the engine end to end: generate a
// synthetic tone, window and transform one frame of it, and print the
// resulting spectrum's loudest bins.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/nilripper/fftanalyzer/analyzer"
	"github.com/nilripper/fftanalyzer/audio"
	"github.com/nilripper/fftanalyzer/window"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "fftanalyze"
	myApp.Usage = "synthetic-tone spectrum analyzer demo"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.IntFlag{
			Name:  "size,n",
			Value: 2048,
			Usage: "frame size in samples",
		},
		cli.Float64Flag{
			Name:  "samplerate,r",
			Value: 48000,
			Usage: "sample rate in Hz",
		},
		cli.Float64Flag{
			Name:  "freq,f",
			Value: 1000,
			Usage: "synthetic tone frequency in Hz",
		},
		cli.StringFlag{
			Name:  "window,w",
			Value: "hanning",
			Usage: "window function: rectangular, hanning, hamming, blackman",
		},
		cli.IntFlag{
			Name:  "top",
			Value: 10,
			Usage: "number of loudest bins to print",
		},
	}
	myApp.Action = run

	if err := myApp.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(c *cli.Context) error {
	kind, err := parseWindow(c.String("window"))
	if err != nil {
		return errors.Wrap(err, "parseWindow()")
	}

	size := c.Int("size")
	if size <= 0 {
		return errors.Errorf("size must be positive, got %d", size)
	}

	src := audio.NewToneSource(c.Float64("samplerate"), c.Float64("freq"))
	a := analyzer.New(src, size, kind)

	spectrum, ok := a.NextFrame()
	if !ok {
		return errors.New("source exhausted before producing a frame")
	}

	printTopBins(spectrum, c.Int("top"))
	return nil
}

func parseWindow(name string) (window.Kind, error) {
	switch name {
	case "rectangular":
		return window.Rectangular, nil
	case "hanning":
		return window.Hanning, nil
	case "hamming":
		return window.Hamming, nil
	case "blackman":
		return window.Blackman, nil
	default:
		return 0, errors.Errorf("unknown window %q", name)
	}
}

func printTopBins(spectrum []float32, top int) {
	idx := make([]int, len(spectrum))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return spectrum[idx[i]] > spectrum[idx[j]]
	})
	if top > len(idx) {
		top = len(idx)
	}
	for _, bin := range idx[:top] {
		fmt.Printf("bin %5d  %8.2f dB\n", bin, spectrum[bin])
	}
}
