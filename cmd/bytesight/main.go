package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bytesight/bytesight"
	"github.com/bytesight/bytesight/channel"
	"github.com/bytesight/bytesight/event"
	"github.com/bytesight/bytesight/format"
	"github.com/bytesight/bytesight/frame"
	"github.com/bytesight/bytesight/source"
)

func main() {
	app := cli.NewApp()

	app.Name = "bytesight"
	app.Usage = "visual byte-stream introspection"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "log sideband events to stderr",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "Encode a byte stream into pixel frames",
			ArgsUsage: "FILE ('-' for stdin)",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "base",
					Value: 64,
					Usage: "square frame dimension in pixels",
				},
				&cli.StringFlag{
					Name:  "pack",
					Value: "intensity",
					Usage: "packing mode: intensity, hist-intensity, tight, tight-noalpha",
				},
				&cli.StringFlag{
					Name:  "map",
					Value: "wrap",
					Usage: "mapping mode: wrap, tuple, hilbert",
				},
				&cli.StringFlag{
					Name:  "clock",
					Value: "block",
					Usage: "clock mode: block, slide",
				},
				&cli.StringFlag{
					Name:  "alpha",
					Value: "entropy",
					Usage: "alpha mode: full, pattern, entropy",
				},
				&cli.StringFlag{
					Name:  "compression",
					Value: "none",
					Usage: "input stream compression: none, zstd, s2, lz4",
				},
				&cli.StringSliceFlag{
					Name:  "pattern",
					Usage: "comma-separated hex byte pattern (repeatable)",
				},
				&cli.IntFlag{
					Name:  "chunk",
					Value: 4096,
					Usage: "read chunk size in bytes",
				},
				&cli.IntFlag{
					Name:  "frames",
					Usage: "stop after this many frames (0 = until EOF)",
				},
				&cli.BoolFlag{
					Name:  "flush",
					Usage: "force a final frame from a partial window at EOF",
				},
				&cli.StringFlag{
					Name:  "out",
					Usage: "directory for numbered PNG frames",
				},
				&cli.StringFlag{
					Name:  "gif",
					Usage: "write all frames as an animated GIF to this path",
				},
				&cli.StringFlag{
					Name:  "db",
					Usage: "record the event stream into this SQLite database",
				},
			},
			Action: render,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func render(c *cli.Context) error {
	if c.NArg() < 1 {
		cli.ShowCommandHelpAndExit(c, "render", 1)
	}

	logger := log.New(io.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(os.Stderr)
	}

	input := os.Stdin
	if name := c.Args().First(); name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer f.Close()
		input = f
	}

	comp, err := source.ParseCompression(c.String("compression"))
	if err != nil {
		return cli.Exit(err, 1)
	}
	r, err := source.NewReader(input, comp)
	if err != nil {
		return cli.Exit(err, 1)
	}

	opts, err := modeOptions(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	base := c.Int("base")
	writer, err := newFrameWriter(c.String("out"), c.String("gif"))
	if err != nil {
		return cli.Exit(err, 1)
	}

	surface := frame.NewBuffer(base, base, func(b *frame.Buffer) {
		if err := writer.add(b.Image()); err != nil {
			logger.Printf("frame write: %v", err)
		}
	})
	queue := &event.Buffer{}

	// channel construction resizes and emits a frame in the starting
	// geometry; output should begin with real data
	writer.discardNext()

	ch, err := bytesight.New(surface, queue, opts...)
	if err != nil {
		return cli.Exit(err, 1)
	}

	if specs := c.StringSlice("pattern"); len(specs) > 0 {
		if err := ch.AddPatternSpecs(specs); err != nil {
			return cli.Exit(err, 1)
		}
	}

	var recorder *eventDB
	if path := c.String("db"); path != "" {
		recorder, err = openEventDB(path)
		if err != nil {
			return cli.Exit(err, 1)
		}
		defer recorder.Close()
	}

	drain := func() error {
		for _, ev := range queue.Drain() {
			logger.Printf("%s: %+v", ev.Kind(), ev)
			if recorder != nil {
				if err := recorder.record(surface.Frames(), ev); err != nil {
					return err
				}
			}
		}

		return nil
	}

	if err := drain(); err != nil {
		return cli.Exit(err, 1)
	}

	maxFrames := c.Int("frames")
	buf := make([]byte, c.Int("chunk"))

ingest:
	for {
		n, rerr := r.Read(buf)
		rest := buf[:n]
		for len(rest) > 0 {
			consumed, _ := ch.Ingest(rest)
			rest = rest[consumed:]
			if err := drain(); err != nil {
				return cli.Exit(err, 1)
			}
			if maxFrames > 0 && writer.count() >= maxFrames {
				break ingest
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return cli.Exit(rerr, 1)
		}
	}

	if c.Bool("flush") && ch.Left() < ch.Base()*ch.Base()*ch.UnitSize() {
		ch.Tick()
		if err := drain(); err != nil {
			return cli.Exit(err, 1)
		}
	}

	if err := writer.finish(); err != nil {
		return cli.Exit(err, 1)
	}
	logger.Printf("%d frames", writer.count())

	return nil
}

func modeOptions(c *cli.Context) ([]channel.Option, error) {
	clock, err := parseClock(c.String("clock"))
	if err != nil {
		return nil, err
	}
	pack, err := parsePack(c.String("pack"))
	if err != nil {
		return nil, err
	}
	mapm, err := parseMap(c.String("map"))
	if err != nil {
		return nil, err
	}
	alpha, err := parseAlpha(c.String("alpha"))
	if err != nil {
		return nil, err
	}

	return []channel.Option{
		channel.WithClock(clock),
		channel.WithPacking(pack),
		channel.WithMapping(mapm),
		channel.WithAlpha(alpha),
	}, nil
}

func parseClock(name string) (format.ClockMode, error) {
	switch name {
	case "block":
		return format.ClockBlock, nil
	case "slide":
		return format.ClockSlide, nil
	default:
		return 0, fmt.Errorf("unknown clock mode %q", name)
	}
}

func parsePack(name string) (format.PackMode, error) {
	switch name {
	case "intensity":
		return format.PackIntensity, nil
	case "hist-intensity":
		return format.PackHistIntensity, nil
	case "tight":
		return format.PackTight, nil
	case "tight-noalpha":
		return format.PackTightNoAlpha, nil
	default:
		return 0, fmt.Errorf("unknown packing mode %q", name)
	}
}

func parseMap(name string) (format.MapMode, error) {
	switch name {
	case "wrap":
		return format.MapWrap, nil
	case "tuple":
		return format.MapTuple, nil
	case "hilbert":
		return format.MapHilbert, nil
	default:
		return 0, fmt.Errorf("unknown mapping mode %q", name)
	}
}

func parseAlpha(name string) (format.AlphaMode, error) {
	switch name {
	case "full":
		return format.AlphaFull, nil
	case "pattern":
		return format.AlphaPattern, nil
	case "entropy":
		return format.AlphaEntropy, nil
	default:
		return 0, fmt.Errorf("unknown alpha mode %q", name)
	}
}
