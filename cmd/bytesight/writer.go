package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"

	"github.com/ericpauley/go-quantize/quantize"
)

// frameWriter fans completed frames out to a PNG directory and/or an
// animated GIF. With no destination configured frames are counted and
// dropped, which keeps event-only runs cheap.
type frameWriter struct {
	dir     string
	gifPath string

	anim    gif.GIF
	n       int
	discard int
}

func newFrameWriter(dir, gifPath string) (*frameWriter, error) {
	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	return &frameWriter{dir: dir, gifPath: gifPath}, nil
}

// discardNext drops the next frame before it reaches any destination.
func (w *frameWriter) discardNext() {
	w.discard++
}

func (w *frameWriter) add(m *image.RGBA) error {
	if w.discard > 0 {
		w.discard--
		return nil
	}
	w.n++

	if w.dir != "" {
		name := filepath.Join(w.dir, fmt.Sprintf("frame-%04d.png", w.n))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := png.Encode(f, m); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	if w.gifPath != "" {
		q := quantize.MedianCutQuantizer{}
		palette := q.Quantize(make(color.Palette, 0, 256), m)
		pm := image.NewPaletted(m.Bounds(), palette)
		draw.Draw(pm, m.Bounds(), m, image.Point{}, draw.Src)
		w.anim.Image = append(w.anim.Image, pm)
		w.anim.Delay = append(w.anim.Delay, 10)
	}

	return nil
}

func (w *frameWriter) count() int { return w.n }

func (w *frameWriter) finish() error {
	if w.gifPath == "" || len(w.anim.Image) == 0 {
		return nil
	}

	f, err := os.Create(w.gifPath)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &w.anim); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
