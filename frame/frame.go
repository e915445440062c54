// Package frame provides the pixel surface a channel encodes into.
//
// A Surface is the caller-owned video buffer: a fixed width×height array of
// packed RGBA pixels plus a Signal hook fired once per completed step. The
// encoding pipeline only ever writes pixels and signals; everything else
// (display, transport, compositing) belongs to the consumer.
package frame

import (
	"image"
	"image/color"
)

// Pixel is one packed RGBA pixel, 8 bits per channel, R in the low byte.
type Pixel uint32

// RGBA packs four 8-bit channels into a Pixel.
func RGBA(r, g, b, a uint8) Pixel {
	return Pixel(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// Black is an opaque black pixel, used to clear sparse mappings.
const Black = Pixel(0xff000000)

func (p Pixel) R() uint8 { return uint8(p) }
func (p Pixel) G() uint8 { return uint8(p >> 8) }
func (p Pixel) B() uint8 { return uint8(p >> 16) }
func (p Pixel) A() uint8 { return uint8(p >> 24) }

// Surface is the output target of a channel. Implementations own a pixel
// buffer of exactly Width()*Height() entries; the channel writes into Pix()
// in place and calls Signal once per completed step.
//
// Surfaces are not safe for concurrent use; the channel and its driver are
// expected to share one control loop.
type Surface interface {
	Width() int
	Height() int
	Pix() []Pixel
	Signal()
}

// Buffer is an in-memory Surface. The zero value is not usable; create one
// with NewBuffer.
type Buffer struct {
	width  int
	height int
	pix    []Pixel

	onSignal func(*Buffer)
	frames   uint64
}

var _ Surface = (*Buffer)(nil)

// NewBuffer creates a width×height in-memory surface. onSignal may be nil;
// when set it runs synchronously inside Signal, after the frame contents are
// complete.
func NewBuffer(width, height int, onSignal func(*Buffer)) *Buffer {
	return &Buffer{
		width:    width,
		height:   height,
		pix:      make([]Pixel, width*height),
		onSignal: onSignal,
	}
}

func (b *Buffer) Width() int   { return b.width }
func (b *Buffer) Height() int  { return b.height }
func (b *Buffer) Pix() []Pixel { return b.pix }

// Signal marks the current pixel contents as one complete frame.
func (b *Buffer) Signal() {
	b.frames++
	if b.onSignal != nil {
		b.onSignal(b)
	}
}

// Frames returns the number of frames signaled so far.
func (b *Buffer) Frames() uint64 { return b.frames }

// Image copies the current pixel contents into a standard RGBA image.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i, p := range b.pix {
		img.SetRGBA(i%b.width, i/b.width, color.RGBA{R: p.R(), G: p.G(), B: p.B(), A: p.A()})
	}

	return img
}
