// Package encoding provides the interchangeable strategies of the pixel
// pipeline: Packers turn one unit of raw bytes into a packed pixel, and
// Mappers place a unit's pixel in the frame.
//
// Strategies are selected by the mode enums in the format package; the
// channel rebuilds its packer/mapper pair on every mode switch.
package encoding

import (
	"fmt"

	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/format"
	"github.com/bytesight/bytesight/frame"
	"github.com/bytesight/bytesight/histogram"
)

// Packer converts one unit payload plus an alpha sample into a pixel. The
// payload excludes any leading mapping bytes; its length is the packing
// mode's payload size.
type Packer interface {
	Pack(payload []byte, alpha byte) frame.Pixel
}

type tightPacker struct{}

// Pack maps four raw bytes straight onto R,G,B,A; the derived alpha sample
// is ignored.
func (tightPacker) Pack(payload []byte, _ byte) frame.Pixel {
	return frame.RGBA(payload[0], payload[1], payload[2], payload[3])
}

type tightNoAlphaPacker struct{}

func (tightNoAlphaPacker) Pack(payload []byte, alpha byte) frame.Pixel {
	return frame.RGBA(payload[0], payload[1], payload[2], alpha)
}

type intensityPacker struct{}

func (intensityPacker) Pack(payload []byte, alpha byte) frame.Pixel {
	v := payload[0]
	return frame.RGBA(v, v, v, alpha)
}

// histIntensityPacker substitutes each byte with its histogram count. The
// channel normalizes the histogram to 0..255 before the packing pass, so the
// count is usable as an intensity directly.
type histIntensityPacker struct {
	hist *histogram.Histogram
}

func (p histIntensityPacker) Pack(payload []byte, alpha byte) frame.Pixel {
	v := uint8(p.hist.Count(payload[0]))
	return frame.RGBA(v, v, v, alpha)
}

// NewPacker returns the Packer for the given packing mode. PackHistIntensity
// samples hist at pack time; the other modes ignore it.
func NewPacker(mode format.PackMode, hist *histogram.Histogram) (Packer, error) {
	switch mode {
	case format.PackTight:
		return tightPacker{}, nil
	case format.PackTightNoAlpha:
		return tightNoAlphaPacker{}, nil
	case format.PackIntensity:
		return intensityPacker{}, nil
	case format.PackHistIntensity:
		return histIntensityPacker{hist: hist}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidPackMode, mode)
	}
}
