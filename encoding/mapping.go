package encoding

import (
	"fmt"

	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/format"
)

// Mapper resolves where a unit's pixel lands in a base×base frame.
//
// Map receives the whole raw unit and its linear offset, and returns the
// pixel coordinate plus the number of leading unit bytes consumed for the
// coordinate itself (nonzero only for tuple mapping). Sparse reports whether
// the mapping can leave pixels unaddressed, in which case the frame must be
// cleared before the mapping pass.
type Mapper interface {
	Map(unit []byte, ofs int) (x, y, skip int)
	Sparse() bool
}

type wrapMapper struct {
	base int
}

func (m wrapMapper) Map(_ []byte, ofs int) (int, int, int) {
	return ofs % m.base, ofs / m.base, 0
}

func (wrapMapper) Sparse() bool { return false }

// tupleMapper reads the coordinate from the first two unit bytes, each
// scaled by (base-1)/255 to cover the frame.
type tupleMapper struct {
	sfX, sfY float64
}

func (m tupleMapper) Map(unit []byte, _ int) (int, int, int) {
	x := int(float64(unit[0])*m.sfX + 0.5)
	y := int(float64(unit[1])*m.sfY + 0.5)

	return x, y, 2
}

func (tupleMapper) Sparse() bool { return true }

type hilbertMapper struct {
	lut []uint16
}

func (m hilbertMapper) Map(_ []byte, ofs int) (int, int, int) {
	return int(m.lut[ofs*2]), int(m.lut[ofs*2+1]), 0
}

func (hilbertMapper) Sparse() bool { return false }

// NewMapper returns the Mapper for the given mode and frame base. Hilbert
// mapping precomputes its coordinate LUT here; wrap and tuple compute
// coordinates algebraically.
func NewMapper(mode format.MapMode, base int) (Mapper, error) {
	if base <= 0 {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBase, base)
	}

	switch mode {
	case format.MapWrap:
		return wrapMapper{base: base}, nil
	case format.MapTuple:
		sf := float64(base-1) / 255.0
		return tupleMapper{sfX: sf, sfY: sf}, nil
	case format.MapHilbert:
		return hilbertMapper{lut: hilbertLUT(base)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidMapMode, mode)
	}
}
