// Package format defines the mode enumerations shared by the bytesight
// encoding pipeline and the pure functions derived from them.
package format

type (
	ClockMode       uint8
	PackMode        uint8
	MapMode         uint8
	AlphaMode       uint8
	CompressionType uint8
)

const (
	// ClockBlock replaces the whole window each step.
	ClockBlock ClockMode = 0x1
	// ClockSlide shifts the window left by the ingested chunk and appends
	// at the tail, stepping once per full window.
	ClockSlide ClockMode = 0x2

	// PackTight consumes 4 raw bytes per pixel, mapped straight to R,G,B,A.
	PackTight PackMode = 0x1
	// PackTightNoAlpha consumes 3 raw bytes per pixel; alpha comes from the
	// channel's alpha buffer.
	PackTightNoAlpha PackMode = 0x2
	// PackIntensity consumes 1 raw byte per pixel, replicated to R,G,B.
	PackIntensity PackMode = 0x3
	// PackHistIntensity consumes 1 raw byte per pixel, substituted through
	// the (normalized) histogram count as an intensity value.
	PackHistIntensity PackMode = 0x4

	// MapWrap lays units out in raster order.
	MapWrap MapMode = 0x1
	// MapTuple reads the pixel coordinate from the first two bytes of each
	// unit, scaled to the frame dimension.
	MapTuple MapMode = 0x2
	// MapHilbert places units along a precomputed Hilbert curve, keeping
	// nearby stream offsets spatially close.
	MapHilbert MapMode = 0x3

	// AlphaFull leaves every unit fully opaque.
	AlphaFull AlphaMode = 0x1
	// AlphaPattern derives alpha from pattern matches over the window.
	AlphaPattern AlphaMode = 0x2
	// AlphaEntropy derives alpha from per-block Shannon entropy.
	AlphaEntropy AlphaMode = 0x3

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents a Zstandard stream.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents an S2 stream.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents an LZ4 stream.
)

func (c ClockMode) String() string {
	switch c {
	case ClockBlock:
		return "Block"
	case ClockSlide:
		return "Slide"
	default:
		return "Unknown"
	}
}

// Valid reports whether the clock mode is a known value.
func (c ClockMode) Valid() bool {
	return c == ClockBlock || c == ClockSlide
}

func (p PackMode) String() string {
	switch p {
	case PackTight:
		return "Tight"
	case PackTightNoAlpha:
		return "TightNoAlpha"
	case PackIntensity:
		return "Intensity"
	case PackHistIntensity:
		return "HistIntensity"
	default:
		return "Unknown"
	}
}

// Valid reports whether the packing mode is a known value.
func (p PackMode) Valid() bool {
	return p >= PackTight && p <= PackHistIntensity
}

func (m MapMode) String() string {
	switch m {
	case MapWrap:
		return "Wrap"
	case MapTuple:
		return "Tuple"
	case MapHilbert:
		return "Hilbert"
	default:
		return "Unknown"
	}
}

// Valid reports whether the mapping mode is a known value.
func (m MapMode) Valid() bool {
	return m >= MapWrap && m <= MapHilbert
}

func (a AlphaMode) String() string {
	switch a {
	case AlphaFull:
		return "Full"
	case AlphaPattern:
		return "Pattern"
	case AlphaEntropy:
		return "Entropy"
	default:
		return "Unknown"
	}
}

// Valid reports whether the alpha mode is a known value.
func (a AlphaMode) Valid() bool {
	return a >= AlphaFull && a <= AlphaEntropy
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// UnitSize returns the number of raw bytes consumed per output pixel for a
// (packing, mapping) pair. The packing mode sets the payload size and tuple
// mapping adds two leading coordinate bytes per unit.
//
// The cross product is the single source of truth for buffer sizing: a
// channel whose raw buffer differs from base²·UnitSize must resize.
func UnitSize(p PackMode, m MapMode) int {
	var n int
	switch p {
	case PackTight:
		n = 4
	case PackTightNoAlpha:
		n = 3
	case PackIntensity, PackHistIntensity:
		n = 1
	default:
		n = 1
	}

	if m == MapTuple {
		n += 2
	}

	return n
}
