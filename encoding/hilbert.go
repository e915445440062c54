package encoding

// Hilbert curve distance-to-coordinate conversion. Only used to populate the
// LUT on resize or mode switch, so the simple iterative form is fine.

func hilbertRot(n int, x, y *int, rx, ry int) {
	if ry == 0 {
		if rx == 1 {
			*x = n - 1 - *x
			*y = n - 1 - *y
		}
		*x, *y = *y, *x
	}
}

func hilbertD2XY(n, d int) (int, int) {
	x, y := 0, 0
	t := d
	for s := 1; s < n; s *= 2 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		hilbertRot(s, &x, &y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}

	return x, y
}

// hilbertLUT precomputes the (x,y) pair for every linear offset in a
// base×base frame, flattened as [x0,y0,x1,y1,...]. Base should be a power of
// two for full coverage; other bases still map within bounds.
func hilbertLUT(base int) []uint16 {
	lut := make([]uint16, 2*base*base)
	for i := 0; i < base*base; i++ {
		x, y := hilbertD2XY(base, i)
		lut[i*2] = uint16(x % base)
		lut[i*2+1] = uint16(y % base)
	}

	return lut
}
