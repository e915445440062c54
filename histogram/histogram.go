// Package histogram maintains per-window byte frequency tables and derives
// Shannon entropy from them.
//
// A channel keeps one persistent Histogram covering its current window; block
// clocking resets it between windows and slide clocking rebuilds it from the
// buffer at the top of each step, so the table always reflects exactly the
// bytes about to be encoded.
package histogram

import "math"

// Histogram counts byte values over the active window. The zero value is
// ready to use.
type Histogram struct {
	counts     [256]uint32
	total      uint64
	normalized bool
}

// Add records a single byte.
func (h *Histogram) Add(b byte) {
	h.counts[b]++
	h.total++
}

// Reset clears all counts.
func (h *Histogram) Reset() {
	h.counts = [256]uint32{}
	h.total = 0
	h.normalized = false
}

// Rebuild recomputes the table from scratch over buf, replacing all prior
// counts. Slide-clocked channels call this every step rather than tracking
// evicted bytes incrementally; the pattern and packing passes assume a fully
// consistent snapshot.
func (h *Histogram) Rebuild(buf []byte) {
	h.Reset()
	for _, b := range buf {
		h.counts[b]++
	}
	h.total = uint64(len(buf))
}

// Count returns the current count for byte value b. After Normalize the
// value is display-scaled, not a raw frequency.
func (h *Histogram) Count(b byte) uint32 {
	return h.counts[b]
}

// Counts returns a copy of the full table.
func (h *Histogram) Counts() [256]uint32 {
	return h.counts
}

// Total returns the number of bytes recorded since the last Reset or Rebuild.
// Normalize does not change it.
func (h *Histogram) Total() uint64 {
	return h.total
}

// Normalized reports whether the table currently holds display-scaled values
// rather than raw frequencies.
func (h *Histogram) Normalized() bool {
	return h.normalized
}

// Normalize rescales every bucket into the 0..255 range, in place. It exists
// for the histogram-intensity packing mode, which samples counts directly as
// pixel intensities.
//
// Scaling runs against the table's current sum rather than the recorded byte
// total, so re-normalizing an already rescaled table (forced re-renders
// without new data) is stable instead of collapsing toward zero.
//
// The mutation is visible to later readers: entropy computed after Normalize
// reflects the rescaled table until the next Reset or Rebuild. Callers that
// need analytical counts must read them before normalizing.
func (h *Histogram) Normalize() {
	var sum uint64
	for _, c := range h.counts {
		sum += uint64(c)
	}
	if sum == 0 {
		return
	}

	for i := range h.counts {
		h.counts[i] = uint32(255.0 * (float64(h.counts[i]) / float64(sum)))
	}
	h.normalized = true
}

// Entropy returns the Shannon entropy of the table in bits per byte,
// H = -Σ p·log2(p) over observed symbols, with probabilities taken against
// the given window size.
func (h *Histogram) Entropy(window int) float64 {
	if window <= 0 {
		return 0
	}

	var ent float64
	for _, c := range h.counts {
		if c == 0 {
			continue
		}
		p := float64(c) / float64(window)
		ent -= p * math.Log2(p)
	}

	return ent
}

// EntropyFraction returns Entropy normalized against the 8-bit maximum,
// clamped to [0,1].
func (h *Histogram) EntropyFraction(window int) float64 {
	f := h.Entropy(window) / 8.0
	if f > 1 {
		f = 1
	}

	return f
}

// Entropy computes the Shannon entropy of buf in bits per byte using a fresh
// local table. Used for block-based alpha, where each block needs its own
// distribution independent of the channel histogram.
func Entropy(buf []byte) float64 {
	if len(buf) == 0 {
		return 0
	}

	var counts [256]uint32
	for _, b := range buf {
		counts[b]++
	}

	var ent float64
	size := float64(len(buf))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / size
		ent -= p * math.Log2(p)
	}

	return ent
}
