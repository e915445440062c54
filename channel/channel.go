// Package channel implements the encoding state machine at the heart of
// bytesight: bytes in, packed pixel frames plus sideband events out.
//
// A Channel buffers a window of base² units, and on every completed window
// (or forced Tick) derives the alpha plane, maps and packs every unit into
// its frame surface, signals the frame, and emits status, format and
// pattern-report events. All calls must come from a single driving
// goroutine; the channel does no locking of its own.
package channel

import (
	"fmt"
	"time"

	"github.com/bytesight/bytesight/encoding"
	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/event"
	"github.com/bytesight/bytesight/format"
	"github.com/bytesight/bytesight/frame"
	"github.com/bytesight/bytesight/histogram"
	"github.com/bytesight/bytesight/internal/hash"
	"github.com/bytesight/bytesight/internal/options"
	"github.com/bytesight/bytesight/pattern"
)

// Channel owns one window buffer and its encoding state. Create with New;
// the zero value is not usable.
//
// A Channel is NOT safe for concurrent use. Ingest, Step and mode switches
// must be serialized by the driving control loop.
type Channel struct {
	clock format.ClockMode
	pack  format.PackMode
	mapm  format.MapMode
	amode format.AlphaMode

	// mode metadata changed but the consumer has not been told yet
	statusDirty bool

	base     int
	unitSize int

	buf    []byte
	bufOfs int
	alpha  []byte

	hist    histogram.Histogram
	matcher pattern.Matcher

	packer encoding.Packer
	mapper encoding.Mapper

	cntTotal uint64
	cntLocal uint64

	surface frame.Surface
	events  event.Queue
	now     func() time.Time
}

// New creates a channel writing into surface and emitting events into queue.
// The initial window base is taken from the surface width; defaults are
// block clocking, intensity packing, wrap mapping and entropy alpha, each
// overridable through options.
func New(surface frame.Surface, queue event.Queue, opts ...Option) (*Channel, error) {
	if surface == nil {
		return nil, errs.ErrNilSurface
	}
	if queue == nil {
		return nil, errs.ErrNilQueue
	}

	ch := &Channel{
		clock:   format.ClockBlock,
		pack:    format.PackIntensity,
		mapm:    format.MapWrap,
		amode:   format.AlphaEntropy,
		surface: surface,
		events:  queue,
		now:     time.Now,
	}

	if err := options.Apply(ch, opts...); err != nil {
		return nil, err
	}

	if err := ch.Resize(surface.Width()); err != nil {
		return nil, err
	}
	ch.statusDirty = true

	return ch, nil
}

// Base returns the current square frame dimension.
func (ch *Channel) Base() int { return ch.base }

// UnitSize returns the number of raw bytes consumed per output pixel.
func (ch *Channel) UnitSize() int { return ch.unitSize }

// Left returns how many bytes the current window still accepts.
func (ch *Channel) Left() int { return len(ch.buf) - ch.bufOfs }

// RowSize returns the number of raw input bytes that produce one output row.
func (ch *Channel) RowSize() int { return ch.unitSize * ch.surface.Width() }

// Clock returns the active clocking mode.
func (ch *Channel) Clock() format.ClockMode { return ch.clock }

// Packing returns the active packing mode.
func (ch *Channel) Packing() format.PackMode { return ch.pack }

// Mapping returns the active mapping mode.
func (ch *Channel) Mapping() format.MapMode { return ch.mapm }

// Alpha returns the active alpha mode.
func (ch *Channel) Alpha() format.AlphaMode { return ch.amode }

// Histogram returns the channel's persistent histogram. After a
// histogram-intensity step the table holds display-normalized counts until
// the next window resets or rebuilds it; check Normalized before analytical
// reads.
func (ch *Channel) Histogram() *histogram.Histogram { return &ch.hist }

// Ingest appends bytes to the current window and reports how many were
// consumed and whether a window completed (which runs a full Step before
// Ingest returns).
//
// Block clocking consumes at most the remaining window capacity; callers
// feed the remainder into the next window. Slide clocking with a chunk
// smaller than the window shifts existing contents left by the chunk length
// and appends at the tail; chunks at least a window long degenerate to a
// block fill.
func (ch *Channel) Ingest(p []byte) (int, bool) {
	var ntw int
	if ch.clock == format.ClockSlide {
		if len(p) < len(ch.buf) {
			ntw = len(p)
			ch.bufOfs = len(ch.buf) - ntw
			copy(ch.buf, ch.buf[ntw:])
		} else {
			ntw = len(ch.buf)
		}
	} else {
		ntw = len(ch.buf) - ch.bufOfs
		if len(p) < ntw {
			ntw = len(p)
		}
	}

	// block windows are replaced wholesale; drop the previous window's
	// counts when the first byte of a new window arrives
	if ch.clock == format.ClockBlock && ch.bufOfs == 0 && ntw > 0 {
		ch.hist.Reset()
	}

	// histogram updates incrementally here; slide mode additionally rebuilds
	// from the full buffer at the top of each step
	for i := 0; i < ntw; i++ {
		ch.hist.Add(p[i])
		ch.buf[ch.bufOfs] = p[i]
		ch.bufOfs++
	}
	ch.cntTotal += uint64(ntw)

	if ch.bufOfs == len(ch.buf) {
		ch.bufOfs = 0
		ch.Step()

		return ntw, true
	}

	return ntw, false
}

// Step runs the full encode pipeline over the current buffer contents and
// signals the frame. It is invoked automatically on window completion and is
// safe to call mid-window for forced re-renders.
func (ch *Channel) Step() {
	// slide windows rebuild from scratch so evicted bytes cannot leak into
	// entropy or the intensity substitution
	if ch.clock == format.ClockSlide {
		ch.hist.Rebuild(ch.buf)
	}

	ch.events.Enqueue(event.Status{
		Frame:    ch.cntLocal,
		Position: ch.cntTotal,
		Acquired: ch.now(),
		Entropy:  ch.hist.EntropyFraction(len(ch.buf)),
		Digest:   hash.Digest(ch.buf),
	})

	if ch.statusDirty {
		ch.events.Enqueue(event.Format{
			Pack:     ch.pack,
			Mapping:  ch.mapm,
			UnitSize: ch.unitSize,
		})
		ch.statusDirty = false
	}

	// display normalization; the histogram stays rescaled for the rest of
	// this window, so the status entropy above is computed first
	if ch.pack == format.PackHistIntensity {
		ch.hist.Normalize()
	}

	switch ch.amode {
	case format.AlphaEntropy:
		ch.updateEntropyAlpha(ch.base)
	case format.AlphaPattern:
		for _, rep := range ch.matcher.Run(ch.buf, ch.alpha, ch.unitSize) {
			ch.events.Enqueue(event.PatternReport{ID: rep.ID, Count: rep.Count})
		}
	case format.AlphaFull:
		// alpha buffer already saturated
	}

	pix := ch.surface.Pix()
	width := ch.surface.Width()

	// sparse mappings leave unaddressed pixels; start from opaque black
	if ch.mapper.Sparse() {
		for i := range pix {
			pix[i] = frame.Black
		}
	}

	for i := 0; i+ch.unitSize <= len(ch.buf); i += ch.unitSize {
		ofs := i / ch.unitSize
		unit := ch.buf[i : i+ch.unitSize]
		x, y, skip := ch.mapper.Map(unit, ofs)
		pix[y*width+x] = ch.packer.Pack(unit[skip:], ch.alpha[ofs])
	}

	ch.surface.Signal()
	ch.cntLocal = ch.cntTotal
}

// Tick forces a re-render of the current window, complete or not. Used by
// timer-driven transports.
func (ch *Channel) Tick() {
	ch.Step()
}

// updateEntropyAlpha fills the alpha plane from per-block Shannon entropy,
// bsz units at a time. bsz should divide base² evenly.
func (ch *Channel) updateEntropyAlpha(bsz int) {
	bsqr := ch.base * ch.base
	for i := 0; i < bsqr; i += bsz {
		n := bsz
		if i+n > bsqr {
			n = bsqr - i
		}
		raw := ch.buf[i*ch.unitSize : (i+n)*ch.unitSize]
		av := byte(255.0 * histogram.Entropy(raw) / 8.0)
		for j := i; j < i+n; j++ {
			ch.alpha[j] = av
		}
	}
}

// Resize reallocates the window for a new base dimension, rebuilds the
// mapping LUT and packer, and forces a step so the consumer sees a frame in
// the new geometry. The prior state stays untouched if the new geometry is
// invalid.
func (ch *Channel) Resize(base int) error {
	if base <= 0 || base > ch.surface.Width() || base > ch.surface.Height() {
		return fmt.Errorf("%w: %d for %dx%d surface",
			errs.ErrInvalidBase, base, ch.surface.Width(), ch.surface.Height())
	}

	unit := format.UnitSize(ch.pack, ch.mapm)

	mapper, err := encoding.NewMapper(ch.mapm, base)
	if err != nil {
		return err
	}
	packer, err := encoding.NewPacker(ch.pack, &ch.hist)
	if err != nil {
		return err
	}

	bsqr := base * base
	ch.buf = make([]byte, bsqr*unit)
	ch.bufOfs = 0
	ch.alpha = make([]byte, bsqr)
	for i := range ch.alpha {
		ch.alpha[i] = 0xff
	}

	ch.base = base
	ch.unitSize = unit
	ch.mapper = mapper
	ch.packer = packer
	ch.hist.Reset()
	ch.statusDirty = true

	ch.Step()

	return nil
}

// SwitchPacking changes the packing mode. The buffer is reallocated only if
// the unit size actually changed; either way the new layout is announced
// with the next frame.
func (ch *Channel) SwitchPacking(mode format.PackMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidPackMode, mode)
	}

	prevMode, prevPacker := ch.pack, ch.packer

	packer, err := encoding.NewPacker(mode, &ch.hist)
	if err != nil {
		return err
	}
	ch.pack = mode
	ch.packer = packer

	if len(ch.buf) != ch.base*ch.base*format.UnitSize(ch.pack, ch.mapm) {
		if err := ch.Resize(ch.base); err != nil {
			ch.pack, ch.packer = prevMode, prevPacker
			return err
		}
	} else {
		ch.unitSize = format.UnitSize(ch.pack, ch.mapm)
	}
	ch.statusDirty = true

	return nil
}

// SwitchMapping changes the mapping mode, invalidating and rebuilding any
// coordinate LUT. Tuple mapping changes the unit footprint, which forces a
// resize; the switch always ends with a step.
func (ch *Channel) SwitchMapping(mode format.MapMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidMapMode, mode)
	}

	prevMode, prevMapper := ch.mapm, ch.mapper

	mapper, err := encoding.NewMapper(mode, ch.base)
	if err != nil {
		return err
	}
	ch.mapm = mode
	ch.mapper = mapper

	if len(ch.buf) != ch.base*ch.base*format.UnitSize(ch.pack, ch.mapm) {
		if err := ch.Resize(ch.base); err != nil {
			ch.mapm, ch.mapper = prevMode, prevMapper
			return err
		}
	} else {
		ch.unitSize = format.UnitSize(ch.pack, ch.mapm)
		ch.statusDirty = true
		ch.Step()
	}

	return nil
}

// SwitchClock changes the clocking mode. No step is forced; the next window
// boundary picks up the new behavior.
func (ch *Channel) SwitchClock(mode format.ClockMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidClockMode, mode)
	}
	ch.clock = mode
	ch.statusDirty = true

	return nil
}

// SwitchAlpha changes how the alpha plane is derived. Switching to full
// alpha saturates the plane immediately.
func (ch *Channel) SwitchAlpha(mode format.AlphaMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidAlphaMode, mode)
	}
	ch.amode = mode
	if mode == format.AlphaFull {
		for i := range ch.alpha {
			ch.alpha[i] = 0xff
		}
	}
	ch.statusDirty = true

	return nil
}

// AddPattern registers a byte pattern for the matching pass. The sequence is
// copied. A failed registration leaves the existing set untouched.
func (ch *Channel) AddPattern(alpha byte, id uint32, flags pattern.Flags, seq []byte) error {
	return ch.matcher.AddBytes(alpha, id, flags, seq)
}

// AddPatternSpecs parses comma-separated hexadecimal pattern specifications
// and registers the whole set. Any malformed token aborts the call without
// registering anything.
func (ch *Channel) AddPatternSpecs(specs []string) error {
	patterns, err := pattern.ParseSpecs(specs)
	if err != nil {
		return err
	}
	for _, p := range patterns {
		ch.matcher.Add(p)
	}

	return nil
}

// Patterns returns the registered patterns in registration order.
func (ch *Channel) Patterns() []*pattern.Pattern {
	return ch.matcher.Patterns()
}

// Wind moves the logical stream position, for seek and scrub semantics. The
// buffer contents are untouched.
func (ch *Channel) Wind(ofs uint64) {
	ch.cntTotal = ofs
}

// Position returns the logical stream position.
func (ch *Channel) Position() uint64 { return ch.cntTotal }
