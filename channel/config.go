package channel

import (
	"fmt"
	"time"

	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/format"
	"github.com/bytesight/bytesight/internal/options"
)

// Option represents a functional option for configuring a Channel at
// creation time. Mode options validate eagerly, so New fails fast on an
// out-of-range mode instead of carrying it into the pipeline.
type Option = options.Option[*Channel]

// WithClock sets the initial clocking mode. Default is block.
func WithClock(mode format.ClockMode) Option {
	return options.New(func(ch *Channel) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidClockMode, mode)
		}
		ch.clock = mode

		return nil
	})
}

// WithPacking sets the initial packing mode. Default is intensity.
func WithPacking(mode format.PackMode) Option {
	return options.New(func(ch *Channel) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidPackMode, mode)
		}
		ch.pack = mode

		return nil
	})
}

// WithMapping sets the initial mapping mode. Default is wrap.
func WithMapping(mode format.MapMode) Option {
	return options.New(func(ch *Channel) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidMapMode, mode)
		}
		ch.mapm = mode

		return nil
	})
}

// WithAlpha sets the initial alpha derivation mode. Default is entropy.
func WithAlpha(mode format.AlphaMode) Option {
	return options.New(func(ch *Channel) error {
		if !mode.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidAlphaMode, mode)
		}
		ch.amode = mode

		return nil
	})
}

// WithTimeSource overrides the clock used to timestamp status events.
// Intended for tests.
func WithTimeSource(now func() time.Time) Option {
	return options.NoError(func(ch *Channel) {
		ch.now = now
	})
}
