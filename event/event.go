// Package event defines the sideband events a channel emits alongside frames.
//
// Three kinds exist: a Status per step (stream counters, timestamp, entropy
// fraction, window digest), a Format announcement whenever the packing or
// mapping footprint changed since the last frame, and one PatternReport per
// pattern with matches in the completed window.
package event

import (
	"time"

	"github.com/bytesight/bytesight/format"
)

// Kind discriminates event payloads.
type Kind uint8

const (
	KindStatus Kind = iota + 1
	KindFormat
	KindPatternReport
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "Status"
	case KindFormat:
		return "Format"
	case KindPatternReport:
		return "PatternReport"
	default:
		return "Unknown"
	}
}

// Event is implemented by all outbound payloads.
type Event interface {
	Kind() Kind
}

// Status accompanies every signaled frame.
type Status struct {
	// Frame is the stream position at the previously signaled frame.
	Frame uint64
	// Position is the current logical stream position.
	Position uint64
	// Acquired is when the step ran.
	Acquired time.Time
	// Entropy is the window's Shannon entropy as a fraction of the 8-bit
	// maximum, in [0,1].
	Entropy float64
	// Digest is the xxHash64 of the raw window contents.
	Digest uint64
}

func (Status) Kind() Kind { return KindStatus }

// Format announces the active packing layout. Emitted once after any mode
// switch that the consumer must know about to interpret frame bytes.
type Format struct {
	Pack     format.PackMode
	Mapping  format.MapMode
	UnitSize int
}

func (Format) Kind() Kind { return KindFormat }

// PatternReport carries the match count of one registered pattern over the
// last completed window.
type PatternReport struct {
	ID    uint32
	Count int
}

func (PatternReport) Kind() Kind { return KindPatternReport }

// Queue receives events from a channel. Implementations decide delivery;
// Enqueue must not block the encoding step indefinitely.
type Queue interface {
	Enqueue(Event)
}

// Buffer is a Queue that accumulates events in memory, for tests and for
// drivers that drain between steps.
type Buffer struct {
	events []Event
}

var _ Queue = (*Buffer)(nil)

func (b *Buffer) Enqueue(ev Event) {
	b.events = append(b.events, ev)
}

// Drain returns all buffered events and empties the buffer.
func (b *Buffer) Drain() []Event {
	evs := b.events
	b.events = nil

	return evs
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int { return len(b.events) }
