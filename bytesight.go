// Package bytesight turns arbitrary byte streams into 2-D visual frames with
// sideband statistical signals, for stream-introspection tooling.
//
// Raw bytes are clocked into fixed windows, every window is mapped and
// packed into a base×base pixel frame, and an alpha plane is derived from
// Shannon entropy or streaming pattern matches. Each completed window yields
// one signaled frame plus status, format and pattern-report events.
//
// # Basic Usage
//
// Creating a channel and feeding it bytes:
//
//	surface := frame.NewBuffer(64, 64, func(b *frame.Buffer) {
//	    // one completed frame in b.Pix()
//	})
//	queue := &event.Buffer{}
//
//	ch, err := bytesight.New(surface, queue,
//	    channel.WithPacking(format.PackIntensity),
//	    channel.WithMapping(format.MapHilbert),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for {
//	    n, _ := src.Read(buf)
//	    rest := buf[:n]
//	    for len(rest) > 0 {
//	        consumed, _ := ch.Ingest(rest)
//	        rest = rest[consumed:]
//	    }
//	}
//
// Registering patterns that annotate the alpha plane:
//
//	ch.SwitchAlpha(format.AlphaPattern)
//	ch.AddPattern(0x10, bytesight.PatternID("elf-magic"), 0, []byte{0x7f, 'E', 'L', 'F'})
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the channel
// package. For fine-grained control, use channel, frame, event, histogram,
// encoding, pattern and source directly.
package bytesight

import (
	"github.com/bytesight/bytesight/channel"
	"github.com/bytesight/bytesight/event"
	"github.com/bytesight/bytesight/frame"
	"github.com/bytesight/bytesight/internal/hash"
)

// New creates an encoding channel writing into surface and emitting events
// into queue. The window base is taken from the surface width; see the
// channel package options for mode selection.
func New(surface frame.Surface, queue event.Queue, opts ...channel.Option) (*channel.Channel, error) {
	return channel.New(surface, queue, opts...)
}

// PatternID derives a stable 32-bit pattern identifier from a name.
//
// Pattern ids only need to be unique within one channel; the truncated
// xxHash64 keeps ids stable across sessions so downstream consumers can
// correlate match reports without a registration handshake.
func PatternID(name string) uint32 {
	return uint32(hash.ID(name))
}

// WindowDigest computes the content digest carried in status events, for
// consumers that want to compare windows out of band.
func WindowDigest(buf []byte) uint64 {
	return hash.Digest(buf)
}
