// Package pattern implements streaming byte-pattern matching over a window.
//
// All registered patterns advance in lockstep during a single pass over the
// buffer: each byte either advances a pattern's cursor or leaves it in
// place. A completed match stamps the pattern's alpha value over the matched
// range of the alpha buffer and bumps the pattern's match counter. Cursors
// and counters reset every window; no match state survives across windows.
package pattern

import (
	"fmt"

	"github.com/bytesight/bytesight/errs"
)

// Flags adjust per-pattern match behavior.
type Flags uint8

const (
	// FlagState makes a match sticky: the channel-wide floor alpha used for
	// unmatched bytes becomes the pattern's alpha for the rest of the window.
	FlagState Flags = 1 << 0

	// FlagQuiet suppresses the per-window match report for this pattern.
	// Matches still stamp alpha and accumulate in the counter.
	FlagQuiet Flags = 1 << 1
)

// Pattern is one registered byte sequence under match.
type Pattern struct {
	seq   []byte
	pos   int
	hits  int
	alpha byte
	id    uint32
	flags Flags
}

// New creates a pattern. The sequence is copied; it must be non-empty.
func New(alpha byte, id uint32, flags Flags, seq []byte) (*Pattern, error) {
	if len(seq) == 0 {
		return nil, errs.ErrEmptyPattern
	}

	p := &Pattern{
		seq:   append([]byte(nil), seq...),
		alpha: alpha,
		id:    id,
		flags: flags,
	}

	return p, nil
}

// ID returns the pattern's identifier.
func (p *Pattern) ID() uint32 { return p.id }

// Alpha returns the alpha value stamped on match.
func (p *Pattern) Alpha() byte { return p.alpha }

// Flags returns the pattern's flags.
func (p *Pattern) Flags() Flags { return p.flags }

// Len returns the length of the byte sequence.
func (p *Pattern) Len() int { return len(p.seq) }

// Hits returns the match count accumulated during the last window pass.
func (p *Pattern) Hits() int { return p.hits }

func (p *Pattern) reset() {
	p.pos = 0
	p.hits = 0
}

// Report is the per-window match summary for one pattern.
type Report struct {
	ID    uint32
	Count int
}

// Matcher holds the registered pattern set of one channel.
type Matcher struct {
	patterns []*Pattern
}

// Add registers a pattern.
func (m *Matcher) Add(p *Pattern) {
	m.patterns = append(m.patterns, p)
}

// AddBytes registers a new pattern built from seq.
func (m *Matcher) AddBytes(alpha byte, id uint32, flags Flags, seq []byte) error {
	p, err := New(alpha, id, flags, seq)
	if err != nil {
		return fmt.Errorf("%w: pattern id %d", err, id)
	}
	m.Add(p)

	return nil
}

// Len returns the number of registered patterns.
func (m *Matcher) Len() int { return len(m.patterns) }

// Patterns returns the registered patterns in registration order.
func (m *Matcher) Patterns() []*Pattern { return m.patterns }

// Run populates alpha from a single pass over all of buf and returns one
// Report per non-quiet pattern with at least one match.
//
// Matching is byte-granular while alpha is unit-granular: buf holds unit
// bytes per alpha entry, so byte i stamps alpha[i/unit]. Unmatched units
// receive the floor alpha, initially 0xff; a completed match of a FlagState
// pattern lowers the floor for the remainder of the window. A completed match
// stamps the pattern's alpha over the units covering the matched byte range
// and resets its cursor.
//
// With no registered patterns the pass is skipped and alpha saturates to
// 0xff. Cost is O(len(buf)·patterns); if the pattern set ever grows large
// this is the place to swap in an automaton.
func (m *Matcher) Run(buf, alpha []byte, unit int) []Report {
	if unit < 1 {
		unit = 1
	}

	floor := byte(0xff)
	if len(m.patterns) == 0 {
		for i := range alpha {
			alpha[i] = floor
		}

		return nil
	}

	for _, p := range m.patterns {
		p.reset()
	}

	for i := 0; i < len(buf); i++ {
		u := i / unit
		if i%unit == 0 && u < len(alpha) {
			alpha[u] = floor
		}

		for _, p := range m.patterns {
			if p.seq[p.pos] != buf[i] {
				continue
			}
			p.pos++
			if p.pos < len(p.seq) {
				continue
			}

			p.pos = 0
			p.hits++

			start := i - len(p.seq) + 1
			if start < 0 {
				start = 0
			}
			last := i / unit
			if last >= len(alpha) {
				last = len(alpha) - 1
			}
			for j := start / unit; j <= last; j++ {
				alpha[j] = p.alpha
			}

			if p.flags&FlagState != 0 {
				floor = p.alpha
			}
		}
	}

	var reports []Report
	for _, p := range m.patterns {
		if p.hits == 0 || p.flags&FlagQuiet != 0 {
			continue
		}
		reports = append(reports, Report{ID: p.id, Count: p.hits})
	}

	return reports
}
