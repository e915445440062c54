package pattern

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytesight/bytesight/errs"
)

// ParseSpecs builds a pattern set from textual specifications. Each spec is
// a comma-separated list of hexadecimal byte values ("de,ad,be,ef"); entries
// are assigned sequential ids and alpha values by position, so earlier
// patterns paint lower (darker) alpha.
//
// Parsing is all-or-nothing: any malformed token discards the entire set and
// no patterns are returned.
func ParseSpecs(specs []string) ([]*Pattern, error) {
	patterns := make([]*Pattern, 0, len(specs))
	for ind, spec := range specs {
		seq, err := parseHexSeq(spec)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", ind, err)
		}

		p, err := New(byte(ind), uint32(ind), 0, seq)
		if err != nil {
			return nil, fmt.Errorf("pattern %d: %w", ind, err)
		}
		patterns = append(patterns, p)
	}

	return patterns, nil
}

func parseHexSeq(spec string) ([]byte, error) {
	tokens := strings.Split(spec, ",")
	seq := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return nil, fmt.Errorf("%w: empty token", errs.ErrMalformedPattern)
		}

		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: token %q", errs.ErrMalformedPattern, tok)
		}
		seq = append(seq, byte(v))
	}

	return seq, nil
}
