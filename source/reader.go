// Package source wraps the inbound byte stream of a channel in a transparent
// decompression layer.
//
// Monitored data often arrives pre-compressed (capture archives, recorded
// sessions); wrapping the transport's reader here lets the channel ingest
// the decoded bytes without knowing the on-wire framing. Supported stream
// formats: Zstandard, S2 and LZ4, plus passthrough.
package source

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/s2"
	"github.com/pierrec/lz4/v4"
	"github.com/valyala/gozstd"

	"github.com/bytesight/bytesight/errs"
	"github.com/bytesight/bytesight/format"
)

// NewReader wraps r in a decompressing reader for the given compression
// type. CompressionNone returns r unchanged.
func NewReader(r io.Reader, comp format.CompressionType) (io.Reader, error) {
	switch comp {
	case format.CompressionNone:
		return r, nil
	case format.CompressionZstd:
		return gozstd.NewReader(r), nil
	case format.CompressionS2:
		return s2.NewReader(r), nil
	case format.CompressionLZ4:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, comp)
	}
}

// ParseCompression maps a textual name ("none", "zstd", "s2", "lz4") to its
// compression type. Matching is case-insensitive.
func ParseCompression(name string) (format.CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}
