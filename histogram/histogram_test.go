package histogram

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogram_Add_CountsEveryByte(t *testing.T) {
	var h Histogram
	window := []byte{0x00, 0x00, 0x41, 0xff, 0x41, 0x41}
	for _, b := range window {
		h.Add(b)
	}

	require.Equal(t, uint64(len(window)), h.Total())
	require.Equal(t, uint32(2), h.Count(0x00))
	require.Equal(t, uint32(3), h.Count(0x41))
	require.Equal(t, uint32(1), h.Count(0xff))

	var sum uint64
	for _, c := range h.Counts() {
		sum += uint64(c)
	}
	require.Equal(t, uint64(len(window)), sum)
}

func TestHistogram_Rebuild_ReplacesPriorCounts(t *testing.T) {
	var h Histogram
	for i := 0; i < 100; i++ {
		h.Add(0xaa)
	}

	buf := []byte{1, 2, 3, 4}
	h.Rebuild(buf)

	require.Equal(t, uint64(4), h.Total())
	require.Equal(t, uint32(0), h.Count(0xaa))
	for _, b := range buf {
		require.Equal(t, uint32(1), h.Count(b))
	}
}

func TestHistogram_Entropy_SingleSymbolIsZero(t *testing.T) {
	var h Histogram
	for i := 0; i < 256; i++ {
		h.Add(0x42)
	}

	require.Equal(t, 0.0, h.Entropy(256))
	require.Equal(t, 0.0, h.EntropyFraction(256))
}

func TestHistogram_Entropy_UniformWindowIsMax(t *testing.T) {
	var h Histogram
	for i := 0; i < 256; i++ {
		h.Add(byte(i))
	}

	require.InDelta(t, 8.0, h.Entropy(256), 1e-9)
	require.InDelta(t, 1.0, h.EntropyFraction(256), 1e-9)
}

func TestHistogram_Entropy_EmptyWindow(t *testing.T) {
	var h Histogram
	require.Equal(t, 0.0, h.Entropy(0))
}

func TestHistogram_Normalize_RescalesInPlace(t *testing.T) {
	var h Histogram
	for i := 0; i < 128; i++ {
		h.Add(0x01)
	}
	for i := 0; i < 128; i++ {
		h.Add(0x02)
	}

	require.False(t, h.Normalized())
	h.Normalize()
	require.True(t, h.Normalized())

	// each symbol held half the window
	require.Equal(t, uint32(127), h.Count(0x01))
	require.Equal(t, uint32(127), h.Count(0x02))
	require.Equal(t, uint32(0), h.Count(0x03))

	// entropy reads now reflect the rescaled table, not the raw window
	require.NotEqual(t, 1.0, h.Entropy(256))
}

func TestHistogram_Normalize_StableUnderRepetition(t *testing.T) {
	var h Histogram
	buf := make([]byte, 4096)
	for i := range buf {
		buf[i] = byte(i % 8)
	}
	h.Rebuild(buf)

	// 255 * 512/4096
	h.Normalize()
	require.Equal(t, uint32(31), h.Count(0))

	// re-normalizing the rescaled table must not collapse it further
	h.Normalize()
	require.Equal(t, uint32(31), h.Count(0))
	h.Normalize()
	require.Equal(t, uint32(31), h.Count(0))
}

func TestHistogram_Normalize_EmptyIsNoop(t *testing.T) {
	var h Histogram
	h.Normalize()
	require.False(t, h.Normalized())
}

func TestHistogram_Reset_ClearsNormalizedFlag(t *testing.T) {
	var h Histogram
	h.Add(0x10)
	h.Normalize()
	require.True(t, h.Normalized())

	h.Reset()
	require.False(t, h.Normalized())
	require.Equal(t, uint64(0), h.Total())
}

func TestEntropy_FreshTable(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want float64
	}{
		{name: "empty", buf: nil, want: 0},
		{name: "single symbol", buf: []byte{7, 7, 7, 7}, want: 0},
		{name: "two symbols even", buf: []byte{0, 1, 0, 1}, want: 1},
		{name: "four symbols even", buf: []byte{0, 1, 2, 3}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Entropy(tt.buf), 1e-9)
		})
	}
}

func TestEntropy_UniformFullRange(t *testing.T) {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = byte(i)
	}

	require.InDelta(t, 8.0, Entropy(buf), 1e-9)
}
