package pattern

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bytesight/bytesight/errs"
)

func TestParseSpecs_SequentialAssignment(t *testing.T) {
	patterns, err := ParseSpecs([]string{"de,ad,be,ef", "7f,45,4c,46", "ff"})
	require.NoError(t, err)
	require.Len(t, patterns, 3)

	for i, p := range patterns {
		require.Equal(t, uint32(i), p.ID())
		require.Equal(t, byte(i), p.Alpha())
		require.Equal(t, Flags(0), p.Flags())
	}
	require.Equal(t, 4, patterns[0].Len())
	require.Equal(t, 1, patterns[2].Len())
}

func TestParseSpecs_Whitespace(t *testing.T) {
	patterns, err := ParseSpecs([]string{" de , ad "})
	require.NoError(t, err)
	require.Len(t, patterns, 1)
	require.Equal(t, 2, patterns[0].Len())
}

func TestParseSpecs_MalformedTokenDiscardsWholeSet(t *testing.T) {
	tests := []struct {
		name  string
		specs []string
	}{
		{name: "not hex", specs: []string{"de,ad", "zz"}},
		{name: "too wide", specs: []string{"1ff"}},
		{name: "empty token", specs: []string{"de,,ad"}},
		{name: "empty spec", specs: []string{""}},
		{name: "negative", specs: []string{"-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patterns, err := ParseSpecs(tt.specs)
			require.ErrorIs(t, err, errs.ErrMalformedPattern)
			require.Nil(t, patterns)
		})
	}
}

func TestParseSpecs_Empty(t *testing.T) {
	patterns, err := ParseSpecs(nil)
	require.NoError(t, err)
	require.Empty(t, patterns)
}

func TestParseSpecs_CaseInsensitiveHex(t *testing.T) {
	patterns, err := ParseSpecs([]string{"DE,aD,Be,ef"})
	require.NoError(t, err)
	require.Len(t, patterns, 1)
}
