package main

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameWriter_DiscardNext(t *testing.T) {
	w, err := newFrameWriter("", "")
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	w.discardNext()
	require.NoError(t, w.add(img))
	require.Zero(t, w.count())

	require.NoError(t, w.add(img))
	require.Equal(t, 1, w.count())
}

func TestFrameWriter_DiscardedFrameNeverReachesDisk(t *testing.T) {
	dir := t.TempDir()
	w, err := newFrameWriter(dir, "")
	require.NoError(t, err)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	w.discardNext()
	require.NoError(t, w.add(img))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)

	require.NoError(t, w.add(img))
	_, err = os.Stat(filepath.Join(dir, "frame-0001.png"))
	require.NoError(t, err)
}
