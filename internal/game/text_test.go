package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTextWidth(t *testing.T) {
	require.Equal(t, 0, TextWidth("", 1.0))
	require.Equal(t, 5*FontCellW, TextWidth("hello", 1.0))

	// Multi-line strings measure the longest line.
	require.Equal(t, 6*FontCellW, TextWidth("ab\nlonger\ncd", 1.0))

	// Scale multiplies the monospace advance.
	require.Equal(t, int(float32(4*FontCellW)*1.5), TextWidth("wasd", 1.5))
}
