package hspec

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColorMode(t *testing.T) {
	testCases := []struct {
		input string
		want  ColorMode
	}{
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"never", ColorNever},
		{"NO", ColorNever},
		{"off", ColorNever},
		{"always", ColorAlways},
		{" Yes ", ColorAlways},
		{"on", ColorAlways},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			mode, err := ParseColorMode(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, mode)
		})
	}

	t.Run("rejects unknown modes", func(t *testing.T) {
		_, err := ParseColorMode("purple")
		require.Error(t, err)
	})
}

func TestColorMode_Text(t *testing.T) {
	var mode ColorMode
	require.NoError(t, mode.UnmarshalText([]byte("always")))
	require.Equal(t, ColorAlways, mode)
	require.Error(t, mode.UnmarshalText([]byte("sometimes")))
	require.Equal(t, ColorAlways, mode)

	text, err := ColorNever.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "never", string(text))
	require.Equal(t, "ColorMode(7)", ColorMode(7).String())
}

func TestResolveColor(t *testing.T) {
	file, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = file.Close() })

	t.Run("never and always ignore the sink", func(t *testing.T) {
		require.False(t, ResolveColor(ColorNever, os.Stdout))
		require.True(t, ResolveColor(ColorAlways, &bytes.Buffer{}))
	})

	t.Run("auto is off for non-terminals", func(t *testing.T) {
		require.False(t, ResolveColor(ColorAuto, &bytes.Buffer{}))
		require.False(t, ResolveColor(ColorAuto, file))
	})

	t.Run("IsTerminal needs a descriptor", func(t *testing.T) {
		require.False(t, IsTerminal(&bytes.Buffer{}))
		require.False(t, IsTerminal(file))
	})
}
