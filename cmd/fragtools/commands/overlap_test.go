package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupOverlapFlags(t *testing.T) {
	fs, flags := SetupOverlapFlags()

	t.Run("default values", func(t *testing.T) {
		assert.False(t, flags.Merge, "expected Merge to be false by default")
		assert.Equal(t, FormatText, flags.Format, "expected Format to be text by default")
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--merge", "--format", "yaml", "ABCDEF", "DEFG"}
		require.NoError(t, fs.Parse(args))

		assert.True(t, flags.Merge)
		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "ABCDEF", fs.Arg(0))
		assert.Equal(t, "DEFG", fs.Arg(1))
	})
}

func TestHandleOverlap_NoArgs(t *testing.T) {
	err := HandleOverlap([]string{})
	assert.Error(t, err)
}

func TestHandleOverlap_OneArg(t *testing.T) {
	err := HandleOverlap([]string{"ABCDEF"})
	assert.Error(t, err)
}

func TestHandleOverlap_Help(t *testing.T) {
	err := HandleOverlap([]string{"--help"})
	assert.NoError(t, err)
}

func TestHandleOverlap_InvalidFormat(t *testing.T) {
	err := HandleOverlap([]string{"--format", "xml", "ABCDEF", "DEFG"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestHandleOverlap_Text(t *testing.T) {
	err := HandleOverlap([]string{"ABCDEF", "DEFG"})
	assert.NoError(t, err)
}

func TestHandleOverlap_MergeJSON(t *testing.T) {
	err := HandleOverlap([]string{"--merge", "--format", "json", "ABCDEF", "DEFG"})
	assert.NoError(t, err)
}
