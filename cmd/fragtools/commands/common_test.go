package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOutputFormat(t *testing.T) {
	assert.NoError(t, ValidateOutputFormat(FormatText))
	assert.NoError(t, ValidateOutputFormat(FormatJSON))
	assert.NoError(t, ValidateOutputFormat(FormatYAML))
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.Error(t, ValidateOutputFormat(""))
}

func TestMarshalStructured(t *testing.T) {
	data := map[string]any{"overlap": 3}

	jsonBytes, err := MarshalStructured(data, FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"overlap": 3`)

	yamlBytes, err := MarshalStructured(data, FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(yamlBytes), "overlap: 3")

	_, err = MarshalStructured(data, FormatText)
	assert.Error(t, err)
}

func TestParseDelimiterFlag(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    rune
		wantErr bool
	}{
		{"empty falls back to default", "", ';', false},
		{"single character", "|", '|', false},
		{"single multibyte rune", "•", '•', false},
		{"multiple characters", "ab", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDelimiterFlag(tt.value, ';')
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")

	assert.NoError(t, ValidateOutputPath(output, []string{input}))
	assert.NoError(t, ValidateOutputPath(output, []string{StdinFilePath}))

	err := ValidateOutputPath(input, []string{input})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "would overwrite input file")
}

func TestRejectSymlinkOutput(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file is allowed", func(t *testing.T) {
		assert.NoError(t, RejectSymlinkOutput(filepath.Join(dir, "missing.txt")))
	})

	t.Run("regular file is allowed", func(t *testing.T) {
		path := filepath.Join(dir, "regular.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
		assert.NoError(t, RejectSymlinkOutput(path))
	})

	t.Run("symlink is rejected", func(t *testing.T) {
		target := filepath.Join(dir, "target.txt")
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.WriteFile(target, []byte("x"), 0o600))
		require.NoError(t, os.Symlink(target, link))

		err := RejectSymlinkOutput(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "refusing to write to symlink")
	})
}

func TestFormatInputPath(t *testing.T) {
	assert.Equal(t, "<stdin>", FormatInputPath(StdinFilePath))
	assert.Equal(t, "fragments.txt", FormatInputPath("fragments.txt"))
}
