package combiner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "combiner.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jpeg_quality: 75\nwebp_lossless: true\n"), 0o644))

	opts, err := LoadOptions(path)
	require.NoError(t, err)
	assert.Equal(t, 75, opts.Encode.JPEGQuality)
	assert.True(t, opts.Encode.WebPLossless)
	// Unset keys keep their defaults.
	assert.Equal(t, DefaultOptions().Encode.WebPQuality, opts.Encode.WebPQuality)
	assert.True(t, opts.Encode.TIFFCompress)
}

func TestLoadOptionsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadOptions(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("jpeg_quality: [1, 2"), 0o644))
	_, err = LoadOptions(bad)
	assert.Error(t, err)

	outOfRange := filepath.Join(dir, "range.yaml")
	require.NoError(t, os.WriteFile(outOfRange, []byte("webp_quality: 250\n"), 0o644))
	_, err = LoadOptions(outOfRange)
	assert.Error(t, err)
}
