package compress

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// compressText is the reference producer: deflate (raw, no zlib
// header), then base64.
func compressText(t *testing.T, text string) string {
	t.Helper()
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	require.NoError(t, err)
	_, err = w.Write([]byte(text))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecompressRoundTrip(t *testing.T) {
	for _, text := range []string{
		`{"crew":{"kirk":{"level":99}}}`,
		"{}",
		"",
	} {
		got, err := Decompress(compressText(t, text))
		require.NoError(t, err, "text %q", text)
		assert.Equal(t, text, got)
	}
}

func TestDecompressTwoLayers(t *testing.T) {
	const text = `{"mission":"a taste of armageddon"}`
	twice := compressText(t, compressText(t, text))

	once, err := Decompress(twice)
	require.NoError(t, err)
	got, err := Decompress(once)
	require.NoError(t, err)
	assert.Equal(t, text, got)
}

func TestDecompressOneLayerPerCall(t *testing.T) {
	const text = `{"a":1}`
	once, err := Decompress(compressText(t, compressText(t, text)))
	require.NoError(t, err)
	assert.NotEqual(t, text, once)
}

func TestDecompressBadBase64(t *testing.T) {
	_, err := Decompress("*** not base64 ***")
	require.ErrorIs(t, err, ErrDecompression)
}

func TestDecompressBadStream(t *testing.T) {
	garbage := base64.StdEncoding.EncodeToString([]byte("this is not deflate data"))
	_, err := Decompress(garbage)
	require.ErrorIs(t, err, ErrDecompression)
}
