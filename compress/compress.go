package compress

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrDecompression reports a bad deflate stream or a decompressed
// result that is not text.
var ErrDecompression = errors.New("decompression failed")

// Decompress reverses one layer of the game's compress-and-encode
// transform: base64 text, holding a raw deflate stream (no zlib
// header), holding plain text. The result is typically a JSON string.
//
// Doubly compressed data carries a "compr-" prefix on the outer layer;
// stripping the prefix and calling this a second time is the caller's
// job. Exactly one layer is removed per call.
func Decompress(text string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrDecompression, err)
	}

	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("%w: inflate: %v", ErrDecompression, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: decompressed bytes are not valid text", ErrDecompression)
	}
	return string(out), nil
}
