// Package media turns uploaded image files into data URIs so that the
// listing store never references external file handles.
package media

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"listing-marketplace/internal/domain"
)

// DefaultMaxImageBytes is the largest accepted image upload (5 MiB).
const DefaultMaxImageBytes = 5 * 1024 * 1024

// EncodeDataURI reads an image of at most maxBytes and returns it as a
// base64 data URI. The content type is sniffed from the bytes rather than
// trusted from the client.
func EncodeDataURI(r io.Reader, maxBytes int64) (string, error) {
	// one extra byte distinguishes "exactly max" from "too large"
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return "", fmt.Errorf("%w: limit is %d bytes", domain.ErrImageTooLarge, maxBytes)
	}
	if len(data) == 0 {
		return "", domain.ErrMissingImage
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("%w: detected %s", domain.ErrNotAnImage, mime.String())
	}

	var b strings.Builder
	b.Grow(len("data:;base64,") + len(mime.String()) + base64.StdEncoding.EncodedLen(len(data)))
	b.WriteString("data:")
	b.WriteString(mime.String())
	b.WriteString(";base64,")
	b.WriteString(base64.StdEncoding.EncodeToString(data))
	return b.String(), nil
}
