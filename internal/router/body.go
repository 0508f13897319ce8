package router

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// bodyDecoder accumulates request body chunks as UTF-8 text.
//
// A multi-byte character split across two chunks is held back until the
// rest arrives. End flushes whatever is still held: an incomplete trailing
// sequence becomes U+FFFD, as do invalid bytes anywhere in the stream.
type bodyDecoder struct {
	text strings.Builder
	w    *transform.Writer
}

func newBodyDecoder() *bodyDecoder {
	d := &bodyDecoder{}
	d.w = transform.NewWriter(&d.text, unicode.UTF8.NewDecoder())
	return d
}

// Write appends one chunk.
func (d *bodyDecoder) Write(chunk []byte) (int, error) {
	return d.w.Write(chunk)
}

// End flushes the held partial character and returns the full body.
func (d *bodyDecoder) End() (string, error) {
	if err := d.w.Close(); err != nil {
		return "", err
	}
	return d.text.String(), nil
}
