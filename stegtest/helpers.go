// Package stegtest provides shared fixtures for testing the steg
// packages and their shells.
package stegtest

import (
	"bytes"

	"github.com/subrosa-io/steg/pngio"
)

// Cover returns an innocuous cover text with comfortable room for an
// invisible run.
func Cover() string {
	return "Nothing to see here, just a perfectly ordinary sentence."
}

// SolidPixels returns a width*height flat RGB buffer filled with one color.
func SolidPixels(width, height int, r, g, b byte) []byte {
	px := make([]byte, width*height*3)
	for i := 0; i < len(px); i += 3 {
		px[i], px[i+1], px[i+2] = r, g, b
	}
	return px
}

// SolidPNG returns the PNG encoding of a solid-color image.
func SolidPNG(width, height int, r, g, b byte) []byte {
	var buf bytes.Buffer
	if err := pngio.EncodePNG(&buf, SolidPixels(width, height, r, g, b), width, height); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
