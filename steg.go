// Package steg hides short text payloads inside innocuous carriers and
// recovers them losslessly.
//
// Two independent carriers are supported:
//
//   - image: the payload is embedded in the least-significant bits of a
//     flat RGB pixel buffer, one bit per color channel
//   - text: the payload is embedded as invisible zero-width Unicode
//     scalar values spliced into ordinary cover text
//
// # Framing
//
// Each carrier wraps the payload in its own frame. The image frame is the
// masked payload followed by a fixed 5-byte all-zero terminator. The text
// frame is a 2-byte checksum of the plaintext payload followed by the
// masked payload, bit-encoded between a START and an END sentinel.
//
// # Masking
//
// An optional password masks the payload with a repeating XOR of the
// password's UTF-8 bytes. The mask is reversible and keyed only by the
// password; it is an obfuscation layer, not cryptographic-strength
// confidentiality. An empty password is a true identity.
//
// The text path verifies its checksum after unmasking, so a wrong password
// is reported explicitly. The image path carries no checksum; a wrong
// password there surfaces only when the unmasked bytes fail UTF-8
// validation.
//
// # Basic Usage
//
//	pixels, w, h, _ := pngio.DecodeRGB(f)
//	out, err := steg.ImageEncode(pixels, w, h, "meet at noon", "sesame")
//	...
//	secret, err := steg.ImageDecode(out, "sesame")
//
//	stegText, err := steg.TextEncode("Totally normal message.", "hi", "")
//	secret, err := steg.TextDecode(stegText, "")
//
// # Errors
//
// Failures are returned as errors wrapping the package sentinels
// (ErrEmptySecret, ErrEmptyCover, ErrCapacity, ErrNoHiddenMessage,
// ErrWrongPassword, ErrCorrupted). Use errors.Is to classify them.
// Encoding never leaves a carrier partially mutated: all validation runs
// before the first write, and ImageEncode operates on a copy of its input.
//
// # Limitations
//
// The image decoder stops at the first 5-byte all-zero run in the
// extracted stream. A payload that happens to contain five consecutive
// zero bytes truncates there; see ImageDecode. Carriers must survive
// byte-exact round trips: lossy re-compression (JPEG) destroys the
// embedded bits.
package steg

import (
	"bytes"
	"strings"
	"time"
	"unicode/utf8"
)

// ImageEncode hides secret inside a flat RGB pixel buffer and returns the
// modified copy. The input buffer is never mutated. pixels must hold
// exactly width*height*3 bytes, row-major RGB.
//
// The payload is masked with password (empty password: no masking) and
// terminated with five zero bytes before embedding. If the framed payload
// does not fit, ImageEncode fails with a *CapacityError wrapping
// ErrCapacity.
func ImageEncode(pixels []byte, width, height int, secret, password string) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(carrierImage, len(secret), len(pixels))

	out, err := imageEncode(pixels, width, height, secret, password)
	emitEncodeComplete(carrierImage, len(out), time.Since(start), err)
	return out, err
}

func imageEncode(pixels []byte, width, height int, secret, password string) ([]byte, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if err := checkDimensions(pixels, width, height); err != nil {
		return nil, err
	}

	frame := append(Mask([]byte(secret), password), imageTerminator...)
	if len(frame)*8 > len(pixels) {
		return nil, &CapacityError{
			Capacity:   max(ImageCapacity(width*height), 0),
			MessageLen: utf8.RuneCountInString(secret),
		}
	}

	out := make([]byte, len(pixels))
	copy(out, pixels)
	lsbEmbed(out, frame)
	return out, nil
}

// ImageDecode recovers a secret hidden by ImageEncode. It scans the
// least-significant bits of pixels until the 5-byte terminator appears,
// unmasks the preceding bytes with password, and decodes them as UTF-8.
//
// A carrier with no terminator fails with ErrNoHiddenMessage after a full
// scan. A wrong password usually surfaces as ErrCorrupted when the
// unmasked bytes are not valid UTF-8; unlike the text path there is no
// checksum, so detection is not guaranteed.
func ImageDecode(pixels []byte, password string) (string, error) {
	start := time.Now()
	emitDecodeStart(carrierImage, len(pixels))

	secret, err := imageDecode(pixels, password)
	emitDecodeComplete(carrierImage, len(secret), time.Since(start), err)
	return secret, err
}

func imageDecode(pixels []byte, password string) (string, error) {
	raw, err := lsbExtract(pixels)
	if err != nil {
		return "", err
	}
	plain := Mask(raw, password)
	if !utf8.Valid(plain) {
		return "", ErrCorrupted
	}
	return string(plain), nil
}

// TextEncode hides secret inside cover text by splicing an invisible run
// of zero-width scalar values after the first rune of cover. The visible
// text is unchanged.
//
// The frame is a 2-byte checksum of the plaintext payload followed by the
// masked payload, so TextDecode can tell a wrong password apart from a
// missing message. Whitespace-only cover or secret is rejected.
func TextEncode(cover, secret, password string) (string, error) {
	start := time.Now()
	emitEncodeStart(carrierText, len(secret), utf8.RuneCountInString(cover))

	out, err := textEncode(cover, secret, password)
	emitEncodeComplete(carrierText, utf8.RuneCountInString(out), time.Since(start), err)
	return out, err
}

func textEncode(cover, secret, password string) (string, error) {
	if strings.TrimSpace(cover) == "" {
		return "", ErrEmptyCover
	}
	if strings.TrimSpace(secret) == "" {
		return "", ErrEmptySecret
	}

	payload := []byte(secret)
	frame := make([]byte, 0, checksumLen+len(payload))
	frame = append(frame, checksum(payload)...)
	frame = append(frame, Mask(payload, password)...)

	return spliceInvisible(cover, frame), nil
}

// TextDecode recovers a secret hidden by TextEncode. It locates the first
// START and first END sentinel, collects the zero-width bits between
// them, unmasks the payload with password, and verifies the checksum.
//
// Missing or misordered sentinels fail with ErrNoHiddenMessage. A bit
// run that is empty or not a whole number of bytes fails with
// ErrCorrupted. A checksum mismatch fails with ErrWrongPassword.
func TextDecode(text, password string) (string, error) {
	start := time.Now()
	emitDecodeStart(carrierText, utf8.RuneCountInString(text))

	secret, err := textDecode(text, password)
	emitDecodeComplete(carrierText, len(secret), time.Since(start), err)
	return secret, err
}

func textDecode(text, password string) (string, error) {
	frame, err := extractFrame(text)
	if err != nil {
		return "", err
	}
	if len(frame) < checksumLen+1 {
		return "", ErrCorrupted
	}

	stored := frame[:checksumLen]
	plain := Mask(frame[checksumLen:], password)
	if !bytes.Equal(checksum(plain), stored) {
		return "", ErrWrongPassword
	}
	if !utf8.Valid(plain) {
		return "", ErrCorrupted
	}
	return string(plain), nil
}

// checkDimensions verifies that pixels is a width*height*3 RGB buffer.
func checkDimensions(pixels []byte, width, height int) error {
	if width <= 0 || height <= 0 || len(pixels) != width*height*3 {
		return &DimensionError{Bytes: len(pixels), Width: width, Height: height}
	}
	return nil
}
