package steg

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrEmptySecret indicates an encode was attempted with no secret text.
	ErrEmptySecret = errors.New("secret message is empty")

	// ErrEmptyCover indicates a text encode was attempted with no cover text.
	ErrEmptyCover = errors.New("cover text is empty")

	// ErrCapacity indicates the framed payload does not fit in the carrier.
	ErrCapacity = errors.New("message too long for carrier")

	// ErrBadCarrier indicates a pixel buffer that does not match its
	// declared dimensions.
	ErrBadCarrier = errors.New("carrier buffer does not match dimensions")

	// ErrNoHiddenMessage indicates the carrier holds no recognizable frame:
	// the image terminator or the text sentinels are missing.
	ErrNoHiddenMessage = errors.New("no hidden message found")

	// ErrWrongPassword indicates the text-path checksum did not match after
	// unmasking. Only the text path can report this explicitly.
	ErrWrongPassword = errors.New("wrong password")

	// ErrCorrupted indicates the hidden data is damaged or incomplete: a
	// ragged bit run, a truncated frame, or unmasked bytes that are not
	// valid UTF-8.
	ErrCorrupted = errors.New("hidden data is corrupted or incomplete")
)

// CapacityError reports an image payload that exceeds carrier capacity.
// Detected before any pixel is touched.
type CapacityError struct {
	Capacity   int // characters the carrier can hold, clamped at zero
	MessageLen int // characters in the rejected secret
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message too long for carrier: image holds up to %d characters, message has %d",
		e.Capacity, e.MessageLen)
}

func (e *CapacityError) Unwrap() error {
	return ErrCapacity
}

// DimensionError reports a pixel buffer whose length is not width*height*3.
type DimensionError struct {
	Bytes  int
	Width  int
	Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("carrier buffer does not match dimensions: %d bytes for %dx%d RGB (want %d)",
		e.Bytes, e.Width, e.Height, e.Width*e.Height*3)
}

func (e *DimensionError) Unwrap() error {
	return ErrBadCarrier
}
