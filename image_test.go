package steg

import (
	"bytes"
	"errors"
	"testing"
)

// solidPixels returns a width*height RGB buffer filled with one color.
func solidPixels(width, height int, r, g, b byte) []byte {
	px := make([]byte, width*height*3)
	for i := 0; i < len(px); i += 3 {
		px[i], px[i+1], px[i+2] = r, g, b
	}
	return px
}

func TestImageCapacity(t *testing.T) {
	tests := []struct {
		pixelCount int
		want       int
	}{
		{0, -5},
		{1, -5},
		{13, -1},
		{14, 0},
		{100, 32}, // 10x10 image holds 32 characters
		{1000, 370},
	}

	for _, tt := range tests {
		if got := ImageCapacity(tt.pixelCount); got != tt.want {
			t.Errorf("ImageCapacity(%d) = %d, want %d", tt.pixelCount, got, tt.want)
		}
	}
}

func TestImageCapacityMonotonic(t *testing.T) {
	prev := ImageCapacity(0)
	for n := 1; n <= 512; n++ {
		cur := ImageCapacity(n)
		if cur < prev {
			t.Fatalf("ImageCapacity(%d) = %d < ImageCapacity(%d) = %d", n, cur, n-1, prev)
		}
		prev = cur
	}
}

func TestImageEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		secret   string
		password string
	}{
		{"no password", "HELLO", ""},
		{"with password", "HELLO", "sesame"},
		{"unicode secret", "héllo wörld", "clé"},
		{"single char", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carrier := solidPixels(10, 10, 120, 80, 200)

			out, err := ImageEncode(carrier, 10, 10, tt.secret, tt.password)
			if err != nil {
				t.Fatalf("ImageEncode: %v", err)
			}

			got, err := ImageDecode(out, tt.password)
			if err != nil {
				t.Fatalf("ImageDecode: %v", err)
			}
			if got != tt.secret {
				t.Errorf("round trip = %q, want %q", got, tt.secret)
			}
		})
	}
}

func TestImageEncodePreservesUpperBits(t *testing.T) {
	carrier := solidPixels(10, 10, 120, 80, 200)

	out, err := ImageEncode(carrier, 10, 10, "HELLO", "")
	if err != nil {
		t.Fatalf("ImageEncode: %v", err)
	}

	for i := range out {
		if out[i]&0xFE != carrier[i]&0xFE {
			t.Fatalf("byte %d: upper 7 bits changed from %08b to %08b", i, carrier[i], out[i])
		}
	}

	// Bytes beyond the embedded frame are untouched entirely.
	embedded := (len("HELLO") + terminatorLen) * 8
	if !bytes.Equal(out[embedded:], carrier[embedded:]) {
		t.Error("bytes beyond the frame were modified")
	}
}

func TestImageEncodeDoesNotMutateInput(t *testing.T) {
	carrier := solidPixels(10, 10, 1, 2, 3)
	orig := append([]byte(nil), carrier...)

	if _, err := ImageEncode(carrier, 10, 10, "HELLO", ""); err != nil {
		t.Fatalf("ImageEncode: %v", err)
	}
	if !bytes.Equal(carrier, orig) {
		t.Error("ImageEncode mutated its input buffer")
	}
}

func TestImageEncodeRejectsOversized(t *testing.T) {
	// 2x2 image: 12 channel bytes, capacity is negative.
	carrier := solidPixels(2, 2, 9, 9, 9)
	orig := append([]byte(nil), carrier...)

	_, err := ImageEncode(carrier, 2, 2, "this will not fit", "")
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("ImageEncode = %v, want ErrCapacity", err)
	}

	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatal("error is not a *CapacityError")
	}
	if capErr.Capacity != 0 {
		t.Errorf("Capacity = %d, want 0 (negative clamped)", capErr.Capacity)
	}
	if capErr.MessageLen != len("this will not fit") {
		t.Errorf("MessageLen = %d, want %d", capErr.MessageLen, len("this will not fit"))
	}

	if !bytes.Equal(carrier, orig) {
		t.Error("rejected encode left the carrier mutated")
	}
}

func TestImageEncodeValidation(t *testing.T) {
	tests := []struct {
		name          string
		pixels        []byte
		width, height int
		secret        string
		want          error
	}{
		{"empty secret", solidPixels(10, 10, 0, 0, 0), 10, 10, "", ErrEmptySecret},
		{"short buffer", make([]byte, 10), 10, 10, "hi", ErrBadCarrier},
		{"zero width", []byte{}, 0, 10, "hi", ErrBadCarrier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ImageEncode(tt.pixels, tt.width, tt.height, tt.secret, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("ImageEncode = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestImageDecodeNoTerminator(t *testing.T) {
	// Every LSB is 1, so the extracted stream is all 0xFF and the all-zero
	// terminator never appears. The scan must finish and fail cleanly.
	carrier := bytes.Repeat([]byte{0xFF}, 3000)

	_, err := ImageDecode(carrier, "")
	if !errors.Is(err, ErrNoHiddenMessage) {
		t.Errorf("ImageDecode = %v, want ErrNoHiddenMessage", err)
	}
}

func TestImageDecodeWrongPassword(t *testing.T) {
	// "hé" masked with "a" then unmasked with "b" yields 0x6B 0xC0 0xAA,
	// which is not valid UTF-8. The image path has no checksum, so the
	// failure is reported as corruption.
	carrier := solidPixels(10, 10, 50, 100, 150)

	out, err := ImageEncode(carrier, 10, 10, "hé", "a")
	if err != nil {
		t.Fatalf("ImageEncode: %v", err)
	}

	_, err = ImageDecode(out, "b")
	if !errors.Is(err, ErrCorrupted) {
		t.Errorf("ImageDecode with wrong password = %v, want ErrCorrupted", err)
	}
}

func TestImageDecodeZeroPayloadPrefix(t *testing.T) {
	// A carrier whose LSBs are all zero decodes to an empty payload: the
	// first five extracted bytes form the terminator immediately.
	carrier := solidPixels(10, 10, 120, 80, 200)

	got, err := ImageDecode(carrier, "")
	if err != nil {
		t.Fatalf("ImageDecode: %v", err)
	}
	if got != "" {
		t.Errorf("ImageDecode = %q, want empty payload", got)
	}
}
