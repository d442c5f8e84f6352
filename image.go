package steg

// terminatorLen is the length of the all-zero run ending an image frame.
const terminatorLen = 5

// imageTerminator marks the end of an image-embedded frame. Fixed at
// initialization, never mutated.
var imageTerminator = make([]byte, terminatorLen)

// ImageCapacity returns the number of payload characters an image with
// pixelCount pixels can hold: three bits per pixel, minus the terminator.
// The result is negative for carriers too small for the terminator alone;
// callers should clamp it at zero.
func ImageCapacity(pixelCount int) int {
	return pixelCount*3/8 - terminatorLen
}

// lsbEmbed writes the MSB-first bit expansion of frame into the
// least-significant bits of carrier. The caller has already verified
// len(frame)*8 <= len(carrier). Bytes beyond the frame are left untouched,
// and every touched byte keeps its upper 7 bits.
func lsbEmbed(carrier, frame []byte) {
	eachBit(frame, func(i int, bit byte) {
		carrier[i] = carrier[i]&0xFE | bit
	})
}

// lsbExtract scans the least-significant bits of carrier, grouping them
// MSB-first into bytes, and returns everything before the first 5-byte
// all-zero run.
//
// Stopping at the first all-zero run is a probabilistic termination rule:
// a payload that itself contains
// five consecutive zero bytes truncates there. The scan is bounded by the
// carrier length; a carrier with no terminator fails with
// ErrNoHiddenMessage.
func lsbExtract(carrier []byte) ([]byte, error) {
	decoded := make([]byte, 0, len(carrier)/8)

	var cur byte
	nbits := 0
	for _, b := range carrier {
		cur = cur<<1 | b&1
		nbits++
		if nbits < 8 {
			continue
		}
		decoded = append(decoded, cur)
		cur, nbits = 0, 0

		if n := len(decoded); n >= terminatorLen && allZero(decoded[n-terminatorLen:]) {
			return decoded[:n-terminatorLen], nil
		}
	}
	return nil, ErrNoHiddenMessage
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
