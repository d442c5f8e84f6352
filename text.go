package steg

import (
	"strings"
	"unicode/utf8"
)

// Reserved zero-width scalar values. None of them renders, and all four
// are disjoint from ordinary cover-text content.
const (
	runeZero  = '\u200b' // ZERO WIDTH SPACE: bit 0
	runeOne   = '\u200c' // ZERO WIDTH NON-JOINER: bit 1
	runeStart = '\ufeff' // ZERO WIDTH NO-BREAK SPACE: frame start sentinel
	runeEnd   = '\u200d' // ZERO WIDTH JOINER: frame end sentinel
)

// spliceInvisible builds the invisible run START + frame bits + END and
// inserts it immediately after the first rune of cover. Sentinel search on
// decode operates on scalar values, so splicing at a rune boundary keeps
// multi-byte cover text intact.
func spliceInvisible(cover string, frame []byte) string {
	_, first := utf8.DecodeRuneInString(cover)

	var b strings.Builder
	b.Grow(len(cover) + (len(frame)*8+2)*3)
	b.WriteString(cover[:first])
	b.WriteRune(runeStart)
	eachBit(frame, func(_ int, bit byte) {
		if bit == 1 {
			b.WriteRune(runeOne)
		} else {
			b.WriteRune(runeZero)
		}
	})
	b.WriteRune(runeEnd)
	b.WriteString(cover[first:])
	return b.String()
}

// extractFrame recovers the frame bytes from the invisible run in text.
// It requires exactly the first START and the first END with START
// strictly before END; scalar values between them that are neither
// runeZero nor runeOne are ignored, so the bit run need not be contiguous.
func extractFrame(text string) ([]byte, error) {
	si := strings.IndexRune(text, runeStart)
	ei := strings.IndexRune(text, runeEnd)
	if si < 0 || ei < 0 || ei <= si {
		return nil, ErrNoHiddenMessage
	}

	var bits []byte
	for _, r := range text[si+utf8.RuneLen(runeStart) : ei] {
		switch r {
		case runeZero:
			bits = append(bits, 0)
		case runeOne:
			bits = append(bits, 1)
		}
	}
	if len(bits) == 0 || len(bits)%8 != 0 {
		return nil, ErrCorrupted
	}
	return packBits(bits), nil
}

// StripInvisible returns text with all four reserved scalar values
// removed, leaving only the visible cover.
func StripInvisible(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case runeZero, runeOne, runeStart, runeEnd:
			return -1
		}
		return r
	}, text)
}

// HasHiddenMessage reports whether text contains both frame sentinels.
// It is a cheap pre-check; TextDecode still validates ordering and the
// bit run itself.
func HasHiddenMessage(text string) bool {
	return strings.ContainsRune(text, runeStart) && strings.ContainsRune(text, runeEnd)
}
