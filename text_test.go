package steg

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTextEncodeRuneCount(t *testing.T) {
	// 1 cover rune + START + 8*(2 checksum + 2 payload) bits + END = 35.
	out, err := TextEncode("A", "hi", "")
	if err != nil {
		t.Fatalf("TextEncode: %v", err)
	}
	if got := utf8.RuneCountInString(out); got != 35 {
		t.Errorf("encoded rune count = %d, want 35", got)
	}

	secret, err := TextDecode(out, "")
	if err != nil {
		t.Fatalf("TextDecode: %v", err)
	}
	if secret != "hi" {
		t.Errorf("round trip = %q, want %q", secret, "hi")
	}
}

func TestTextEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		cover    string
		secret   string
		password string
	}{
		{"no password", "Totally normal message.", "meet at noon", ""},
		{"with password", "Totally normal message.", "meet at noon", "sesame"},
		{"unicode secret", "Cover.", "привет мир", "clé"},
		{"multibyte cover", "日本語のカバー", "hidden", "鍵"},
		{"single rune cover", "A", "x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := TextEncode(tt.cover, tt.secret, tt.password)
			if err != nil {
				t.Fatalf("TextEncode: %v", err)
			}

			if got := StripInvisible(out); got != tt.cover {
				t.Errorf("visible text = %q, want cover %q", got, tt.cover)
			}
			if !HasHiddenMessage(out) {
				t.Error("HasHiddenMessage = false after encode")
			}

			secret, err := TextDecode(out, tt.password)
			if err != nil {
				t.Fatalf("TextDecode: %v", err)
			}
			if secret != tt.secret {
				t.Errorf("round trip = %q, want %q", secret, tt.secret)
			}
		})
	}
}

func TestTextEncodeValidation(t *testing.T) {
	tests := []struct {
		name   string
		cover  string
		secret string
		want   error
	}{
		{"empty cover", "", "secret", ErrEmptyCover},
		{"whitespace cover", "  \n\t", "secret", ErrEmptyCover},
		{"empty secret", "cover", "", ErrEmptySecret},
		{"whitespace secret", "cover", "   ", ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TextEncode(tt.cover, tt.secret, "")
			if !errors.Is(err, tt.want) {
				t.Errorf("TextEncode = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestTextDecodeWrongPassword(t *testing.T) {
	out, err := TextEncode("Cover text.", "secret", "right")
	if err != nil {
		t.Fatalf("TextEncode: %v", err)
	}

	for _, password := range []string{"wrong", "", "Right"} {
		_, err := TextDecode(out, password)
		if !errors.Is(err, ErrWrongPassword) {
			t.Errorf("TextDecode(password=%q) = %v, want ErrWrongPassword", password, err)
		}
	}
}

func TestTextDecodeNoSentinels(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"plain text", "nothing hidden here"},
		{"start only", "a" + string(runeStart) + "b"},
		{"end only", "a" + string(runeEnd) + "b"},
		{"end before start", "a" + string(runeEnd) + string(runeOne) + string(runeStart) + "b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TextDecode(tt.text, "")
			if !errors.Is(err, ErrNoHiddenMessage) {
				t.Errorf("TextDecode(%q) = %v, want ErrNoHiddenMessage", tt.name, err)
			}
		})
	}
}

func TestTextDecodeCorruptRuns(t *testing.T) {
	run := func(bits ...rune) string {
		var b strings.Builder
		b.WriteRune(runeStart)
		for _, r := range bits {
			b.WriteRune(r)
		}
		b.WriteRune(runeEnd)
		return "A" + b.String() + "B"
	}

	tests := []struct {
		name string
		text string
	}{
		{"empty run", run()},
		{"ragged bits", run(runeOne, runeOne, runeOne)},
		{"one byte only", run(runeZero, runeZero, runeZero, runeZero, runeZero, runeZero, runeZero, runeOne)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := TextDecode(tt.text, "")
			if !errors.Is(err, ErrCorrupted) {
				t.Errorf("TextDecode = %v, want ErrCorrupted", err)
			}
		})
	}
}

func TestTextDecodeIgnoresVisibleRunesInRun(t *testing.T) {
	out, err := TextEncode("Cover.", "hi", "")
	if err != nil {
		t.Fatalf("TextEncode: %v", err)
	}

	// Splice ordinary characters right after START; the decoder collects
	// only the zero-width bit runes, so the frame is unaffected.
	si := strings.IndexRune(out, runeStart)
	cut := si + utf8.RuneLen(runeStart)
	damaged := out[:cut] + "xyz" + out[cut:]

	secret, err := TextDecode(damaged, "")
	if err != nil {
		t.Fatalf("TextDecode: %v", err)
	}
	if secret != "hi" {
		t.Errorf("TextDecode = %q, want %q", secret, "hi")
	}
}

func TestStripInvisible(t *testing.T) {
	run := string(runeStart) + string(runeOne) + string(runeZero) + string(runeEnd)

	tests := []struct {
		input string
		want  string
	}{
		{"A" + run + "B", "AB"},
		{"no invisibles", "no invisibles"},
		{run, ""},
	}

	for _, tt := range tests {
		if got := StripInvisible(tt.input); got != tt.want {
			t.Errorf("StripInvisible(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestHasHiddenMessage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"both sentinels", "a" + string(runeStart) + string(runeEnd) + "b", true},
		{"start only", "a" + string(runeStart), false},
		{"plain", "plain text", false},
	}

	for _, tt := range tests {
		if got := HasHiddenMessage(tt.text); got != tt.want {
			t.Errorf("HasHiddenMessage(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
