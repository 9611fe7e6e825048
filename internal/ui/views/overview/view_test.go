package overview

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTrimKeepsShortNames(t *testing.T) {
	t.Parallel()
	if got := trim("Deep Work", 14); got != "Deep Work" {
		t.Fatalf("trim = %q, want unchanged", got)
	}
}

func TestTrimCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	name := "Göteborgsstudier" // 16 runes, more bytes
	got := trim(name, 14)
	if !utf8.ValidString(got) {
		t.Fatalf("trim produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("trim = %q, want ellipsis suffix", got)
	}
	if n := utf8.RuneCountInString(got); n != 14 {
		t.Fatalf("trim kept %d runes, want 14", n)
	}

	// All-multibyte input must not be over-counted by byte length.
	if got := trim("日本語の勉強", 14); got != "日本語の勉強" {
		t.Fatalf("trim = %q, want 6-rune name unchanged", got)
	}
}
