package tui

import (
	"reflect"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestWrapTextBreaksAtSpaces(t *testing.T) {
	got := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapTextKeepsParagraphs(t *testing.T) {
	got := wrapText("first\n\nsecond", 20)
	want := []string{"first", "", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapTextSplitsLongWord(t *testing.T) {
	got := wrapText("abcdefghij", 4)
	want := []string{"abcd", "efgh", "ij"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	got := wrapText("日本語 日本語", 6)
	for _, line := range got {
		if w := runewidth.StringWidth(line); w > 6 {
			t.Fatalf("line %q is %d cells wide", line, w)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 lines, got %q", got)
	}
}

func TestWrapTextNoWidth(t *testing.T) {
	got := wrapText("a b\nc", 0)
	if !reflect.DeepEqual(got, []string{"a b", "c"}) {
		t.Fatalf("unexpected %q", got)
	}
}
