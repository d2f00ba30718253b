package ui

import "testing"

func TestReflowParagraphs(t *testing.T) {
	got := ReflowParagraphs("one two three four\n\n  five   six ", 9)

	expected := "one two\nthree\nfour\n\nfive six"
	if got != expected {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestReflowParagraphsEmpty(t *testing.T) {
	if got := ReflowParagraphs("   \n ", 20); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestIndentBlock(t *testing.T) {
	if got := IndentBlock("a\nb\n", 2); got != "  a\n  b" {
		t.Fatalf("unexpected indent %q", got)
	}
	if got := IndentBlock("a", 0); got != "a" {
		t.Fatalf("unexpected indent %q", got)
	}
}
