package minify

import "testing"

func TestPassthroughReturnsInputUnchanged(t *testing.T) {
	src := "function f(){\n\n  return 1;\n}\n"
	got, err := Passthrough{}.MinifyJS(src)
	if err != nil || got != src {
		t.Fatalf("MinifyJS() = %q,%v want %q,nil", got, err, src)
	}
}

func TestWhitespaceCollapsesBlankRuns(t *testing.T) {
	src := "a\n\n\n\nb   \n"
	got, err := Whitespace{}.MinifyJS(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "a\n\nb\n"
	if got != want {
		t.Fatalf("MinifyJS() = %q, want %q", got, want)
	}
}
