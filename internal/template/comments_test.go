package template

import (
	"strings"
	"testing"
)

func TestStripCommentsRemovesBlockComments(t *testing.T) {
	in := "var a = 1;\n/* drop\nthis */\nvar b = 2;\n"
	got := StripComments(in)
	if got == in {
		t.Fatalf("expected block comment removed")
	}
	if strings.Contains(got, "drop") {
		t.Fatalf("block comment body leaked into output: %q", got)
	}
}

func TestStripCommentsIgnoresSlashesInsideStrings(t *testing.T) {
	in := `var url = "https://example.com"; // real comment` + "\n"
	got := StripComments(in)
	if !strings.Contains(got, "https://example.com") {
		t.Fatalf("URL inside string was stripped: %q", got)
	}
	if strings.Contains(got, "real comment") {
		t.Fatalf("line comment not stripped: %q", got)
	}
}

func TestNormalizeJSIncludeStripsUseStrictAndCollapsesSemicolonBrace(t *testing.T) {
	in := `"use strict";` + "\nfunction f(){var a=1;}\n"
	got := normalizeJSInclude(in)
	if strings.Contains(got, "use strict") {
		t.Fatalf("use strict not stripped: %q", got)
	}
	if strings.Contains(got, ";}") {
		t.Fatalf(";} not collapsed: %q", got)
	}
}

func TestNormalizeCSSIncludeSpacesPlusAndFixesOpacity(t *testing.T) {
	in := "calc(1px+2px);opacity:0;"
	got := normalizeCSSInclude(in)
	if !strings.Contains(got, "1px + 2px") {
		t.Fatalf("expected spaced +, got %q", got)
	}
	if !strings.Contains(got, "opacity: 0") {
		t.Fatalf("expected opacity: 0, got %q", got)
	}
}

func TestRenormalizeCollapsesFourSpacesToTab(t *testing.T) {
	in := "    indented\n\tone tab\n"
	got := Renormalize(in)
	if strings.Contains(got, "    ") {
		t.Fatalf("expected no remaining 4-space runs: %q", got)
	}
}
