package c

import (
	"errors"
	"strings"
	"testing"
)

type fakeSource struct {
	functions []string
	headers   []string
	types     []string
}

func (f *fakeSource) Functions() []string { return f.functions }
func (f *fakeSource) Headers() []string   { return f.headers }
func (f *fakeSource) Types() []string     { return f.types }

func TestCompletionsIncludeContext(t *testing.T) {
	engine := NewEngine(nil)
	text := "#include <st"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"stdio.h", "stdlib.h", "string.h"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates %v, want %d", len(got), got, len(want))
	}
	for i, header := range want {
		if got[i].Text != header || got[i].Kind != KindHeader {
			t.Errorf("candidate %d = %v, want header %q", i, got[i], header)
		}
	}
}

func TestCompletionsIncludeProjectHeaders(t *testing.T) {
	engine := NewEngine(&fakeSource{headers: []string{"stack.h"}})
	text := "#include <st"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}

	if !hasCandidate(got, KindHeader, "stack.h") {
		t.Errorf("project header stack.h missing from %v", got)
	}
}

func TestCompletionsIncludeHeadersDeduplicated(t *testing.T) {
	// A project that re-includes a standard header must not produce the
	// candidate twice.
	engine := NewEngine(&fakeSource{headers: []string{"stdio.h", "stack.h"}})
	text := "#include <st"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, cand := range got {
		if cand.Kind == KindHeader && cand.Text == "stdio.h" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("stdio.h offered %d times in %v, want once", count, got)
	}
}

func TestCompletionsGeneralContext(t *testing.T) {
	engine := NewEngine(nil)
	text := "int main() {\n    pri"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected candidates for prefix pri")
	}

	if !hasCandidate(got, KindFunction, "printf") {
		t.Errorf("printf missing from %v", got)
	}

	// printf starts with the prefix, so it must appear in the leading
	// tier, before any contains-only match.
	for i, cand := range got {
		if cand.Kind == KindFunction && cand.Text == "printf" {
			for j := 0; j < i; j++ {
				if !strings.HasPrefix(strings.ToLower(got[j].Text), "pri") {
					t.Errorf("contains-only match %v ranked before prefix match printf", got[j])
				}
			}
			break
		}
	}
}

func TestCompletionsStdlibScopedToIncludes(t *testing.T) {
	engine := NewEngine(nil)

	// Only string.h included: strlen offered, malloc not.
	text := "#include <string.h>\nint main() {\n    l"
	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if !hasCandidate(got, KindFunction, "strlen") {
		t.Errorf("strlen missing with string.h included: %v", got)
	}
	if hasCandidate(got, KindFunction, "malloc") {
		t.Errorf("malloc offered without stdlib.h: %v", got)
	}

	// No includes at all: the whole table is fair game.
	text = "ma"
	got, err = engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if !hasCandidate(got, KindFunction, "malloc") {
		t.Errorf("malloc missing from include-free document: %v", got)
	}
}

func TestCompletionsProjectSymbols(t *testing.T) {
	engine := NewEngine(&fakeSource{
		functions: []string{"parse_config", "print_usage"},
		types:     []string{"config_t"},
	})

	text := "par"
	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if !hasCandidate(got, KindFunction, "parse_config") {
		t.Errorf("project function missing: %v", got)
	}

	text = "config"
	got, err = engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if !hasCandidate(got, KindType, "config_t") {
		t.Errorf("project type missing: %v", got)
	}
}

func TestCompletionsLocalVariables(t *testing.T) {
	engine := NewEngine(nil)
	text := "int counter = 0;\ncou"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if !hasCandidate(got, KindVariable, "counter") {
		t.Errorf("local variable counter missing: %v", got)
	}
}

func TestCompletionsSuppressed(t *testing.T) {
	engine := NewEngine(nil)
	tests := []struct {
		name string
		text string
		pos  int
	}{
		{"inside string", `printf("abc`, len(`printf("abc`)},
		{"string interior offset", `x = "abc";`, 7},
		{"open quote on include line", `#include "st`, len(`#include "st`)},
		{"inside line comment", "// pri", 6},
		{"inside block comment", "/* pri", 6},
		{"empty prefix", "int x = ", 8},
		{"empty document", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Completions(tt.text, tt.pos)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 0 {
				t.Errorf("expected no candidates, got %v", got)
			}
		})
	}
}

func TestCompletionsRankingInvariant(t *testing.T) {
	engine := NewEngine(&fakeSource{functions: []string{"do_insert", "insert_node"}})
	text := "in"

	got, err := engine.Completions(text, len(text))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) == 0 {
		t.Fatal("expected candidates")
	}

	// Once a contains-only match appears, no prefix match may follow,
	// and each tier must be alphabetically non-decreasing.
	inContainsTier := false
	prevInTier := ""
	for _, cand := range got {
		lc := strings.ToLower(cand.Text)
		starts := strings.HasPrefix(lc, "in")
		if !starts {
			if !inContainsTier {
				inContainsTier = true
				prevInTier = ""
			}
		} else if inContainsTier {
			t.Fatalf("prefix match %q after contains-only tier began", cand.Text)
		}
		if prevInTier != "" && lc < prevInTier {
			t.Errorf("tier not sorted: %q after %q", lc, prevInTier)
		}
		prevInTier = lc
	}
	if !inContainsTier {
		t.Fatal("expected at least one contains-only match (do_insert)")
	}
}

func TestCompletionsInvalidCursor(t *testing.T) {
	engine := NewEngine(nil)
	if _, err := engine.Completions("int x;", 99); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("got %v, want ErrInvalidCursor", err)
	}
	if _, err := engine.Completions("int x;", -2); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("got %v, want ErrInvalidCursor", err)
	}
}

func TestApplyPlain(t *testing.T) {
	engine := NewEngine(nil)

	newText, newPos, err := engine.Apply("int ret", 7, Candidate{KindKeyword, "return"})
	if err != nil {
		t.Fatal(err)
	}
	if newText != "int return" {
		t.Errorf("newText = %q", newText)
	}
	if newPos != len("int return") {
		t.Errorf("newPos = %d, want %d", newPos, len("int return"))
	}
}

func TestApplyFunction(t *testing.T) {
	engine := NewEngine(nil)

	newText, newPos, err := engine.Apply("pri", 3, Candidate{KindFunction, "printf"})
	if err != nil {
		t.Fatal(err)
	}
	if newText != "printf()" {
		t.Errorf("newText = %q, want %q", newText, "printf()")
	}
	if newPos != 7 {
		t.Errorf("newPos = %d, want 7 (between the parentheses)", newPos)
	}
}

func TestApplySnippet(t *testing.T) {
	engine := NewEngine(nil)

	newText, newPos, err := engine.Apply("for", 3, Candidate{KindSnippet, "for"})
	if err != nil {
		t.Fatal(err)
	}
	body := Snippets["for"]
	if newText != body {
		t.Errorf("newText = %q, want the for template", newText)
	}
	wantPos := strings.Index(body, "\n    ") + len("\n    ")
	if newPos != wantPos {
		t.Errorf("newPos = %d, want %d (first placeholder line)", newPos, wantPos)
	}
}

func TestApplySpliceLocality(t *testing.T) {
	engine := NewEngine(nil)
	text := "int x;\nprintf(val);\nval"
	pos := len(text)

	newText, _, err := engine.Apply(text, pos, Candidate{KindVariable, "value"})
	if err != nil {
		t.Fatal(err)
	}

	prefixStart := pos - len("val")
	if newText[:prefixStart] != text[:prefixStart] {
		t.Errorf("text before splice span changed: %q", newText[:prefixStart])
	}
	if !strings.HasSuffix(newText, "value") {
		t.Errorf("splice result = %q", newText)
	}
}

func TestApplyInvalidCursor(t *testing.T) {
	engine := NewEngine(nil)
	if _, _, err := engine.Apply("x", 5, Candidate{KindKeyword, "if"}); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("got %v, want ErrInvalidCursor", err)
	}
}

func hasCandidate(cands []Candidate, kind SymbolKind, text string) bool {
	for _, cand := range cands {
		if cand.Kind == kind && cand.Text == text {
			return true
		}
	}
	return false
}
