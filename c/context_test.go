package c

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		pos  int // -1 means end of text
		want Context
	}{
		{
			name: "plain code",
			text: "int x = 1;\nin",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "inside string literal",
			text: `printf("hel`,
			pos:  -1,
			want: ContextString,
		},
		{
			name: "after closed string",
			text: `printf("hello")` + "; x",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "escaped quote does not close string",
			text: `printf("a\"b`,
			pos:  -1,
			want: ContextString,
		},
		{
			name: "inside block comment",
			text: "/* this is a com",
			pos:  -1,
			want: ContextComment,
		},
		{
			name: "after closed block comment",
			text: "/* done */ in",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "inside line comment",
			text: "int x; // not",
			pos:  -1,
			want: ContextComment,
		},
		{
			name: "line comment ended by newline",
			text: "// note\nin",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "comment wins over unmatched paren",
			text: "// call( ",
			pos:  -1,
			want: ContextComment,
		},
		{
			name: "include line",
			text: "#include <st",
			pos:  -1,
			want: ContextInclude,
		},
		{
			name: "include line with leading whitespace",
			text: "  #include <my",
			pos:  -1,
			want: ContextInclude,
		},
		{
			name: "open quote on include line is a string",
			text: `#include "st`,
			pos:  -1,
			want: ContextString,
		},
		{
			name: "preprocessor line",
			text: "#def",
			pos:  -1,
			want: ContextPreprocessor,
		},
		{
			name: "include wins over preprocessor",
			text: "#include",
			pos:  -1,
			want: ContextInclude,
		},
		{
			name: "function arguments",
			text: "printf(x, ",
			pos:  -1,
			want: ContextFunctionArgs,
		},
		{
			name: "closed call is not function arguments",
			text: "printf(x); y",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "outer unmatched paren behind closed call",
			text: "foo(bar(1), ",
			pos:  -1,
			want: ContextFunctionArgs,
		},
		{
			name: "arrow member access",
			text: "ptr->",
			pos:  -1,
			want: ContextStructMember,
		},
		{
			name: "dot member access",
			text: "value.",
			pos:  -1,
			want: ContextStructMember,
		},
		{
			name: "preprocessor only applies to current line",
			text: "#include <stdio.h>\nin",
			pos:  -1,
			want: ContextCode,
		},
		{
			name: "cursor mid-document",
			text: "int x;\n// trailing comment",
			pos:  6,
			want: ContextCode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.pos
			if pos == -1 {
				pos = len(tt.text)
			}
			got, err := Classify(tt.text, pos)
			if err != nil {
				t.Fatalf("Classify(%q, %d) returned error: %v", tt.text, pos, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q, %d) = %v, want %v", tt.text, pos, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidCursor(t *testing.T) {
	for _, pos := range []int{-1, 100} {
		_, err := Classify("int x;", pos)
		if !errors.Is(err, ErrInvalidCursor) {
			t.Errorf("Classify with pos %d: got %v, want ErrInvalidCursor", pos, err)
		}
	}
}

func TestCurrentLine(t *testing.T) {
	text := "first\nsecond line\nthird"
	got := currentLine(text, len("first\nsec"))
	if got != "second line" {
		t.Errorf("currentLine = %q, want %q", got, "second line")
	}

	// Cursor at end of document, no trailing newline.
	got = currentLine(text, len(text))
	if got != "third" {
		t.Errorf("currentLine = %q, want %q", got, "third")
	}
}

func TestContextString_Names(t *testing.T) {
	contexts := []Context{
		ContextCode, ContextString, ContextComment, ContextInclude,
		ContextPreprocessor, ContextFunctionArgs, ContextStructMember,
	}
	seen := make(map[string]bool)
	for _, ctx := range contexts {
		name := ctx.String()
		if name == "" || strings.ContainsAny(name, " \t") {
			t.Errorf("context %d has bad name %q", ctx, name)
		}
		if seen[name] {
			t.Errorf("duplicate context name %q", name)
		}
		seen[name] = true
	}
}
