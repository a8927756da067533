package c

import (
	"errors"
	"regexp"
	"strings"
)

// Context is the lexical category of the text immediately surrounding
// the cursor.
type Context int

const (
	// ContextCode is the default when no more specific context applies.
	ContextCode Context = iota
	ContextString
	ContextComment
	ContextInclude
	ContextPreprocessor
	ContextFunctionArgs
	ContextStructMember
)

func (c Context) String() string {
	switch c {
	case ContextString:
		return "string"
	case ContextComment:
		return "comment"
	case ContextInclude:
		return "include"
	case ContextPreprocessor:
		return "preprocessor"
	case ContextFunctionArgs:
		return "function-args"
	case ContextStructMember:
		return "struct-member"
	default:
		return "code"
	}
}

// ErrInvalidCursor is returned when a cursor offset lies outside
// [0, len(text)].
var ErrInvalidCursor = errors.New("cursor offset outside document bounds")

var (
	includeLineRe      = regexp.MustCompile(`^\s*#include`)
	preprocessorLineRe = regexp.MustCompile(`^\s*#`)
)

// Classify determines the context at the given cursor offset. Checks run
// in a fixed precedence order: string and comment suppression dominate
// everything, the line-anchored include/preprocessor checks come before
// the paren-balance heuristic, and member access is checked last before
// falling through to plain code.
func Classify(text string, pos int) (Context, error) {
	if pos < 0 || pos > len(text) {
		return ContextCode, ErrInvalidCursor
	}
	before := text[:pos]

	if insideString(before) {
		return ContextString, nil
	}
	if insideComment(before) {
		return ContextComment, nil
	}

	line := currentLine(text, pos)
	if includeLineRe.MatchString(line) {
		return ContextInclude, nil
	}
	if preprocessorLineRe.MatchString(line) {
		return ContextPreprocessor, nil
	}

	if hasUnmatchedOpenParen(before) {
		return ContextFunctionArgs, nil
	}

	if strings.HasSuffix(before, "->") || strings.HasSuffix(before, ".") {
		return ContextStructMember, nil
	}

	return ContextCode, nil
}

// insideString reports whether the prefix contains an odd number of
// unescaped double quotes. A quote immediately preceded by a backslash
// does not toggle state.
func insideString(before string) bool {
	open := false
	for i := 0; i < len(before); i++ {
		if before[i] == '"' && (i == 0 || before[i-1] != '\\') {
			open = !open
		}
	}
	return open
}

func insideComment(before string) bool {
	if start := strings.LastIndex(before, "/*"); start >= 0 {
		if !strings.Contains(before[start:], "*/") {
			return true
		}
	}
	if start := strings.LastIndex(before, "//"); start >= 0 {
		if !strings.Contains(before[start:], "\n") {
			return true
		}
	}
	return false
}

// currentLine returns the full line containing the cursor, including any
// text after the cursor up to the next newline.
func currentLine(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		return text[start:]
	}
	return text[start : pos+end]
}

// hasUnmatchedOpenParen scans backward for the nearest '(' that has no
// matching ')' before the cursor.
func hasUnmatchedOpenParen(before string) bool {
	depth := 0
	for i := len(before) - 1; i >= 0; i-- {
		switch before[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				return true
			}
			depth--
		}
	}
	return false
}
