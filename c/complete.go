package c

import (
	"sort"
	"strings"
)

// SymbolKind tags a completion candidate with where it came from.
type SymbolKind string

const (
	KindKeyword      SymbolKind = "keyword"
	KindType         SymbolKind = "type"
	KindFunction     SymbolKind = "function"
	KindVariable     SymbolKind = "variable"
	KindPreprocessor SymbolKind = "preprocessor"
	KindHeader       SymbolKind = "header"
	KindSnippet      SymbolKind = "snippet"
	KindMember       SymbolKind = "member"
)

// Candidate is a single completion suggestion.
type Candidate struct {
	Kind SymbolKind
	Text string
}

// SymbolSource supplies project-wide symbols to the engine. A scan of
// the project tree backs the usual implementation; queries must never
// mutate the source.
type SymbolSource interface {
	Functions() []string
	Headers() []string
	Types() []string
}

// Engine produces context-aware completion candidates for C source
// text. The zero value works with the static tables alone; attach a
// SymbolSource to include project symbols.
type Engine struct {
	Symbols SymbolSource
}

// NewEngine returns an engine backed by the given symbol source, which
// may be nil.
func NewEngine(symbols SymbolSource) *Engine {
	return &Engine{Symbols: symbols}
}

// Completions returns the ranked candidates for the cursor position.
// String and comment contexts suppress completion entirely, as does an
// empty prefix; both yield an empty result, not an error.
func (e *Engine) Completions(text string, pos int) ([]Candidate, error) {
	context, err := Classify(text, pos)
	if err != nil {
		return nil, err
	}
	if context == ContextString || context == ContextComment {
		return nil, nil
	}

	prefix := Prefix(text, pos)
	if prefix == "" {
		return nil, nil
	}

	pool := e.gather(context, text, pos)
	return rank(pool, prefix), nil
}

// gather builds the unfiltered candidate pool for a context.
func (e *Engine) gather(context Context, text string, pos int) []Candidate {
	var pool []Candidate

	switch context {
	case ContextInclude:
		seen := make(map[string]bool)
		for _, h := range StandardHeaders {
			seen[h] = true
			pool = append(pool, Candidate{KindHeader, h})
		}
		if e.Symbols != nil {
			// Project headers can re-include standard ones; offer each
			// name once.
			for _, h := range e.Symbols.Headers() {
				if seen[h] {
					continue
				}
				seen[h] = true
				pool = append(pool, Candidate{KindHeader, h})
			}
		}

	case ContextPreprocessor:
		for _, d := range PreprocessorDirectives {
			pool = append(pool, Candidate{KindPreprocessor, d})
		}

	case ContextStructMember:
		// Placeholder set: the receiver's type is never resolved.
		for _, m := range structMemberPlaceholders {
			pool = append(pool, Candidate{KindMember, m})
		}

	default: // function-args and general code share the full pool
		for _, kw := range Keywords {
			pool = append(pool, Candidate{KindKeyword, kw})
		}
		for _, t := range Types {
			pool = append(pool, Candidate{KindType, t})
		}
		for _, fn := range e.stdlibFor(text) {
			pool = append(pool, Candidate{KindFunction, fn})
		}
		if e.Symbols != nil {
			for _, fn := range e.Symbols.Functions() {
				pool = append(pool, Candidate{KindFunction, fn})
			}
			for _, t := range e.Symbols.Types() {
				pool = append(pool, Candidate{KindType, t})
			}
		}
		for name := range LocalVars(text, pos) {
			pool = append(pool, Candidate{KindVariable, name})
		}
		for name := range Snippets {
			pool = append(pool, Candidate{KindSnippet, name})
		}
	}

	return pool
}

// stdlibFor returns the standard-library functions visible to the
// document. With at least one known header included, only the functions
// of included headers are offered; with none, the whole table is.
func (e *Engine) stdlibFor(text string) []string {
	included := ExtractIncludes(text)

	var known []string
	for _, header := range included {
		if _, ok := StdlibFunctions[header]; ok {
			known = append(known, header)
		}
	}
	if len(known) == 0 {
		known = make([]string, 0, len(StdlibFunctions))
		for header := range StdlibFunctions {
			known = append(known, header)
		}
	}

	var fns []string
	for _, header := range known {
		fns = append(fns, StdlibFunctions[header]...)
	}
	return fns
}

// rank filters the pool to candidates containing the prefix
// (case-insensitive) and orders them in two tiers: prefix-starting
// matches first, contains-only matches after, each tier alphabetical by
// lowercase form.
func rank(pool []Candidate, prefix string) []Candidate {
	lower := strings.ToLower(prefix)

	var starts, contains []Candidate
	for _, cand := range pool {
		lc := strings.ToLower(cand.Text)
		switch {
		case strings.HasPrefix(lc, lower):
			starts = append(starts, cand)
		case strings.Contains(lc, lower):
			contains = append(contains, cand)
		}
	}

	byLowerText := func(cands []Candidate) func(i, j int) bool {
		return func(i, j int) bool {
			a := strings.ToLower(cands[i].Text)
			b := strings.ToLower(cands[j].Text)
			if a == b {
				return cands[i].Kind < cands[j].Kind
			}
			return a < b
		}
	}
	sort.SliceStable(starts, byLowerText(starts))
	sort.SliceStable(contains, byLowerText(contains))

	return append(starts, contains...)
}

// Apply splices the chosen candidate over the prefix run ending at the
// cursor and returns the updated text with the new cursor offset. Text
// outside the prefix span is never modified.
//
// Function candidates get an empty argument list appended with the
// cursor between the parentheses. Snippet candidates expand to their
// template with the cursor at the first indented placeholder line.
func (e *Engine) Apply(text string, pos int, cand Candidate) (string, int, error) {
	if pos < 0 || pos > len(text) {
		return "", 0, ErrInvalidCursor
	}

	prefix := Prefix(text, pos)
	start := pos - len(prefix)
	before, after := text[:start], text[pos:]

	switch cand.Kind {
	case KindSnippet:
		body, ok := Snippets[cand.Text]
		if !ok {
			body = cand.Text
		}
		newText := before + body + after
		cursor := start + len(body)
		if idx := strings.Index(body, "\n    "); idx >= 0 {
			cursor = start + idx + len("\n    ")
		}
		return newText, cursor, nil

	case KindFunction:
		inserted := cand.Text + "()"
		newText := before + inserted + after
		return newText, start + len(cand.Text) + 1, nil

	default:
		newText := before + cand.Text + after
		return newText, start + len(cand.Text), nil
	}
}
