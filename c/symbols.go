package c

import (
	"regexp"
	"strings"
)

// Heuristic, regex-based symbol harvesting. None of this parses C: the
// patterns over-match macro invocations shaped like calls and under-match
// declarations with unusual whitespace. The contract is best-effort
// syntactic recognition, not semantic correctness.

var (
	includeRe = regexp.MustCompile(`#include\s+[<"]([^>"]+)[>"]`)

	// <type tokens> <identifier> ( <params> ) followed by { or ;
	functionRe = regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*\s+)+([a-zA-Z_][a-zA-Z0-9_]*)\s*\([^{;]*\)\s*[{;]`)

	// typedef struct/union/enum [tag] { ... } Name;
	typedefAggregateRe = regexp.MustCompile(`(?s)typedef\s+(?:struct|union|enum)\s*[a-zA-Z_0-9]*\s*\{[^}]*\}\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*;`)
	// typedef existing-type Name;
	typedefAliasRe = regexp.MustCompile(`typedef\s+[a-zA-Z_][a-zA-Z0-9_ \t\*]*[ \t\*]([a-zA-Z_][a-zA-Z0-9_]*)\s*;`)

	declarationRe = regexp.MustCompile(`\b(int|char|float|double|long|short|unsigned|signed|void|size_t|bool|struct|enum|union)\s+([a-zA-Z_][a-zA-Z0-9_]*)`)
	parameterRe   = regexp.MustCompile(`\([^)]*\b([a-zA-Z_][a-zA-Z0-9_]*)\s*[,)]`)

	trailingWordRe = regexp.MustCompile(`[a-zA-Z0-9_]*$`)
)

// ExtractIncludes returns the #include targets found in text, matched
// line by line. Order follows first appearance; duplicates are dropped.
func ExtractIncludes(text string) []string {
	var headers []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(text, "\n") {
		m := includeRe.FindStringSubmatch(line)
		if m == nil || seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		headers = append(headers, m[1])
	}
	return headers
}

// ExtractFunctions returns the names of function definitions and
// declarations found in text. Keywords are filtered out so that
// constructs like "if (x)" or "while (x);" do not register.
func ExtractFunctions(text string) []string {
	var names []string
	for _, m := range functionRe.FindAllStringSubmatch(text, -1) {
		name := strings.TrimSpace(m[2])
		if name == "" || keywordSet[name] {
			continue
		}
		names = append(names, name)
	}
	return names
}

// ExtractTypedefs returns typedef'd names found in text, covering both
// aggregate typedefs and plain aliases.
func ExtractTypedefs(text string) []string {
	var names []string
	seen := make(map[string]bool)
	add := func(name string) {
		if name == "" || keywordSet[name] || seen[name] {
			return
		}
		seen[name] = true
		names = append(names, name)
	}
	for _, m := range typedefAggregateRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	for _, m := range typedefAliasRe.FindAllStringSubmatch(text, -1) {
		add(m[1])
	}
	return names
}

// LocalVars maps each identifier declared before the cursor to the
// offset of its last occurrence in the prefix text. It catches simple
// declarations and function parameters; recomputed per query and never
// cached.
func LocalVars(text string, pos int) map[string]int {
	if pos < 0 {
		return nil
	}
	if pos > len(text) {
		pos = len(text)
	}
	before := text[:pos]

	vars := make(map[string]int)
	for _, m := range declarationRe.FindAllStringSubmatch(before, -1) {
		name := m[2]
		if off := strings.LastIndex(before, name); off >= 0 {
			vars[name] = off
		}
	}
	for _, m := range parameterRe.FindAllStringSubmatch(before, -1) {
		name := m[1]
		if keywordSet[name] {
			continue
		}
		if off := strings.LastIndex(before, name); off >= 0 {
			vars[name] = off
		}
	}
	return vars
}

// Prefix returns the maximal run of identifier characters ending exactly
// at the cursor.
func Prefix(text string, pos int) string {
	if pos < 0 || pos > len(text) {
		return ""
	}
	return trailingWordRe.FindString(text[:pos])
}
