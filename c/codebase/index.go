// Package codebase maintains the project-wide symbol index for C
// source trees: function names, included headers, and typedef'd type
// names, harvested by heuristic scanning.
package codebase

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	ignore "github.com/sabhiram/go-gitignore"

	"github.com/PrakharDoneria/ChiX/c"
	"github.com/PrakharDoneria/ChiX/logging"
)

// Index caches symbols harvested from a project tree. A full Scan
// replaces the cached state wholesale; there is no partial
// invalidation. Reads and the wholesale replace are guarded by a
// single-writer/many-reader lock so a host may query during a
// background rescan.
type Index struct {
	mu      sync.RWMutex
	rootDir string
	logger  *slog.Logger

	// function name -> every file it was found in
	functions map[string][]string
	headers   map[string]bool
	types     map[string]bool

	// per-file symbols, kept so single-file updates can rebuild the
	// aggregate maps
	files map[string]*fileSymbols
}

type fileSymbols struct {
	Functions []string
	Headers   []string
	Types     []string
}

// New returns an empty index rooted at rootDir.
func New(rootDir string) *Index {
	return &Index{
		rootDir:   rootDir,
		logger:    logging.Nop(),
		functions: make(map[string][]string),
		headers:   make(map[string]bool),
		types:     make(map[string]bool),
		files:     make(map[string]*fileSymbols),
	}
}

// SetLogger attaches a logger for scan diagnostics.
func (idx *Index) SetLogger(logger *slog.Logger) {
	if logger != nil {
		idx.logger = logger
	}
}

// RootDir returns the project root this index scans.
func (idx *Index) RootDir() string {
	return idx.rootDir
}

// Scan walks the project tree and rebuilds the index from every .c and
// .h file found. The walk has no depth limit and honors the project's
// .gitignore. Unreadable files are skipped; a single bad file never
// aborts the scan.
func (idx *Index) Scan() error {
	matcher := loadGitignore(idx.rootDir)
	files := make(map[string]*fileSymbols)

	err := filepath.WalkDir(idx.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			idx.logger.Debug("walk error", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if matcher != nil && path != idx.rootDir {
				if rel, relErr := filepath.Rel(idx.rootDir, path); relErr == nil && matcher.MatchesPath(rel) {
					return filepath.SkipDir
				}
			}
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".c" && ext != ".h" {
			return nil
		}
		if matcher != nil {
			if rel, relErr := filepath.Rel(idx.rootDir, path); relErr == nil && matcher.MatchesPath(rel) {
				return nil
			}
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			idx.logger.Debug("skipping unreadable file", "path", path, "error", readErr)
			return nil
		}
		files[path] = harvest(string(content))
		return nil
	})
	if err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.files = files
	idx.rebuildLocked()
	idx.logger.Info("scan complete",
		"root", idx.rootDir,
		"files", len(files),
		"functions", len(idx.functions),
		"headers", len(idx.headers))
	return nil
}

// ScanFile re-harvests a single file, for watcher-driven updates.
func (idx *Index) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.files[path] = harvest(string(content))
	idx.rebuildLocked()
	return nil
}

// RemoveFile drops a file's symbols from the index.
func (idx *Index) RemoveFile(path string) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	delete(idx.files, path)
	idx.rebuildLocked()
}

func harvest(content string) *fileSymbols {
	return &fileSymbols{
		Functions: c.ExtractFunctions(content),
		Headers:   c.ExtractIncludes(content),
		Types:     c.ExtractTypedefs(content),
	}
}

func (idx *Index) rebuildLocked() {
	functions := make(map[string][]string)
	headers := make(map[string]bool)
	types := make(map[string]bool)

	paths := make([]string, 0, len(idx.files))
	for path := range idx.files {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		symbols := idx.files[path]
		for _, fn := range symbols.Functions {
			functions[fn] = append(functions[fn], path)
		}
		for _, h := range symbols.Headers {
			headers[h] = true
		}
		for _, t := range symbols.Types {
			types[t] = true
		}
	}

	idx.functions = functions
	idx.headers = headers
	idx.types = types
}

// Functions returns the sorted project function names. Satisfies
// c.SymbolSource.
func (idx *Index) Functions() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return sortedKeys(idx.functions)
}

// Headers returns the sorted set of headers included anywhere in the
// project. Satisfies c.SymbolSource.
func (idx *Index) Headers() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return sortedSet(idx.headers)
}

// Types returns the sorted typedef'd type names. Satisfies
// c.SymbolSource.
func (idx *Index) Types() []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return sortedSet(idx.types)
}

// FilesFor returns every file a function name was found in. Multiple
// definitions and declarations across files are all retained.
func (idx *Index) FilesFor(function string) []string {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	paths := idx.functions[function]
	out := make([]string, len(paths))
	copy(out, paths)
	return out
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedSet(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func loadGitignore(root string) *ignore.GitIgnore {
	path := filepath.Join(root, ".gitignore")
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	matcher, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return matcher
}
