package codebase

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestCacheRoundtrip(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "app.c", `#include <stdio.h>
#include "app.h"

int run_app(void) { return 0; }
`)
	writeFile(t, dir, "app.h", `typedef struct app_state { int code; } app_state_t;

int run_app(void);
`)

	index := New(dir)
	if err := index.Scan(); err != nil {
		t.Fatal(err)
	}

	dbPath := CachePath(dir)
	if err := index.SaveCache(dbPath); err != nil {
		t.Fatal(err)
	}

	restored := New(dir)
	if err := restored.LoadCache(dbPath); err != nil {
		t.Fatal(err)
	}

	if got, want := restored.Functions(), index.Functions(); !reflect.DeepEqual(got, want) {
		t.Errorf("Functions after load = %v, want %v", got, want)
	}
	if got, want := restored.Headers(), index.Headers(); !reflect.DeepEqual(got, want) {
		t.Errorf("Headers after load = %v, want %v", got, want)
	}
	if got, want := restored.Types(), index.Types(); !reflect.DeepEqual(got, want) {
		t.Errorf("Types after load = %v, want %v", got, want)
	}
	if got, want := restored.FilesFor("run_app"), index.FilesFor("run_app"); !reflect.DeepEqual(got, want) {
		t.Errorf("FilesFor after load = %v, want %v", got, want)
	}
}

func TestSaveCacheReplacesPrevious(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.c", "int old_symbol(void);\n")
	dbPath := CachePath(dir)

	index := New(dir)
	if err := index.Scan(); err != nil {
		t.Fatal(err)
	}
	if err := index.SaveCache(dbPath); err != nil {
		t.Fatal(err)
	}

	writeFile(t, dir, filepath.Base(path), "int new_symbol(void);\n")
	if err := index.Scan(); err != nil {
		t.Fatal(err)
	}
	if err := index.SaveCache(dbPath); err != nil {
		t.Fatal(err)
	}

	restored := New(dir)
	if err := restored.LoadCache(dbPath); err != nil {
		t.Fatal(err)
	}
	if got := restored.Functions(); !reflect.DeepEqual(got, []string{"new_symbol"}) {
		t.Errorf("Functions = %v, want only new_symbol", got)
	}
}

func TestLoadCacheSurvivesEarlyFileUpdate(t *testing.T) {
	dir := t.TempDir()
	pathA := writeFile(t, dir, "a.c", "int alpha(void);\n")
	writeFile(t, dir, "b.c", "#include <stdio.h>\nint beta(void);\n")

	index := New(dir)
	if err := index.Scan(); err != nil {
		t.Fatal(err)
	}
	dbPath := CachePath(dir)
	if err := index.SaveCache(dbPath); err != nil {
		t.Fatal(err)
	}

	// A fresh session loads the cache and then a save notification
	// rescans one file before any full scan has run. Symbols cached for
	// the other files must survive the rebuild.
	fresh := New(dir)
	if err := fresh.LoadCache(dbPath); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(pathA, []byte("int alpha_two(void);\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := fresh.ScanFile(pathA); err != nil {
		t.Fatal(err)
	}

	if got := fresh.Functions(); !reflect.DeepEqual(got, []string{"alpha_two", "beta"}) {
		t.Errorf("Functions = %v, want updated alpha_two alongside cached beta", got)
	}
	if got := fresh.Headers(); !reflect.DeepEqual(got, []string{"stdio.h"}) {
		t.Errorf("Headers = %v, want cached stdio.h retained", got)
	}
}

func TestLoadCacheMissing(t *testing.T) {
	dir := t.TempDir()
	index := New(dir)
	if err := index.LoadCache(CachePath(dir)); err == nil {
		t.Error("expected an error loading a cache that was never written")
	}
}
