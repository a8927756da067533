package explorer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mkFile(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestBuildOrdering(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "main.c"))
	mkFile(t, filepath.Join(dir, "Makefile"))
	mkFile(t, filepath.Join(dir, "src", "util.c"))
	mkFile(t, filepath.Join(dir, "Include", "util.h"))
	mkFile(t, filepath.Join(dir, ".hidden"))
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	root, err := Build(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !root.IsDir {
		t.Fatal("root should be a directory")
	}

	var names []string
	for _, child := range root.Children {
		names = append(names, child.Name)
	}

	// Directories first, then files, each group case-insensitively
	// sorted; hidden entries absent.
	want := []string{"Include", "src", "main.c", "Makefile"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("children = %v, want %v", names, want)
	}
}

func TestBuildDepthCap(t *testing.T) {
	dir := t.TempDir()
	deep := dir
	for i := 0; i < MaxDepth+2; i++ {
		deep = filepath.Join(deep, "d")
	}
	mkFile(t, filepath.Join(deep, "leaf.c"))

	root, err := Build(dir)
	if err != nil {
		t.Fatal(err)
	}

	depth := 0
	node := root
	for len(node.Children) > 0 {
		depth++
		node = node.Children[0]
	}
	if depth > MaxDepth {
		t.Errorf("tree depth %d exceeds cap %d", depth, MaxDepth)
	}
}

func TestBuildMissingRoot(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing root")
	}
}

func TestBuildSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.c")
	mkFile(t, path)

	node, err := Build(path)
	if err != nil {
		t.Fatal(err)
	}
	if node.IsDir || node.Name != "only.c" || len(node.Children) != 0 {
		t.Errorf("single-file node = %+v", node)
	}
}

func TestAnnotateOutsideRepo(t *testing.T) {
	dir := t.TempDir()
	mkFile(t, filepath.Join(dir, "a.c"))

	root, err := Build(dir)
	if err != nil {
		t.Fatal(err)
	}

	// Annotating with no manager, or with one pointed outside a
	// repository, must leave the tree untouched.
	Annotate(root, nil)
	for _, child := range root.Children {
		if child.GitStatus != "" {
			t.Errorf("node %s annotated without a repository", child.Name)
		}
	}
}
