// Package explorer builds the file tree shown in the project navigator.
// Unlike the symbol index's uncapped walk, the tree recursion stops at a
// fixed depth so huge projects stay browsable.
package explorer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/PrakharDoneria/ChiX/gitstatus"
)

// MaxDepth caps the tree recursion.
const MaxDepth = 6

// Node is a file or directory in the tree.
type Node struct {
	Path     string
	Name     string
	IsDir    bool
	Children []*Node
	// GitStatus is the porcelain status code for annotated trees,
	// empty for clean or unannotated files.
	GitStatus string
}

// Build returns the tree rooted at root, depth-capped at MaxDepth.
// Hidden entries are skipped; directories sort before files, each group
// case-insensitively by name.
func Build(root string) (*Node, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}

	node := &Node{
		Path:  root,
		Name:  filepath.Base(root),
		IsDir: info.IsDir(),
	}
	if node.IsDir {
		node.Children = children(root, 1)
	}
	return node, nil
}

func children(dir string, depth int) []*Node {
	if depth > MaxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var nodes []*Node
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		node := &Node{
			Path:  filepath.Join(dir, entry.Name()),
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
		}
		if node.IsDir {
			node.Children = children(node.Path, depth+1)
		}
		nodes = append(nodes, node)
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].IsDir != nodes[j].IsDir {
			return nodes[i].IsDir
		}
		return strings.ToLower(nodes[i].Name) < strings.ToLower(nodes[j].Name)
	})
	return nodes
}

// Annotate fills in GitStatus for every file in the tree from the
// repository's modified-file list. A tree outside a repository is left
// untouched.
func Annotate(root *Node, git *gitstatus.Manager) {
	if root == nil || git == nil || !git.IsRepo() {
		return
	}

	status := make(map[string]string)
	for rel, code := range git.StatusMap() {
		status[filepath.Clean(rel)] = code
	}

	var walk func(node *Node)
	walk = func(node *Node) {
		if !node.IsDir {
			if rel, err := filepath.Rel(root.Path, node.Path); err == nil {
				if code, ok := status[filepath.Clean(rel)]; ok {
					node.GitStatus = code
				}
			}
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(root)
}
