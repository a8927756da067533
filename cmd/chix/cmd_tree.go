package main

import (
	"fmt"
	"strings"

	"github.com/PrakharDoneria/ChiX/explorer"
	"github.com/PrakharDoneria/ChiX/gitstatus"
	"github.com/spf13/cobra"
)

func newTreeCmd() *cobra.Command {
	var withGit bool

	cmd := &cobra.Command{
		Use:   "tree [dir]",
		Short: "Print the project navigator file tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runTree(dir, withGit)
		},
	}

	cmd.Flags().BoolVar(&withGit, "git", false, "annotate files with git status")

	return cmd
}

func runTree(dir string, withGit bool) error {
	root, err := explorer.Build(dir)
	if err != nil {
		return fmt.Errorf("build tree: %w", err)
	}

	if withGit {
		explorer.Annotate(root, gitstatus.NewManager(dir))
	}

	printNode(root, 0)
	return nil
}

func printNode(node *explorer.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	marker := ""
	if node.IsDir {
		marker = "/"
	}
	if node.GitStatus != "" {
		fmt.Printf("%s%s%s [%s]\n", indent, node.Name, marker, node.GitStatus)
	} else {
		fmt.Printf("%s%s%s\n", indent, node.Name, marker)
	}
	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}
