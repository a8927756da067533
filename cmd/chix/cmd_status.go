package main

import (
	"fmt"
	"sort"

	"github.com/PrakharDoneria/ChiX/gitstatus"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [dir]",
		Short: "Show git branch and modified files for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runStatus(dir)
		},
	}
}

func runStatus(dir string) error {
	git := gitstatus.NewManager(dir)
	if !git.Available() {
		return fmt.Errorf("git not found in PATH")
	}
	if !git.IsRepo() {
		fmt.Printf("%s is not a git repository\n", dir)
		return nil
	}

	fmt.Printf("Branch:  %s\n", git.CurrentBranch())
	fmt.Printf("Commits: %d\n", git.CommitCount())

	statuses := git.StatusMap()
	if len(statuses) == 0 {
		fmt.Println("Working tree clean")
		return nil
	}

	paths := make([]string, 0, len(statuses))
	for path := range statuses {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fmt.Printf("  %-3s %s\n", statuses[path], path)
	}
	return nil
}
