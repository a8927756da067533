package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/PrakharDoneria/ChiX/c"
	"github.com/PrakharDoneria/ChiX/c/codebase"
	"github.com/spf13/cobra"
)

func newCompleteCmd() *cobra.Command {
	var projectDir string
	var limit int

	cmd := &cobra.Command{
		Use:   "complete <file> <offset>",
		Short: "Print completion candidates for a cursor offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("offset must be an integer: %w", err)
			}
			return runComplete(args[0], offset, projectDir, limit)
		},
	}

	cmd.Flags().StringVarP(&projectDir, "project", "p", "", "scan this directory for project symbols first")
	cmd.Flags().IntVarP(&limit, "limit", "n", 25, "maximum candidates to print")

	return cmd
}

func runComplete(path string, offset int, projectDir string, limit int) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	var engine *c.Engine
	if projectDir != "" {
		index := codebase.New(projectDir)
		if err := index.Scan(); err != nil {
			return fmt.Errorf("scan %s: %w", projectDir, err)
		}
		engine = c.NewEngine(index)
	} else {
		engine = c.NewEngine(nil)
	}

	candidates, err := engine.Completions(string(content), offset)
	if err != nil {
		return err
	}

	if len(candidates) == 0 {
		fmt.Println("(no completions)")
		return nil
	}

	for i, cand := range candidates {
		if i >= limit {
			fmt.Printf("... and %d more\n", len(candidates)-limit)
			break
		}
		fmt.Printf("%-20s [%s]\n", cand.Text, cand.Kind)
	}
	return nil
}
