package main

import (
	"fmt"

	"github.com/PrakharDoneria/ChiX/c/codebase"
	"github.com/PrakharDoneria/ChiX/logging"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var saveCache bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Scan a project tree for C symbols",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], saveCache, verbose)
		},
	}

	cmd.Flags().BoolVar(&saveCache, "save-cache", false, "write symbols to the project's .chix/symbols.db cache")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "list every harvested symbol")

	return cmd
}

func runScan(dir string, saveCache, verbose bool) error {
	index := codebase.New(dir)
	index.SetLogger(logging.Default("chix-scan"))

	if err := index.Scan(); err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	functions := index.Functions()
	headers := index.Headers()
	types := index.Types()

	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Functions: %d\n", len(functions))
	fmt.Printf("Headers:   %d\n", len(headers))
	fmt.Printf("Types:     %d\n", len(types))

	if verbose {
		for _, fn := range functions {
			fmt.Printf("  func %-30s %v\n", fn, index.FilesFor(fn))
		}
		for _, h := range headers {
			fmt.Printf("  header %s\n", h)
		}
		for _, t := range types {
			fmt.Printf("  type %s\n", t)
		}
	}

	if saveCache {
		cachePath := codebase.CachePath(dir)
		if err := index.SaveCache(cachePath); err != nil {
			return fmt.Errorf("save cache: %w", err)
		}
		fmt.Printf("Cache written to %s\n", cachePath)
	}

	return nil
}
