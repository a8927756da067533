package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "chix",
		Short: "C editor tooling: completion, symbol indexing, build and run",
	}

	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newWatchCmd())

	rootCmd.AddCommand(newCompileCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newThemeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
