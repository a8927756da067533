package main

import (
	"context"
	"fmt"
	"time"

	"github.com/PrakharDoneria/ChiX/toolchain"
	"github.com/spf13/cobra"
)

func newCompileCmd() *cobra.Command {
	var output string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "compile <file.c>",
		Short: "Compile a C source file with the configured compiler",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(args[0], output, timeout)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output binary path (default: source path without extension)")
	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "compile timeout")

	return cmd
}

func runCompile(srcPath, outPath string, timeout time.Duration) error {
	compiler := toolchain.NewCompiler()
	if !compiler.Available() {
		return fmt.Errorf("compiler %q not found in PATH", compiler.CC)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if outPath == "" {
		outPath = toolchain.OutputPath(srcPath)
	}

	diagnostics, err := compiler.Compile(ctx, srcPath, outPath)
	if diagnostics != "" {
		fmt.Print(diagnostics)
	}
	if err != nil {
		return err
	}

	fmt.Printf("Compiled %s -> %s\n", srcPath, outPath)
	return nil
}
