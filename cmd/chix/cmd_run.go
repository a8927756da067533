package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/PrakharDoneria/ChiX/toolchain"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "run <file.c> [args...]",
		Short: "Compile and run a C source file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0], args[1:], timeout)
		},
	}

	cmd.Flags().DurationVarP(&timeout, "timeout", "t", 30*time.Second, "compile timeout")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runRun(srcPath string, programArgs []string, timeout time.Duration) error {
	compiler := toolchain.NewCompiler()
	if !compiler.Available() {
		return fmt.Errorf("compiler %q not found in PATH", compiler.CC)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	binPath := toolchain.OutputPath(srcPath)
	diagnostics, err := compiler.Compile(ctx, srcPath, binPath)
	if diagnostics != "" {
		fmt.Fprint(os.Stderr, diagnostics)
	}
	if err != nil {
		return err
	}

	// The program itself runs without a deadline.
	return toolchain.Run(context.Background(), binPath, programArgs, os.Stdin, os.Stdout, os.Stderr)
}
