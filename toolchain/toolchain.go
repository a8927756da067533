// Package toolchain compiles and runs C programs through an external
// compiler, the way the editor's build and run actions do.
package toolchain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Compiler invokes a C compiler binary.
type Compiler struct {
	// CC is the compiler command, "gcc" by default.
	CC string
	// Flags are extra arguments passed before the source file.
	Flags []string
}

// NewCompiler returns a Compiler using the CHIX_CC environment variable
// or gcc.
func NewCompiler() *Compiler {
	cc := os.Getenv("CHIX_CC")
	if cc == "" {
		cc = "gcc"
	}
	return &Compiler{CC: cc}
}

// Available reports whether the compiler binary can be found.
func (c *Compiler) Available() bool {
	_, err := exec.LookPath(c.CC)
	return err == nil
}

// OutputPath derives the binary path for a source file: the source path
// with its extension dropped, plus .exe on Windows.
func OutputPath(srcPath string) string {
	out := strings.TrimSuffix(srcPath, filepath.Ext(srcPath))
	if runtime.GOOS == "windows" {
		out += ".exe"
	}
	return out
}

// Compile builds srcPath into outPath, returning the combined compiler
// output. A non-zero compiler exit returns an error alongside the
// diagnostics.
func (c *Compiler) Compile(ctx context.Context, srcPath, outPath string) (string, error) {
	if outPath == "" {
		outPath = OutputPath(srcPath)
	}

	args := append(append([]string{}, c.Flags...), srcPath, "-o", outPath)
	cmd := exec.CommandContext(ctx, c.CC, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	if err := cmd.Run(); err != nil {
		return output.String(), fmt.Errorf("%s %s: %w", c.CC, srcPath, err)
	}
	return output.String(), nil
}

// Run executes a compiled binary with the given arguments, wiring the
// provided streams through to the process.
func Run(ctx context.Context, binPath string, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	abs, err := filepath.Abs(binPath)
	if err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, abs, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	return cmd.Run()
}
