package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/PrakharDoneria/ChiX/c/codebase"
	"github.com/PrakharDoneria/ChiX/logging"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Scan a project and keep its symbol index current as files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0])
		},
	}
}

func runWatch(dir string) error {
	logger := logging.Default("chix-watch")

	index := codebase.New(dir)
	index.SetLogger(logger)
	if err := index.Scan(); err != nil {
		return fmt.Errorf("initial scan: %w", err)
	}

	watcher, err := codebase.NewFileWatcher(index)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	watcher.SetLogger(logger)

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	logger.Info("watching", "dir", dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received signal", "signal", sig)

	return index.SaveCache(codebase.CachePath(dir))
}
