package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/PrakharDoneria/ChiX/theme"
	"github.com/spf13/cobra"
)

func newThemeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "List, set, or cycle editor themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			current := theme.LoadPreferences(prefsPath())
			for _, name := range theme.Names() {
				marker := " "
				if name == current.Name {
					marker = "*"
				}
				fmt.Printf("%s %s\n", marker, name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <name>",
		Short: "Set the active theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := theme.Select(args[0])
			if err != nil {
				return err
			}
			if err := theme.SavePreferences(prefsPath(), selected); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}
			fmt.Printf("Theme set to %s\n", selected.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cycle",
		Short: "Switch to the next theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			next := theme.Cycle(theme.LoadPreferences(prefsPath()))
			if err := theme.SavePreferences(prefsPath(), next); err != nil {
				return fmt.Errorf("save preferences: %w", err)
			}
			fmt.Printf("Theme set to %s\n", next.Name)
			return nil
		},
	})

	return cmd
}

func prefsPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "chix", "theme_prefs.json")
	}
	return "theme_prefs.json"
}
