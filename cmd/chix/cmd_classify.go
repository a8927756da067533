package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/PrakharDoneria/ChiX/c"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file> <offset>",
		Short: "Print the completion context at a cursor offset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("offset must be an integer: %w", err)
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			context, err := c.Classify(string(content), offset)
			if err != nil {
				return err
			}
			fmt.Println(context)
			return nil
		},
	}
}
