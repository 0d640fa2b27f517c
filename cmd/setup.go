package main

import (
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/coindash/internal/setup"
)

func newSetupCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Interactive configuration wizard",
		RunE: func(_ *cobra.Command, _ []string) error {
			return setup.RunTUI(output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", setup.DefaultOutput, "file to write the generated config to")
	return cmd
}
