package main

import (
	"github.com/spf13/cobra"

	"github.com/code-zen/zen/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newSnippetCmd())
	return cmd
}
