// Package nexus wires the command-line surface around the pipeline core.
// Record construction from flags happens here; the core only ever sees
// already-built record variants.
package nexus

import "github.com/spf13/cobra"

// NewRootCommand assembles the command tree.
func NewRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           rootCommandUse,
		Short:         rootCommandShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.AddCommand(newRunCommand())
	rootCommand.AddCommand(newDemoCommand())
	rootCommand.AddCommand(newListCommand())
	rootCommand.AddCommand(newConfigCommand())
	return rootCommand
}

// Execute runs the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
