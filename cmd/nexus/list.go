package nexus

import (
	"fmt"

	"github.com/spf13/cobra"
)

type listCommandOptions struct {
	configPath string
}

func newListCommand() *cobra.Command {
	options := &listCommandOptions{}

	command := &cobra.Command{
		Use:   listCommandUse,
		Short: listCommandShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCommand(cmd, *options)
		},
	}

	command.Flags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)

	return command
}

func runListCommand(command *cobra.Command, options listCommandOptions) error {
	rootConfiguration, _, loadErr := loadConfiguration(options.configPath)
	if loadErr != nil {
		return loadErr
	}

	for _, spec := range rootConfiguration.Pipelines {
		_, writeErr := fmt.Fprintf(command.OutOrStdout(), "%s\t(flavor=%s)\n", spec.ID, spec.Flavor)
		if writeErr != nil {
			return fmt.Errorf("write pipeline listing: %w", writeErr)
		}
	}

	return nil
}
