package nexus

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type configCommandOptions struct {
	configPath string
}

func newConfigCommand() *cobra.Command {
	options := &configCommandOptions{}

	command := &cobra.Command{
		Use:   configCommandUse,
		Short: configCommandShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCommand(cmd, *options)
		},
	}

	command.Flags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)

	return command
}

func runConfigCommand(command *cobra.Command, options configCommandOptions) error {
	rootConfiguration, reference, loadErr := loadConfiguration(options.configPath)
	if loadErr != nil {
		return loadErr
	}

	encoded, marshalErr := yaml.Marshal(rootConfiguration)
	if marshalErr != nil {
		return fmt.Errorf("marshal configuration: %w", marshalErr)
	}

	outputWriter := command.OutOrStdout()
	if _, writeErr := fmt.Fprintf(outputWriter, "# source: %s\n", reference); writeErr != nil {
		return fmt.Errorf("write configuration source: %w", writeErr)
	}
	if _, writeErr := outputWriter.Write(encoded); writeErr != nil {
		return fmt.Errorf("write configuration: %w", writeErr)
	}
	return nil
}
