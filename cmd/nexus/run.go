package nexus

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/temirov/nexus/internal/config"
	"github.com/temirov/nexus/internal/manager"
	"github.com/temirov/nexus/internal/pipeline"
)

type runCommandOptions struct {
	configPath string
	pipelineID string
	format     string
	data       string
}

func newRunCommand() *cobra.Command {
	options := &runCommandOptions{}

	command := &cobra.Command{
		Use:   runCommandUse,
		Short: runCommandShort,
		Long:  runCommandLong,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRunCommand(cmd, *options)
		},
	}

	command.Flags().StringVar(&options.configPath, configFlagName, "", configFlagUsage)
	command.Flags().StringVar(&options.pipelineID, pipelineIDFlagName, "", pipelineIDFlagUsage)
	command.Flags().StringVar(&options.format, formatFlagName, formatStructured, formatFlagUsage)
	command.Flags().StringVar(&options.data, dataFlagName, "", dataFlagUsage)

	return command
}

func runRunCommand(command *cobra.Command, options runCommandOptions) error {
	rootConfiguration, _, loadErr := loadConfiguration(options.configPath)
	if loadErr != nil {
		return loadErr
	}

	rec, buildErr := buildRecord(options.format, options.data)
	if buildErr != nil {
		return buildErr
	}

	logger, loggerErr := buildLogger(rootConfiguration.Logging)
	if loggerErr != nil {
		return fmt.Errorf("build logger: %w", loggerErr)
	}
	defer func() { _ = logger.Sync() }()

	dispatcher, managerErr := buildManager(rootConfiguration, command.OutOrStdout(), logger)
	if managerErr != nil {
		return managerErr
	}

	dispatcher.ProcessData(rec, options.pipelineID)
	return nil
}

func loadConfiguration(explicitPath string) (config.Root, string, error) {
	loader, loaderErr := config.NewDefaultLoader()
	if loaderErr != nil {
		return config.Root{}, "", loaderErr
	}
	return loader.Load(explicitPath)
}

func buildManager(rootConfiguration config.Root, out io.Writer, logger *zap.Logger) (*manager.Manager, error) {
	dispatcher := manager.New(out, logger)
	for _, spec := range rootConfiguration.Pipelines {
		adapter, adapterErr := pipeline.NewAdapter(pipeline.Flavor(spec.Flavor), spec.ID, out)
		if adapterErr != nil {
			return nil, fmt.Errorf("build pipeline %s: %w", spec.ID, adapterErr)
		}
		dispatcher.Register(adapter)
	}
	return dispatcher, nil
}

func buildLogger(logging config.Logging) (*zap.Logger, error) {
	zapConfiguration := zap.NewProductionConfig()
	if logging.Format == "console" {
		zapConfiguration = zap.NewDevelopmentConfig()
	}
	if logging.Level != "" {
		level, levelErr := zapcore.ParseLevel(logging.Level)
		if levelErr != nil {
			return nil, levelErr
		}
		zapConfiguration.Level = zap.NewAtomicLevelAt(level)
	}
	return zapConfiguration.Build()
}
