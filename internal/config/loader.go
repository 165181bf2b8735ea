package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// EmbeddedConfigurationReference identifies the embedded fallback source.
	EmbeddedConfigurationReference = "embedded default configuration"

	configurationFileName              = "nexus.yaml"
	homeConfigurationRelativeDirectory = ".nexus"
	environmentVariablePrefix          = "NEXUS"
	configurationType                  = "yaml"

	loaderWorkingDirectoryErrorFormat = "determine working directory: %w"
	readConfigurationErrorFormat      = "read configuration %s: %w"
	unmarshalConfigurationErrorFormat = "unmarshal configuration %s: %w"
	validateConfigurationErrorFormat  = "validate configuration %s: %w"
)

//go:embed default_configuration.yaml
var embeddedConfigurationBytes []byte

// Loader locates the configuration across the supported search paths:
// explicit path, then working directory, then home directory, then the
// embedded default.
type Loader struct {
	workingDirectory string
	homeDirectory    string
	fileExists       func(string) bool
}

// NewLoader constructs a loader over the provided directories.
func NewLoader(workingDirectory string, homeDirectory string) Loader {
	return Loader{
		workingDirectory: workingDirectory,
		homeDirectory:    homeDirectory,
		fileExists: func(path string) bool {
			info, statErr := os.Stat(path)
			return statErr == nil && !info.IsDir()
		},
	}
}

// NewDefaultLoader builds a loader from the process working directory and
// HOME.
func NewDefaultLoader() (Loader, error) {
	workingDirectory, workingDirectoryErr := os.Getwd()
	if workingDirectoryErr != nil {
		return Loader{}, fmt.Errorf(loaderWorkingDirectoryErrorFormat, workingDirectoryErr)
	}
	return NewLoader(workingDirectory, os.Getenv("HOME")), nil
}

// Load resolves, reads and validates the configuration. The returned
// reference names the source that was actually used, for diagnostics.
func (loader Loader) Load(explicitPath string) (Root, string, error) {
	viperInstance := viper.New()
	viperInstance.SetConfigType(configurationType)
	viperInstance.SetEnvPrefix(environmentVariablePrefix)
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()

	reference := loader.resolve(explicitPath)
	if reference == EmbeddedConfigurationReference {
		if readErr := viperInstance.ReadConfig(bytes.NewReader(embeddedConfigurationBytes)); readErr != nil {
			return Root{}, reference, fmt.Errorf(readConfigurationErrorFormat, reference, readErr)
		}
	} else {
		viperInstance.SetConfigFile(reference)
		if readErr := viperInstance.ReadInConfig(); readErr != nil {
			return Root{}, reference, fmt.Errorf(readConfigurationErrorFormat, reference, readErr)
		}
	}

	var root Root
	if unmarshalErr := viperInstance.Unmarshal(&root); unmarshalErr != nil {
		return Root{}, reference, fmt.Errorf(unmarshalConfigurationErrorFormat, reference, unmarshalErr)
	}
	if validateErr := root.Validate(); validateErr != nil {
		return Root{}, reference, fmt.Errorf(validateConfigurationErrorFormat, reference, validateErr)
	}
	return root, reference, nil
}

func (loader Loader) resolve(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	if loader.workingDirectory != "" {
		candidate := filepath.Join(loader.workingDirectory, configurationFileName)
		if loader.fileExists(candidate) {
			return candidate
		}
	}
	if loader.homeDirectory != "" {
		candidate := filepath.Join(loader.homeDirectory, homeConfigurationRelativeDirectory, configurationFileName)
		if loader.fileExists(candidate) {
			return candidate
		}
	}
	return EmbeddedConfigurationReference
}
