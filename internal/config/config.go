// Package config defines the runtime configuration and its loader.
package config

import (
	"errors"
	"fmt"

	"github.com/temirov/nexus/internal/pipeline"
)

const (
	emptyPipelinesErrorMessage  = "config.pipelines is empty"
	pipelineIdentifierErrorFmt  = "pipelines[%d]: id is empty"
	pipelineUnknownFlavorErrFmt = "pipelines[%d] %s: unknown flavor %q"
)

// Root is the top-level configuration. Fields carry mapstructure tags for the
// viper loader and yaml tags so the effective configuration can be
// re-serialized.
type Root struct {
	Logging   Logging        `mapstructure:"logging" yaml:"logging"`
	Pipelines []PipelineSpec `mapstructure:"pipelines" yaml:"pipelines"`
}

type Logging struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// PipelineSpec names one pipeline to register: its dispatch id and the
// adapter flavor that backs it. Duplicate ids are legal.
type PipelineSpec struct {
	ID     string `mapstructure:"id" yaml:"id"`
	Flavor string `mapstructure:"flavor" yaml:"flavor"`
}

// Validate checks that the configuration can be turned into a working
// registry: at least one pipeline, every id non-empty, every flavor shipped.
func (root Root) Validate() error {
	if len(root.Pipelines) == 0 {
		return errors.New(emptyPipelinesErrorMessage)
	}
	for index, spec := range root.Pipelines {
		if spec.ID == "" {
			return fmt.Errorf(pipelineIdentifierErrorFmt, index)
		}
		if !pipeline.KnownFlavor(pipeline.Flavor(spec.Flavor)) {
			return fmt.Errorf(pipelineUnknownFlavorErrFmt, index, spec.ID, spec.Flavor)
		}
	}
	return nil
}
