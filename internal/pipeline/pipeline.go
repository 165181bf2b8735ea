// Package pipeline composes stages into named processing chains. The three
// shipped adapters share one stage lineup and differ only in the banner they
// announce; the per-variant behavior lives entirely inside the stages.
package pipeline

import (
	"fmt"
	"io"

	"github.com/temirov/nexus/internal/record"
	"github.com/temirov/nexus/internal/stage"
)

// Pipeline runs a record through an ordered stage chain and returns the final
// report.
type Pipeline interface {
	ID() string
	Process(rec record.Record) (string, error)
}

// Chain is the shared pipeline behavior: a fixed identifier, a banner naming
// the data-format flavor, and the ordered stages the record flows through.
type Chain struct {
	pipelineID string
	banner     string
	out        io.Writer
	stages     []stage.Stage
}

// NewChain builds a chain with the given identity. Stages are appended with
// AddStage; the shipped adapters wire the standard lineup at construction and
// never alter it afterwards.
func NewChain(pipelineID string, banner string, out io.Writer) *Chain {
	return &Chain{pipelineID: pipelineID, banner: banner, out: out}
}

// AddStage appends a stage to the chain.
func (c *Chain) AddStage(s stage.Stage) {
	c.stages = append(c.stages, s)
}

func (c *Chain) ID() string { return c.pipelineID }

// Process announces the banner, feeds each stage's output to the next stage
// and renders the last stage's result as the report.
func (c *Chain) Process(rec record.Record) (string, error) {
	fmt.Fprintf(c.out, "Processing %s data through pipeline...\n", c.banner)

	current := rec
	for _, chainStage := range c.stages {
		next, err := chainStage.Process(current)
		if err != nil {
			return "", fmt.Errorf("stage %s: %w", chainStage.Name(), err)
		}
		current = next
	}
	return current.String(), nil
}

// Flavor names an adapter variant.
type Flavor string

const (
	FlavorJSON   Flavor = "json"
	FlavorCSV    Flavor = "csv"
	FlavorStream Flavor = "stream"
)

var flavorBanners = map[Flavor]string{
	FlavorJSON:   "JSON",
	FlavorCSV:    "CSV",
	FlavorStream: "Stream",
}

// KnownFlavor reports whether a flavor has a shipped adapter.
func KnownFlavor(flavor Flavor) bool {
	_, known := flavorBanners[flavor]
	return known
}

// NewAdapter builds the adapter for the given flavor: the flavor's banner in
// front of the standard input → transform → output lineup. Unknown flavors
// are rejected so configuration mistakes surface at construction time.
func NewAdapter(flavor Flavor, pipelineID string, out io.Writer) (*Chain, error) {
	banner, known := flavorBanners[flavor]
	if !known {
		return nil, fmt.Errorf("unknown pipeline flavor %q", flavor)
	}
	chain := NewChain(pipelineID, banner, out)
	chain.AddStage(stage.NewInputStage(out))
	chain.AddStage(stage.NewTransformStage(out))
	chain.AddStage(stage.NewOutputStage(out))
	return chain, nil
}

// NewJSONAdapter wires the structured-record pipeline.
func NewJSONAdapter(pipelineID string, out io.Writer) *Chain {
	chain, _ := NewAdapter(FlavorJSON, pipelineID, out)
	return chain
}

// NewCSVAdapter wires the delimited-text pipeline.
func NewCSVAdapter(pipelineID string, out io.Writer) *Chain {
	chain, _ := NewAdapter(FlavorCSV, pipelineID, out)
	return chain
}

// NewStreamAdapter wires the numeric-series pipeline.
func NewStreamAdapter(pipelineID string, out io.Writer) *Chain {
	chain, _ := NewAdapter(FlavorStream, pipelineID, out)
	return chain
}
