package stage_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/temirov/nexus/internal/record"
	"github.com/temirov/nexus/internal/stage"
)

func TestInputStage_TracesAndPassesThrough(t *testing.T) {
	var trace bytes.Buffer
	inputStage := stage.NewInputStage(&trace)

	result, err := inputStage.Process(record.Delimited("user,action,timestamp"))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result != record.Delimited("user,action,timestamp") {
		t.Fatalf("expected record to pass through unchanged, got %v", result)
	}
	if trace.String() != "Input: user,action,timestamp\n" {
		t.Fatalf("unexpected trace %q", trace.String())
	}
}

func TestTransformStage_TracePerVariant(t *testing.T) {
	testCases := []struct {
		name          string
		input         record.Record
		expectedTrace string
	}{
		{
			name:          "structured",
			input:         record.Structured{"sensor": "temp", "value": 23.5},
			expectedTrace: "Transform: Enriched with metadata and validation\n",
		},
		{
			name:          "delimited",
			input:         record.Delimited("user,action,timestamp"),
			expectedTrace: "Transform: Parsed and structured data\n",
		},
		{
			name:          "series",
			input:         record.Series{21.8, 22.0},
			expectedTrace: "Transform: Aggregated and filtered\n",
		},
		{
			name:          "unrecognized variant passes silently",
			input:         record.Summary("already summarized"),
			expectedTrace: "",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var trace bytes.Buffer
			transformStage := stage.NewTransformStage(&trace)

			result, err := transformStage.Process(testCase.input)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if result.String() != testCase.input.String() {
				t.Fatalf("expected record to pass through unchanged, got %v", result)
			}
			if trace.String() != testCase.expectedTrace {
				t.Fatalf("expected trace %q, got %q", testCase.expectedTrace, trace.String())
			}
		})
	}
}

func TestOutputStage_Reports(t *testing.T) {
	testCases := []struct {
		name           string
		input          record.Record
		expectedReport string
	}{
		{
			name:           "structured reading with unit",
			input:          record.Structured{"sensor": "temp", "value": 23.5, "unit": "C"},
			expectedReport: "Output: Processed temperature reading: 23.5°C (Normal range)",
		},
		{
			name:           "structured reading defaults unit",
			input:          record.Structured{"value": 18.0},
			expectedReport: "Output: Processed temperature reading: 18°C (Normal range)",
		},
		{
			name:           "delimited line yields fixed activity report",
			input:          record.Delimited("user,action,timestamp"),
			expectedReport: "Output: User activity logged: 1 actions processed",
		},
		{
			name:           "series reports count and mean",
			input:          record.Series{21.8, 22.0, 22.5, 22.1, 22.1},
			expectedReport: "Output: Stream summary: 5 readings, avg: 22.1°C",
		},
		{
			name:           "empty series reports zero mean",
			input:          record.Series{},
			expectedReport: "Output: Stream summary: 0 readings, avg: 0.0°C",
		},
		{
			name:           "other variants fall back to generic report",
			input:          record.Summary("leftover"),
			expectedReport: "Output: Processed leftover",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			outputStage := stage.NewOutputStage(&bytes.Buffer{})

			result, err := outputStage.Process(testCase.input)
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			summary, ok := result.(record.Summary)
			if !ok {
				t.Fatalf("expected a summary, got %T", result)
			}
			if string(summary) != testCase.expectedReport {
				t.Fatalf("expected report %q, got %q", testCase.expectedReport, summary)
			}
		})
	}
}

func TestOutputStage_MissingValueFails(t *testing.T) {
	outputStage := stage.NewOutputStage(&bytes.Buffer{})

	_, err := outputStage.Process(record.Structured{"sensor": "temp"})
	if err == nil {
		t.Fatalf("expected an error for a structured record without a numeric value")
	}
	if !errors.Is(err, stage.ErrMissingValue) {
		t.Fatalf("expected ErrMissingValue, got %v", err)
	}
	if !strings.Contains(err.Error(), "sensor: temp") {
		t.Fatalf("expected the record rendering in the error, got %q", err.Error())
	}
}

func TestStages_AreIdempotent(t *testing.T) {
	reading := record.Series{1.0, 2.0, 3.0}
	outputStage := stage.NewOutputStage(&bytes.Buffer{})

	first, err := outputStage.Process(reading)
	if err != nil {
		t.Fatalf("first Process: %v", err)
	}
	second, err := outputStage.Process(reading)
	if err != nil {
		t.Fatalf("second Process: %v", err)
	}
	if first.String() != second.String() {
		t.Fatalf("expected identical reports, got %q and %q", first, second)
	}
}
