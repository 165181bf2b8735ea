package nexus_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nexus "github.com/temirov/nexus/cmd/nexus"
)

const testConfiguration = `logging:
  level: error
  format: console
pipelines:
  - id: pipeline_json_01
    flavor: json
  - id: pipeline_stream_01
    flavor: stream
`

func writeTestConfiguration(t *testing.T) string {
	t.Helper()
	configurationPath := filepath.Join(t.TempDir(), "nexus.yaml")
	if writeErr := os.WriteFile(configurationPath, []byte(testConfiguration), 0o644); writeErr != nil {
		t.Fatalf("write configuration: %v", writeErr)
	}
	return configurationPath
}

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	command := nexus.NewRootCommand()
	command.SetOut(&out)
	command.SetErr(&out)
	command.SetArgs(args)
	executeErr := command.Execute()
	return out.String(), executeErr
}

func TestRunCommand_DispatchByID(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	output, executeErr := executeCommand(t,
		"run",
		"--config", configurationPath,
		"--id", "pipeline_stream_01",
		"--format", "series",
		"--data", "21.8,22.0,22.5,22.1,22.1",
	)
	if executeErr != nil {
		t.Fatalf("Execute: %v", executeErr)
	}

	if !strings.Contains(output, "Processing Stream data through pipeline...") {
		t.Fatalf("expected the stream banner, got %q", output)
	}
	if strings.Contains(output, "Processing JSON data through pipeline...") {
		t.Fatalf("expected only the targeted pipeline to run, got %q", output)
	}
	if !strings.Contains(output, "5 readings, avg: 22.1") {
		t.Fatalf("expected the series summary, got %q", output)
	}
}

func TestRunCommand_BroadcastRunsAllPipelines(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	output, executeErr := executeCommand(t,
		"run",
		"--config", configurationPath,
		"--format", "structured",
		"--data", "sensor=temp,value=23.5,unit=C",
	)
	if executeErr != nil {
		t.Fatalf("Execute: %v", executeErr)
	}

	if !strings.Contains(output, "Processing JSON data through pipeline...") {
		t.Fatalf("expected the json banner, got %q", output)
	}
	if !strings.Contains(output, "Processing Stream data through pipeline...") {
		t.Fatalf("expected the stream banner, got %q", output)
	}
	if !strings.Contains(output, "23.5°C") {
		t.Fatalf("expected the temperature report, got %q", output)
	}
}

func TestRunCommand_UnknownIDNarratesAndSucceeds(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	output, executeErr := executeCommand(t,
		"run",
		"--config", configurationPath,
		"--id", "nonexistent-id",
		"--format", "delimited",
		"--data", "user,action,timestamp",
	)
	if executeErr != nil {
		t.Fatalf("a failed dispatch must not fail the command: %v", executeErr)
	}

	expected := "Error detected: that pipeline does not exist\n" +
		"Recovery initiated: Switching to backup processor\n" +
		"Recovery successful: Pipeline restored, processing resumed\n"
	if output != expected {
		t.Fatalf("expected only the recovery narrative, got %q", output)
	}
}

func TestRunCommand_BadFormatFails(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	_, executeErr := executeCommand(t,
		"run",
		"--config", configurationPath,
		"--format", "xml",
	)
	if executeErr == nil {
		t.Fatalf("expected an error for an unknown record format")
	}
}

func TestListCommand_PrintsConfiguredPipelines(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	output, executeErr := executeCommand(t, "list", "--config", configurationPath)
	if executeErr != nil {
		t.Fatalf("Execute: %v", executeErr)
	}

	if !strings.Contains(output, "pipeline_json_01\t(flavor=json)") {
		t.Fatalf("expected the json pipeline listing, got %q", output)
	}
	if !strings.Contains(output, "pipeline_stream_01\t(flavor=stream)") {
		t.Fatalf("expected the stream pipeline listing, got %q", output)
	}
}

func TestConfigCommand_PrintsEffectiveConfiguration(t *testing.T) {
	configurationPath := writeTestConfiguration(t)

	output, executeErr := executeCommand(t, "config", "--config", configurationPath)
	if executeErr != nil {
		t.Fatalf("Execute: %v", executeErr)
	}

	if !strings.Contains(output, "# source: "+configurationPath) {
		t.Fatalf("expected the configuration source comment, got %q", output)
	}
	if !strings.Contains(output, "id: pipeline_json_01") {
		t.Fatalf("expected the pipeline ids in the YAML, got %q", output)
	}
}
