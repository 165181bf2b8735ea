package nexus

const (
	rootCommandUse   = "nexus"
	rootCommandShort = "Polymorphic data-processing pipelines with a dispatching manager"

	runCommandUse   = "run"
	runCommandShort = "Dispatch a record through the configured pipelines"
	runCommandLong  = "Builds a record from the --format/--data flags and dispatches it.\n" +
		"With --id only pipelines carrying that id run; without it every\n" +
		"configured pipeline processes the record in registration order."

	demoCommandUse   = "demo"
	demoCommandShort = "Replay the multi-format processing and error-recovery scenario"

	listCommandUse   = "list"
	listCommandShort = "List the configured pipelines"

	configCommandUse   = "config"
	configCommandShort = "Print the effective configuration as YAML"

	configFlagName  = "config"
	configFlagUsage = "Path to nexus.yaml (defaults to the standard search paths)"

	pipelineIDFlagName  = "id"
	pipelineIDFlagUsage = "Pipeline id to dispatch to (empty broadcasts to all pipelines)"

	formatFlagName  = "format"
	formatFlagUsage = "Record variant to build: structured, delimited or series"

	dataFlagName  = "data"
	dataFlagUsage = "Record payload: k=v pairs for structured, a text line for delimited, comma-separated numbers for series"

	formatStructured = "structured"
	formatDelimited  = "delimited"
	formatSeries     = "series"
)
