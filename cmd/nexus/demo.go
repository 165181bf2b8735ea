package nexus

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/nexus/internal/manager"
	"github.com/temirov/nexus/internal/pipeline"
	"github.com/temirov/nexus/internal/record"
)

const (
	demoJSONPipelineID   = "pipeline_json_01"
	demoCSVPipelineID    = "pipeline_csv_01"
	demoStreamPipelineID = "pipeline_stream_01"
	demoUnknownID        = "error"
)

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   demoCommandUse,
		Short: demoCommandShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemoCommand(cmd.OutOrStdout())
		},
	}
}

// runDemoCommand replays the reference scenario: three adapters with fixed
// ids, one dispatch per record variant, then an unknown-id dispatch that
// exercises the recovery narrative.
func runDemoCommand(out io.Writer) error {
	fmt.Fprintln(out, "=== CODE NEXUS - ENTERPRISE PIPELINE SYSTEM ===")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Initializing Nexus Manager...")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Creating Data Processing Pipeline...")
	fmt.Fprintln(out, "Stage 1: Input validation and parsing")
	fmt.Fprintln(out, "Stage 2: Data transformation and enrichment")
	fmt.Fprintln(out, "Stage 3: Output formatting and delivery")
	fmt.Fprintln(out)

	dispatcher := manager.New(out, zap.NewNop())
	dispatcher.Register(pipeline.NewJSONAdapter(demoJSONPipelineID, out))
	dispatcher.Register(pipeline.NewCSVAdapter(demoCSVPipelineID, out))
	dispatcher.Register(pipeline.NewStreamAdapter(demoStreamPipelineID, out))

	fmt.Fprintln(out, "=== Multi-Format Data Processing ===")
	fmt.Fprintln(out)

	dispatcher.ProcessData(record.Structured{"sensor": "temp", "value": 23.5, "unit": "C"}, demoJSONPipelineID)
	fmt.Fprintln(out)

	dispatcher.ProcessData(record.Delimited("user,action,timestamp"), demoCSVPipelineID)
	fmt.Fprintln(out)

	dispatcher.ProcessData(record.Series{21.8, 22.0, 22.5, 22.1, 22.1}, demoStreamPipelineID)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "=== Error Recovery Test ===")
	dispatcher.ProcessData(record.Series{21.8, 22.0, 22.5, 22.1, 22.1}, demoUnknownID)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Nexus Integration complete. All systems operational.")
	return nil
}
