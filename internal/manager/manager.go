// Package manager holds the pipeline registry and the dispatch boundary.
// Every failure raised while resolving or running pipelines is absorbed here
// and converted into a fixed three-line recovery narrative; ProcessData never
// fails outwardly. The recovery is a reporting contract only — no substitute
// pipeline runs — and that is a deliberate design point, not an omission.
package manager

import (
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/temirov/nexus/internal/pipeline"
	"github.com/temirov/nexus/internal/record"
)

// ErrPipelineNotFound signals a dispatch request naming no registered
// pipeline.
var ErrPipelineNotFound = errors.New("that pipeline does not exist")

const (
	errorDetectedLineFormat = "Error detected: %v\n"
	recoveryInitiatedLine   = "Recovery initiated: Switching to backup processor"
	recoverySuccessfulLine  = "Recovery successful: Pipeline restored, processing resumed"
)

// Manager owns an insertion-ordered pipeline collection. Duplicate ids are
// legal; id lookup collects every match in registration order.
type Manager struct {
	out       io.Writer
	logger    *zap.Logger
	pipelines []pipeline.Pipeline
}

// New builds a manager emitting reports and narratives to out. A nil logger
// disables diagnostics.
func New(out io.Writer, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{out: out, logger: logger}
}

// Register appends a pipeline to the registry. There is no removal operation
// and no uniqueness enforcement.
func (m *Manager) Register(p pipeline.Pipeline) {
	m.pipelines = append(m.pipelines, p)
	m.logger.Debug("pipeline registered",
		zap.String("pipeline_id", p.ID()),
		zap.Int("registered_total", len(m.pipelines)))
}

// Pipelines returns the registered pipeline ids in registration order.
func (m *Manager) Pipelines() []string {
	ids := make([]string, 0, len(m.pipelines))
	for _, registered := range m.pipelines {
		ids = append(ids, registered.ID())
	}
	return ids
}

// ProcessData dispatches a record. A non-empty pipelineID targets every
// pipeline with that id; an empty one broadcasts to all pipelines in
// registration order. Each target runs under its own recovery boundary, so a
// failure mid-broadcast narrates and later targets still run.
func (m *Manager) ProcessData(rec record.Record, pipelineID string) {
	requestID := uuid.NewString()

	targets, resolveErr := m.resolve(pipelineID)
	if resolveErr != nil {
		m.logger.Warn("dispatch resolution failed",
			zap.String("request_id", requestID),
			zap.String("pipeline_id", pipelineID),
			zap.Error(resolveErr))
		m.narrateRecovery(resolveErr)
		return
	}
	m.logger.Debug("dispatch resolved",
		zap.String("request_id", requestID),
		zap.String("pipeline_id", pipelineID),
		zap.String("record_kind", string(rec.Kind())),
		zap.Int("target_count", len(targets)))

	for _, target := range targets {
		report, processErr := target.Process(rec)
		if processErr != nil {
			m.logger.Warn("pipeline failed",
				zap.String("request_id", requestID),
				zap.String("pipeline_id", target.ID()),
				zap.Error(processErr))
			m.narrateRecovery(processErr)
			continue
		}
		fmt.Fprintln(m.out, report)
	}
}

func (m *Manager) resolve(pipelineID string) ([]pipeline.Pipeline, error) {
	if pipelineID == "" {
		return m.pipelines, nil
	}
	var targets []pipeline.Pipeline
	for _, registered := range m.pipelines {
		if registered.ID() == pipelineID {
			targets = append(targets, registered)
		}
	}
	if len(targets) == 0 {
		return nil, ErrPipelineNotFound
	}
	return targets, nil
}

func (m *Manager) narrateRecovery(cause error) {
	fmt.Fprintf(m.out, errorDetectedLineFormat, cause)
	fmt.Fprintln(m.out, recoveryInitiatedLine)
	fmt.Fprintln(m.out, recoverySuccessfulLine)
}
