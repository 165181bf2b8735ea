package main

import (
	"os"

	"go.uber.org/zap"

	nexus "github.com/temirov/nexus/cmd/nexus"
	"github.com/temirov/nexus/internal/env"
)

func main() {
	logger := zap.Must(zap.NewProduction())

	env.Load(logger)

	executionErr := nexus.Execute()
	if executionErr != nil {
		logger.Error("command execution failed", zap.Error(executionErr))
		_ = logger.Sync()
		os.Exit(1)
	}

	syncErr := logger.Sync()
	if syncErr != nil {
		os.Exit(1)
	}
}
