// Package env loads process environment defaults from a .env file.
package env

import (
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Load reads a .env file from the working directory when present. A missing
// file is normal in production, where variables are set directly.
func Load(logger *zap.Logger) {
	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file found, relying on process environment", zap.Error(err))
	}
}
