// Package logging provides the ambient file-backed logger: stdout is the
// terminal UI's canvas, so diagnostic output goes to a log file instead,
// gated behind the LOGRIA_DEBUG environment variable.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnvVar gates whether New opens a real logger or a no-op one.
const DebugEnvVar = "LOGRIA_DEBUG"

// New builds a zap.SugaredLogger writing JSON lines to path. When
// LOGRIA_DEBUG is unset, it returns zap.NewNop()'s sugared logger and a
// no-op close, so logging costs nothing when debugging isn't requested.
func New(path string) (*zap.SugaredLogger, func() error, error) {
	if os.Getenv(DebugEnvVar) == "" {
		return zap.NewNop().Sugar(), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zapcore.DebugLevel,
	)
	logger := zap.New(core)
	return logger.Sugar(), f.Close, nil
}
