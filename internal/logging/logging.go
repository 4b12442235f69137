// Package logging wires up the module's structured logger. Production use is
// silent by default: the host plugin may be loaded into a desktop session
// where stray stderr output is undesirable. Setting VINPUT_LOG escalates to a
// verbose logger writing to both stderr and a fixed debug log path.
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envVar = "VINPUT_LOG"
const debugLogPath = "/tmp/vinput_debug.log"

var (
	once   sync.Once
	global *zap.Logger
)

// Get returns the process-wide logger, constructing it on first call. Safe
// to call repeatedly and from multiple goroutines; the host plugin may load
// this module's shared object more than once per process.
func Get() *zap.Logger {
	once.Do(func() {
		global = build()
	})
	return global
}

func build() *zap.Logger {
	levelStr, escalate := os.LookupEnv(envVar)
	if !escalate {
		return zap.NewNop()
	}

	level := zapcore.WarnLevel
	if levelStr != "" {
		_ = level.Set(levelStr)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level),
	}

	if f, err := os.OpenFile(debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(f), level))
	}

	return zap.New(zapcore.NewTee(cores...))
}
