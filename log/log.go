package log

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	SetDevelopment(true)
}

// SetDevelopment replaces the global logger. Development logs are coloured
// console lines, otherwise logs are JSON. The DEBUG environment variable turns
// on debug logs in both modes.
func SetDevelopment(development bool) {
	l, err := newLogger(development, os.Getenv("DEBUG") != "")
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	logger.Store(l)
}

func newLogger(development, debug bool) (*zap.Logger, error) {
	var (
		encConfig zapcore.EncoderConfig
		encoder   zapcore.Encoder
	)

	if development {
		encConfig = zap.NewDevelopmentEncoderConfig()
		encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encConfig.EncodeCaller = nil
		encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.UTC().Format(time.StampMicro))
		}
		encoder = zapcore.NewConsoleEncoder(encConfig)
	} else {
		encConfig = zap.NewProductionEncoderConfig()
		encConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encConfig)
	}

	stdout, closeOut, err := zap.Open("stdout")
	if err != nil {
		return nil, err
	}

	stderr, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		return nil, err
	}

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	return zap.New(zapcore.NewCore(encoder, stdout, level), zap.ErrorOutput(stderr)), nil
}

// S returns a *[zap.SugaredLogger].
func S() *zap.SugaredLogger {
	return logger.Load().Sugar()
}

// L returns a *[zap.Logger].
func L() *zap.Logger {
	return logger.Load()
}
