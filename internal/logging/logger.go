// Package logging builds the process logger. Every line is written to the
// console and appended to a log file in the form
// "<timestamp>.<ms> - <LEVEL> - <message>".
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TimeLayout is the timestamp prefix of every log line
const TimeLayout = "2006-01-02 15:04:05.000"

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeTime:       zapcore.TimeEncoderOfLayout(TimeLayout),
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeDuration:   zapcore.SecondsDurationEncoder,
		ConsoleSeparator: " - ",
	}
}

func newCore(w io.Writer) zapcore.Core {
	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.InfoLevel,
	)
}

// New returns a logger writing to console and appending to logPath.
// If logPath cannot be opened the logger still writes to console and the
// open error is returned alongside it. The close func flushes the logger
// and closes the file.
func New(console io.Writer, logPath string) (*zap.SugaredLogger, func() error, error) {
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger := NewWriter(console)
		return logger, logger.Sync, fmt.Errorf("opening log file: %w", err)
	}

	logger := zap.New(zapcore.NewTee(newCore(console), newCore(f))).Sugar()
	closeFn := func() error {
		_ = logger.Sync()
		return f.Close()
	}
	return logger, closeFn, nil
}

// NewWriter returns a logger writing only to w, with no log file
func NewWriter(w io.Writer) *zap.SugaredLogger {
	return zap.New(newCore(w)).Sugar()
}

// Nop returns a logger that discards everything
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
