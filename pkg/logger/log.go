package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger собирает консольный zap-логгер. Если file не пустой, логи
// дублируются в файл.
func NewLogger(level, file string) (*zap.Logger, error) {
	atomicLevel := zap.NewAtomicLevelAt(zap.InfoLevel)
	if level != "" {
		if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
			return nil, err
		}
	}

	outputs := []string{"stdout"}
	if file != "" {
		outputs = append(outputs, file)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	dualConfig := zap.Config{
		Encoding:         "console",
		Level:            atomicLevel,
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    encoderConfig,
	}

	return dualConfig.Build()
}

// Loggers - именованные логгеры по областям приложения.
type Loggers struct {
	Main  *zap.Logger
	User  *zap.Logger
	Route *zap.Logger
	Seed  *zap.Logger
	HTTP  *zap.Logger
}

func NewLoggers(base *zap.Logger) *Loggers {
	return &Loggers{
		Main:  base.Named("main"),
		User:  base.Named("user"),
		Route: base.Named("route"),
		Seed:  base.Named("seed"),
		HTTP:  base.Named("http"),
	}
}

// NewNopLoggers используется в тестах.
func NewNopLoggers() *Loggers {
	return NewLoggers(zap.NewNop())
}
