package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default logger sebelum Setup dipanggil (level info, output ke stderr)
	sugar = build(zapcore.InfoLevel)
}

// Setup reconfigures the process logger with the given level ("debug",
// "info", "warn", "error"). Unknown levels fall back to info.
func Setup(level string) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}
	sugar = build(parsed)
}

func build(level zapcore.Level) *zap.SugaredLogger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core).Sugar()
}

func Info(msg string, v ...interface{}) {
	sugar.Infof(msg, v...)
}

func Warn(msg string, v ...interface{}) {
	sugar.Warnf(msg, v...)
}

func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		sugar.Errorf(msg+": %v", append(v, err)...)
	} else {
		sugar.Errorf(msg, v...)
	}
}
