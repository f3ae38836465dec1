package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitLogger installs the global logger. Production writes JSON to the file
// only; development adds a colored console on stdout and logs at debug level.
func InitLogger(logFilePath string, production bool) (*os.File, error) {
	file, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, err
	}

	SetLogger(zap.New(newCore(file, os.Stdout, production), zap.AddCaller()))
	return file, nil
}

func newCore(file, console zapcore.WriteSyncer, production bool) zapcore.Core {
	fileCfg := zap.NewProductionEncoderConfig()
	fileCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	if production {
		// JSON logs only, no console output
		return zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), file, zapcore.InfoLevel)
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")

	// Multi-writer: console (colors) + file (JSON)
	return zapcore.NewTee(
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(console), zapcore.DebugLevel),
		zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), file, zapcore.DebugLevel),
	)
}
