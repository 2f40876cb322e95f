package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config represents the logger config.
type Config struct {
	Filename   string `yaml:"filename"`
	Level      string `yaml:"level"`
	MaxSize    int    `yaml:"max_size_in_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Targets    string `yaml:"targets"` // "console", "file" or "console,file"
}

var globalInst zerolog.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

// InitGlobalLogger initializes the global logger based on the given config.
func InitGlobalLogger(cfg *Config) {
	var writers []io.Writer

	targets := strings.Split(cfg.Targets, ",")
	for _, t := range targets {
		switch strings.TrimSpace(t) {
		case "console":
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr})
		case "file":
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				Compress:   true,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	globalInst = zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}

func Debug(msg string, keyvals ...any) {
	withKeyvals(globalInst.Debug(), keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	withKeyvals(globalInst.Info(), keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	withKeyvals(globalInst.Warn(), keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	withKeyvals(globalInst.Error(), keyvals).Msg(msg)
}

// withKeyvals attaches alternating key/value pairs to the event.
// A trailing key without a value is ignored.
func withKeyvals(e *zerolog.Event, keyvals []any) *zerolog.Event {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, keyvals[i+1])
	}

	return e
}
