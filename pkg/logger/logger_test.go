package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/zkproofport/proofport-app-demo/pkg/logger"
	"github.com/zkproofport/proofport-app-demo/pkg/utilities/timeutil"
)

func TestNew(t *testing.T) {
	l := logger.New()
	if l == nil {
		t.Fatal("Expected logger to be created, got nil")
	}
}

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name   string
		config logger.LoggerConfig
	}{
		{
			name:   "Default log level when no level specified",
			config: logger.LoggerConfig{LogLevel: zerolog.NoLevel},
		},
		{
			name:   "Debug log level",
			config: logger.LoggerConfig{LogLevel: zerolog.DebugLevel},
		},
		{
			name:   "Error log level",
			config: logger.LoggerConfig{LogLevel: zerolog.ErrorLevel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.NewFromConfig(tt.config)
			if l == nil {
				t.Fatal("Expected logger to be created, got nil")
			}
		})
	}
}

func TestLoggerWithOutput(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("test message")

	if !strings.Contains(buf.String(), "test message") {
		t.Errorf("Expected output to contain 'test message', got: %s", buf.String())
	}
}

func TestLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.ErrorLevel)

	l.Info("info message")
	l.Error(errors.New("test error"), "error message")

	output := buf.String()
	if strings.Contains(output, "info message") {
		t.Error("Info message should not appear when level is set to Error")
	}
	if !strings.Contains(output, "error message") {
		t.Error("Error message should appear when level is set to Error")
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		want  string
		level string
	}{
		{
			name:  "Debug",
			log:   func(l *logger.Logger) { l.Debug("debug message") },
			want:  "debug message",
			level: "debug",
		},
		{
			name:  "Debugf",
			log:   func(l *logger.Logger) { l.Debugf("debug message with %s", "formatting") },
			want:  "debug message with formatting",
			level: "debug",
		},
		{
			name:  "Info",
			log:   func(l *logger.Logger) { l.Info("info message") },
			want:  "info message",
			level: "info",
		},
		{
			name:  "Infof",
			log:   func(l *logger.Logger) { l.Infof("info message with %d items", 5) },
			want:  "info message with 5 items",
			level: "info",
		},
		{
			name:  "Warn",
			log:   func(l *logger.Logger) { l.Warn("warning message") },
			want:  "warning message",
			level: "warn",
		},
		{
			name:  "Error",
			log:   func(l *logger.Logger) { l.Error(errors.New("test error"), "error message") },
			want:  "error message",
			level: "error",
		},
		{
			name:  "Errorf",
			log:   func(l *logger.Logger) { l.Errorf(errors.New("test error"), "error with %s", "context") },
			want:  "error with context",
			level: "error",
		},
		{
			name:  "Log custom level",
			log:   func(l *logger.Logger) { l.Log(zerolog.WarnLevel, "custom level message") },
			want:  "custom level message",
			level: "warn",
		},
		{
			name:  "Logf custom level",
			log:   func(l *logger.Logger) { l.Logf(zerolog.InfoLevel, "custom level message with %d", 42) },
			want:  "custom level message with 42",
			level: "info",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.New().WithOutput(&buf).WithLevel(zerolog.DebugLevel)

			tt.log(l)

			output := buf.String()
			if !strings.Contains(output, tt.want) {
				t.Errorf("Expected output to contain %q, got: %s", tt.want, output)
			}
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("Expected log level %q, got: %s", tt.level, output)
			}
		})
	}
}

func TestLoggerSink(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	var gotMsg string
	var gotLevel zerolog.Level
	logger.AddSinkToLoggerInstance(l, func(msg string, level zerolog.Level, _ timeutil.TimeUTC) {
		gotMsg = msg
		gotLevel = level
	})

	l.Warnf("sink message %d", 7)

	if gotMsg != "sink message 7" {
		t.Errorf("Expected sink to receive the formatted message, got %q", gotMsg)
	}
	if gotLevel != zerolog.WarnLevel {
		t.Errorf("Expected sink to receive warn level, got %v", gotLevel)
	}
}

func TestLoggerConfigConvertToDomain(t *testing.T) {
	cfg := logger.LoggerConfigJson{LogLevel: int8(zerolog.DebugLevel)}

	result := cfg.ConvertToDomain()
	if result.LogLevel != zerolog.DebugLevel {
		t.Errorf("Expected LogLevel %v, got %v", zerolog.DebugLevel, result.LogLevel)
	}
}

func TestInitDefaultLogger(t *testing.T) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{
			{Key: "application", Value: "test-app"},
			{Key: "version", Value: "1.0.0"},
		},
	})

	if logger.Default() == nil {
		t.Fatal("Expected default logger to be initialized, got nil")
	}
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("test json format")

	var logEntry map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry); err != nil {
		t.Fatalf("Log output is not valid JSON: %v", err)
	}

	if logEntry["level"] != "info" {
		t.Error("Expected level field to be 'info'")
	}
	if logEntry["message"] != "test json format" {
		t.Error("Expected message field to match input")
	}
	if _, ok := logEntry["time"]; !ok {
		t.Error("Expected time field to be present")
	}
}
