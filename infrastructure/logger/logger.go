package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	logger.Out = os.Stdout
	// Allow LOG_TO_FILE=true to write into ./logs/<date><env>.log instead of stdout.
	if os.Getenv("LOG_TO_FILE") == "true" {
		if f, err := openLogFile(os.Getenv("ENV")); err != nil {
			log.Warnf("Failed to open log file: %v, falling back to stdout", err)
		} else {
			logger.Out = f
		}
	}
	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.InfoLevel)
}

func openLogFile(env string) (*os.File, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	logsDir := filepath.Join(cwd, "logs")
	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s%s.log", time.Now().Format("2006-01-02"), env)
	return os.OpenFile(filepath.Join(logsDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
}

// Configure applies the format ("json" or "text") and level from configuration.
// Unknown values keep the current setting.
func Configure(format, level string) {
	switch strings.ToLower(format) {
	case "text":
		logger.Formatter = &log.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339}
	case "json":
		logger.Formatter = &log.JSONFormatter{TimestampFormat: time.RFC3339Nano}
	}
	if level == "" {
		return
	}
	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}
}

// SetOutput redirects log output, mainly for tests
func SetOutput(w io.Writer) {
	logger.Out = w
}

// GetLogger returns an entry annotated with the caller's function, file and line
func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionName := "unknown"
	if functionObject := runtime.FuncForPC(function); functionObject != nil {
		functionName = functionObject.Name()
	}
	return logger.WithFields(log.Fields{
		"function": functionName,
		"file":     filepath.Base(file),
		"line":     line,
	})
}
