package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// GenerateLogger captures one sitemap generation run, writing to a
// per-run file under logs/ as well as stdout.
type GenerateLogger struct {
	file       *os.File
	logger     *log.Logger
	multiWrite io.Writer
}

func NewGenerateLogger() (*GenerateLogger, error) {
	// Create logs directory if it doesn't exist
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Create log file with timestamp
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logsDir, fmt.Sprintf("generate_%s.log", timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	// Create multi-writer for both file and stdout
	multiWrite := io.MultiWriter(os.Stdout, file)
	logger := log.New(multiWrite, "", log.Ldate|log.Ltime|log.Lmicroseconds)

	return &GenerateLogger{
		file:       file,
		logger:     logger,
		multiWrite: multiWrite,
	}, nil
}

func (gl *GenerateLogger) LogInfo(format string, v ...interface{}) {
	gl.log("INFO", format, v...)
}

func (gl *GenerateLogger) LogError(format string, v ...interface{}) {
	gl.log("ERROR", format, v...)
}

func (gl *GenerateLogger) LogWarn(format string, v ...interface{}) {
	gl.log("WARN", format, v...)
}

func (gl *GenerateLogger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	gl.logger.Printf("[%s] %s", level, message)
}

func (gl *GenerateLogger) Close() error {
	return gl.file.Close()
}
