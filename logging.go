package arbiter

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a logger writing to stderr, or to a size-rotated file
// when config.File is set. The returned closer releases the file.
func NewLogger(config LogConfig) (*log.Logger, io.Closer) {
	if config.File == "" {
		return log.New(os.Stderr, "", log.LstdFlags), nopCloser{}
	}
	writer := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSizeMB,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAgeDays,
		Compress:   config.Compress,
	}
	return log.New(writer, "", log.LstdFlags|log.Lmicroseconds), writer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
