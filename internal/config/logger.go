package config

import (
	"io"            // io supplies the Closer returned with each logger
	"os"            // os provides the stderr fallback
	"path/filepath" // filepath locates the log directory

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the operational logger: JSON entries at LogLevel,
// written to a rotating file, or to stderr when LogFile is empty.  The
// returned closer releases the file.
func (c Config) NewLogger() (*logrus.Logger, io.Closer, error) {
	return c.newLogger(c.LogFile)
}

// NewAuditLogger is NewLogger for the audit consumer, which keeps its own
// operational log next to the main one.
func (c Config) NewAuditLogger() (*logrus.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return c.newLogger("")
	}
	return c.newLogger(filepath.Join(filepath.Dir(c.LogFile), "hotel-audit-consumer.log"))
}

func (c Config) newLogger(path string) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	log.SetLevel(level)

	if path == "" {
		log.SetOutput(os.Stderr)
		return log, io.NopCloser(nil), nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    c.LogMaxSizeMB,
		MaxBackups: c.LogMaxBackups,
		Compress:   true,
	}
	log.SetOutput(rotator)
	return log, rotator, nil
}
