package main

import (
	"os"

	"github.com/sirupsen/logrus"

	ionap "github.com/ionite/ion-ap-client-go"
)

// newRequestLogger returns a logrus-backed request logger in verbose
// mode and the discarding default otherwise. The client redacts the
// API key before logging, so verbose output never leaks it.
func newRequestLogger(verbose bool) ionap.RequestLogger {
	if !verbose {
		return &ionap.NoopLogger{}
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.DebugLevel)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return &logrusLogger{log: log}
}

type logrusLogger struct {
	log *logrus.Logger
}

func (l *logrusLogger) Errorf(format string, v ...any) { l.log.Errorf(format, v...) }
func (l *logrusLogger) Warnf(format string, v ...any)  { l.log.Warnf(format, v...) }
func (l *logrusLogger) Debugf(format string, v ...any) { l.log.Debugf(format, v...) }
