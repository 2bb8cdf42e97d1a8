package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus with the key-value calling convention used across the
// service: log.Info("message", "key", value, ...).
type Logger struct {
	entry *logrus.Entry
}

func NewLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	l.SetLevel(logrus.InfoLevel)

	return &Logger{entry: logrus.NewEntry(l)}
}

func NewNopLogger() *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.PanicLevel)

	return &Logger{entry: logrus.NewEntry(l)}
}

func (l *Logger) withFields(fields ...interface{}) *logrus.Entry {
	if len(fields) == 0 || len(fields)%2 != 0 {
		return l.entry
	}

	fieldMap := make(logrus.Fields, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		fieldMap[key] = fields[i+1]
	}

	return l.entry.WithFields(fieldMap)
}

func (l *Logger) Debug(msg string, fields ...interface{}) {
	l.withFields(fields...).Debug(msg)
}

func (l *Logger) Info(msg string, fields ...interface{}) {
	l.withFields(fields...).Info(msg)
}

func (l *Logger) Warn(msg string, fields ...interface{}) {
	l.withFields(fields...).Warn(msg)
}

func (l *Logger) Error(msg string, fields ...interface{}) {
	l.withFields(fields...).Error(msg)
}

func (l *Logger) Fatal(msg string, fields ...interface{}) {
	l.withFields(fields...).Fatal(msg)
}

func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{entry: l.entry.WithField(key, value)}
}
