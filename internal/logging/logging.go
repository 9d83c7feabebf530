// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"propdesk/internal/config"
)

// New builds a logger writing one JSON object per line to stdout.
// Timestamps are rendered under "ts" in the given location.
func New(cfg config.LogConfig, loc *time.Location) *logrus.Logger {
	return NewWithWriter(os.Stdout, cfg, loc)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, cfg config.LogConfig, loc *time.Location) *logrus.Logger {
	if loc == nil {
		loc = time.UTC
	}

	l := logrus.New()
	l.SetOutput(w)

	level, err := logrus.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.EqualFold(cfg.Format, "text") {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
	} else {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "ts",
			},
		})
	}
	l.AddHook(&locationHook{loc: loc})

	if err != nil && cfg.Level != "" {
		l.WithField("log_level", cfg.Level).Warn("invalid LOG_LEVEL, defaulting to info")
	}
	return l
}

// Discard returns a logger that drops everything. Used by tests and CLI paths
// that do not want request noise.
func Discard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// locationHook rewrites entry times into the configured zone.
type locationHook struct {
	loc *time.Location
}

func (h *locationHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *locationHook) Fire(e *logrus.Entry) error {
	e.Time = e.Time.In(h.loc)
	return nil
}
