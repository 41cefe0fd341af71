package logger

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// SlowThreshold marks tracked operations that should be logged as warnings.
var SlowThreshold = 500 * time.Millisecond

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// Configure sets the level (debug, info, warn, error) and the format
// (text or json) of the standard logger.
func Configure(level, format string, out io.Writer) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}
	if out != nil {
		logrus.SetOutput(out)
	}
	return nil
}

// For returns an entry carrying the request id of ctx, if any.
func For(ctx context.Context) *logrus.Entry {
	id, ok := ctx.Value(requestIDKey).(string)
	if !ok || id == "" {
		return logrus.NewEntry(logrus.StandardLogger())
	}
	return logrus.WithField("request_id", id)
}

func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// Track logs msg with its duration when the returned func is called.
func Track(ctx context.Context, msg string) func() {
	start := time.Now()
	return func() {
		dur := time.Since(start)
		entry := For(ctx).WithField("duration", dur.String())
		if dur > SlowThreshold {
			entry.Warnf("%s completed (SLOW)", msg)
		} else {
			entry.Debugf("%s completed", msg)
		}
	}
}
