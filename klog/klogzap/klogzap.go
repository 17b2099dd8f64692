// Package klogzap adapts a *zap.Logger to klog.Logger, the same role
// franz-go's plugin/kzap package fills for that project's client
// config logger seam.
package klogzap

import (
	"github.com/ivanyu/kafka-protocol/klog"
	"go.uber.org/zap"
)

// Logger wraps a *zap.Logger as a klog.Logger.
type Logger struct {
	z     *zap.Logger
	level klog.LogLevel
}

// New returns a klog.Logger backed by z, logging at up to maxLevel.
func New(z *zap.Logger, maxLevel klog.LogLevel) *Logger {
	return &Logger{z: z, level: maxLevel}
}

func (l *Logger) Level() klog.LogLevel { return l.level }

func (l *Logger) Log(level klog.LogLevel, msg string, keysAndValues ...any) {
	if level > l.level {
		return
	}
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	switch level {
	case klog.LogLevelError:
		l.z.Error(msg, fields...)
	case klog.LogLevelWarn:
		l.z.Warn(msg, fields...)
	case klog.LogLevelInfo:
		l.z.Info(msg, fields...)
	case klog.LogLevelDebug:
		l.z.Debug(msg, fields...)
	}
}
