package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// zeroLogger sends gorm output to zerolog, preferring the request scoped
// logger stored in the context.
type zeroLogger struct {
	level gormlogger.LogLevel
}

func NewLogger() gormlogger.Interface {
	return &zeroLogger{level: gormlogger.Warn}
}

func (l *zeroLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	return &zeroLogger{level: level}
}

func (l *zeroLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		loggerFrom(ctx).Info().Msgf(msg, args...)
	}
}

func (l *zeroLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		loggerFrom(ctx).Warn().Msgf(msg, args...)
	}
}

func (l *zeroLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		loggerFrom(ctx).Error().Msgf(msg, args...)
	}
}

func (l *zeroLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	logger := loggerFrom(ctx)
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		logger.Debug().Err(err).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query failed")
	case elapsed > slowQueryThreshold:
		sql, rows := fc()
		logger.Warn().Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Slow query")
	default:
		if e := logger.Trace(); e.Enabled() {
			sql, rows := fc()
			e.Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("Query")
		}
	}
}

func loggerFrom(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return &log.Logger
}
