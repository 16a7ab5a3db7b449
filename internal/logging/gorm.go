package logging

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/gorm/logger"
)

// gormWriter routes gorm's printf-style output into the default slog logger.
type gormWriter struct{}

func (gormWriter) Printf(format string, args ...any) {
	msg := strings.Join(strings.Fields(fmt.Sprintf(format, args...)), " ")
	slog.Warn(msg, "source", "gorm")
}

// GormLogger reports slow queries and errors through slog. Missing rows are
// expected lookups, not errors.
func GormLogger() logger.Interface {
	return logger.New(gormWriter{}, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
