package fetcher

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// restyLogger writes resty client messages into zerolog logger.
type restyLogger struct {
	logger *zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log(zerolog.ErrorLevel, format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log(zerolog.WarnLevel, format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log(zerolog.DebugLevel, format, v...)
}

func (l restyLogger) log(level zerolog.Level, format string, v ...interface{}) {
	if l.logger == nil {
		return
	}
	l.logger.WithLevel(level).
		Str("component", "http").
		Msg(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
