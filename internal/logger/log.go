package logger

import (
	"fmt"
	"log"
	"os"

	alog "github.com/lesismal/arpc/log"

	"github.com/Jarnpher553/gostore/internal/util/color"
)

//XLogger level-gated printf logger, pluggable into arpc via alog.SetLogger
type XLogger struct {
	level int
	mod   string
}

func (l *XLogger) SetLevel(lvl int) {
	l.level = lvl
}

func (l *XLogger) SetModName(mod string) {
	l.mod = mod
}

func (l *XLogger) output(tag string, format string, v ...interface{}) {
	if l.mod != "" {
		log.Printf(fmt.Sprintf("[%s] [%s] %s", tag, color.Green(l.mod), format), v...)
	} else {
		log.Printf(fmt.Sprintf("[%s] %s", tag, format), v...)
	}
}

func (l *XLogger) Debug(format string, v ...interface{}) {
	if alog.LevelDebug >= l.level {
		l.output(color.Cyan("DBG"), format, v...)
	}
}

func (l *XLogger) Info(format string, v ...interface{}) {
	if alog.LevelInfo >= l.level {
		l.output(color.Green("INF"), format, v...)
	}
}

func (l *XLogger) Warn(format string, v ...interface{}) {
	if alog.LevelWarn >= l.level {
		l.output(color.Yellow("WRN"), format, v...)
	}
}

func (l *XLogger) Error(format string, v ...interface{}) {
	if alog.LevelError >= l.level {
		l.output(color.Red("ERR"), format, v...)
	}
}

func (l *XLogger) Fatal(format string, v ...interface{}) {
	l.output(color.Red("FATAL"), format, v...)
	os.Exit(1)
}
