package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/fatih/color"
)

type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelOff
)

type levelInfo struct {
	color  *color.Color
	prefix string
}

var levels = map[Level]levelInfo{
	LevelTrace: {color.New(color.FgWhite), "TRCE"},
	LevelDebug: {color.New(color.FgWhite), "DBUG"},
	LevelInfo:  {color.New(color.FgBlue), "INFO"},
	LevelWarn:  {color.New(color.FgYellow), "WARN"},
	LevelError: {color.New(color.FgRed), "EROR"},
	LevelFatal: {color.New(color.FgRed, color.Bold), "FATL"},
}

var levelNames = map[string]Level{
	"trace": LevelTrace,
	"debug": LevelDebug,
	"info":  LevelInfo,
	"warn":  LevelWarn,
	"error": LevelError,
	"fatal": LevelFatal,
	"off":   LevelOff,
}

// ParseLevel returns the level named by s (trace, debug, info, warn,
// error, fatal or off).
func ParseLevel(s string) (Level, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
	return lvl, nil
}

func (lvl Level) String() string {
	if li, ok := levels[lvl]; ok {
		return li.prefix
	}
	return "OFF"
}

var DefaultLogger = NewLogger(os.Stderr, LevelInfo)

type Logger struct {
	lock      sync.Mutex    // sync
	log       *log.Logger   // actual logger
	buf       *bytes.Buffer // buffer
	level     Level         // minimum level written
	printFunc bool
	printFile bool
	dep       int // call depth
}

func NewLogger(out io.Writer, level Level) *Logger {
	l := &Logger{
		log:   log.New(out, "", log.LstdFlags),
		buf:   new(bytes.Buffer),
		level: level,
		dep:   4,
	}
	return l
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level < l.level {
		return
	}
	li, ok := levels[level]
	if !ok {
		return
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	l.buf.WriteString(li.color.Sprint(li.prefix))
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		fn, file := trace(depth)
		if l.printFunc {
			l.buf.WriteByte('[')
			l.buf.WriteString(fn)
			l.buf.WriteByte(']')
		}
		if l.printFunc && l.printFile {
			l.buf.WriteByte(' ')
		}
		if l.printFile {
			l.buf.WriteString(file)
		}
		l.buf.WriteString(" - ")
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
	} else {
		fmt.Fprintf(l.buf, format, args...)
	}
	l.log.Print(l.buf.String())
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

func (l *Logger) SetOutput(out io.Writer) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetOutput(out)
}

func (l *Logger) SetFlags(flags int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetFlags(flags)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 10) // at least 1 entry needed
	n := runtime.Callers(calldepth, pc)
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	name := filepath.Base(frame.Function)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
}
