package utils

import (
	"fmt"
	"os"
)

type Log interface {
	Debug(a ...interface{})
	Info(a ...interface{})
	Warn(a ...interface{})
	Error(a ...interface{})
	Output(a ...interface{})
}

// NullLog is a logger that does nothing
type NullLog struct {
}

func (nl *NullLog) Debug(...interface{}) {
}

func (nl *NullLog) Info(...interface{}) {
}

func (nl *NullLog) Warn(...interface{}) {
}

func (nl *NullLog) Error(...interface{}) {
}

func (nl *NullLog) Output(...interface{}) {
}

type LevelType int

const (
	ERROR LevelType = iota
	WARN
	INFO
	DEBUG
)

// NewDefaultLogger creates a logger writing prefixed, levelled messages.
// Log records go to stderr, Output goes to stdout.
func NewDefaultLogger(logLevel LevelType) *defaultLogger {
	return &defaultLogger{logLevel: logLevel}
}

type defaultLogger struct {
	logLevel LevelType
}

func (dl *defaultLogger) Debug(a ...interface{}) {
	if dl.logLevel >= DEBUG {
		dl.println("[Debug]", a...)
	}
}

func (dl *defaultLogger) Info(a ...interface{}) {
	if dl.logLevel >= INFO {
		dl.println("[Info]", a...)
	}
}

func (dl *defaultLogger) Warn(a ...interface{}) {
	if dl.logLevel >= WARN {
		dl.println("[Warn]", a...)
	}
}

func (dl *defaultLogger) Error(a ...interface{}) {
	if dl.logLevel >= ERROR {
		dl.println("[Error]", a...)
	}
}

func (dl *defaultLogger) Output(a ...interface{}) {
	fmt.Println(a...)
}

func (dl *defaultLogger) println(prefix string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, append([]interface{}{prefix}, a...)...)
}
