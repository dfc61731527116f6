// Package log provides really basic leveled logging helpers.
package log

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

type LogLevel uint8

const (
	LOG_NOTHING = LogLevel(iota)
	LOG_ERROR
	LOG_WARN
	LOG_INFO
	LOG_DEBUG
)

func Parse(text string) (LogLevel, error) {
	upperText := strings.ToUpper(text)
	switch upperText {
	case __DEBUG_TEXT:
		return LOG_DEBUG, nil
	case __INFO_TEXT:
		return LOG_INFO, nil
	case "WARNING":
		fallthrough
	case __WARN_TEXT:
		return LOG_WARN, nil
	case __ERROR_TEXT:
		return LOG_ERROR, nil
	case __NOTHING_TEXT:
		return LOG_NOTHING, nil
	}

	return LOG_DEBUG, fmt.Errorf("Unknown log level: '%s'", text)
}

func (level LogLevel) String() string {
	switch level {
	case LOG_NOTHING:
		return __NOTHING_TEXT
	case LOG_DEBUG:
		return __DEBUG_TEXT
	case LOG_WARN:
		return __WARN_TEXT
	case LOG_ERROR:
		return __ERROR_TEXT
	case LOG_INFO:
		return __INFO_TEXT
	default:
		return strconv.Itoa(int(level))
	}
}

var __LOG_LEVEL LogLevel

func SetLevel(level LogLevel) {
	__LOG_LEVEL = level
	Info("Log level set to %v", __LOG_LEVEL)
}

func CanLog(level LogLevel) bool {
	return __LOG_LEVEL >= level
}

func Debug(msg string, args ...interface{}) {
	if CanLog(LOG_DEBUG) {
		logMsg(LOG_DEBUG.String(), msg, args...)
	}
}

func Info(msg string, args ...interface{}) {
	if CanLog(LOG_INFO) {
		logMsg(LOG_INFO.String(), msg, args...)
	}
}

func Warn(msg string, args ...interface{}) {
	if CanLog(LOG_WARN) {
		logMsg(LOG_WARN.String(), msg, args...)
	}
}

func Error(msg string, args ...interface{}) {
	if CanLog(LOG_ERROR) {
		logMsg(LOG_ERROR.String(), msg, args...)
	}
}

func logMsg(level, msg string, args ...interface{}) {
	format := fmt.Sprintf("%s %s", level, msg)
	spewDump := spew.Sprintf(format, args...)
	log.Print(spewDump)
}

const __DEBUG_TEXT = "DEBUG"
const __INFO_TEXT = "INFO"
const __WARN_TEXT = "WARN"
const __ERROR_TEXT = "ERROR"
const __NOTHING_TEXT = "NOTHING"
