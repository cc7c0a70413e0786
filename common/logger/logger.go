package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/flux-image/flux-image/common/config"
	"github.com/flux-image/flux-image/common/helper"
	"github.com/gin-gonic/gin"
)

const (
	loggerDEBUG = "debug"
	loggerINFO  = "info"
	loggerWarn  = "warn"
	loggerError = "error"
)

const RequestIdKey = "X-Request-Id"

// LogDir enables daily log files when set.
var LogDir string

// EchoToConsole mirrors log lines to stdout/stderr. The console binary turns it off
// so logs do not interleave with the prompt.
var EchoToConsole = true

// LogEntry is one JSON log line.
type LogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	RequestId string `json:"request_id,omitempty"`
	Msg       string `json:"msg"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

var setupLogLock sync.Mutex
var logFileDate string
var generalLogFile *os.File
var errorLogFile *os.File

// SetupLogger points gin's writers at the console and, when LogDir is set, at
// today's log files. Calling it again on a new day rotates the files.
func SetupLogger() {
	setupLogLock.Lock()
	defer setupLogLock.Unlock()

	var out, errOut []io.Writer
	if EchoToConsole {
		out = append(out, os.Stdout)
		errOut = append(errOut, os.Stderr)
	}

	if LogDir != "" {
		dateStr := time.Now().Format("20060102")
		if dateStr != logFileDate {
			generalLogPath := filepath.Join(LogDir, fmt.Sprintf("flux-%s.log", dateStr))
			fd, err := os.OpenFile(generalLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				log.Fatal("failed to open general log file")
			}
			errorLogPath := filepath.Join(LogDir, fmt.Sprintf("flux-error-%s.log", dateStr))
			errFd, err := os.OpenFile(errorLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				log.Fatal("failed to open error log file")
			}
			if generalLogFile != nil {
				generalLogFile.Close()
			}
			if errorLogFile != nil {
				errorLogFile.Close()
			}
			generalLogFile = fd
			errorLogFile = errFd
			logFileDate = dateStr
		}
		out = append(out, generalLogFile)
		errOut = append(errOut, errorLogFile)
	}

	gin.DefaultWriter = multiWriter(out)
	gin.DefaultErrorWriter = multiWriter(errOut)
}

func multiWriter(writers []io.Writer) io.Writer {
	switch len(writers) {
	case 0:
		return io.Discard
	case 1:
		return writers[0]
	default:
		return io.MultiWriter(writers...)
	}
}

func rotateIfNeeded() {
	if LogDir == "" {
		return
	}
	setupLogLock.Lock()
	stale := logFileDate != time.Now().Format("20060102")
	setupLogLock.Unlock()
	if stale {
		SetupLogger()
	}
}

func writeJSONLog(writer io.Writer, level, requestId, msg string) {
	entry := LogEntry{
		Ts:        time.Now().Format(time.RFC3339Nano),
		Level:     level,
		RequestId: requestId,
		Msg:       msg,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}
	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		_, _ = fmt.Fprintf(writer, `{"ts":"%s","level":"%s","msg":"json marshal error","service":"%s","instance":"%s"}`+"\n",
			entry.Ts, level, config.ServiceName, config.InstanceId)
		return
	}
	_, _ = writer.Write(append(jsonBytes, '\n'))
}

func SysLog(s string) {
	rotateIfNeeded()
	writeJSONLog(gin.DefaultWriter, loggerINFO, "", s)
}

func SysError(s string) {
	rotateIfNeeded()
	writeJSONLog(gin.DefaultErrorWriter, loggerError, "", s)
}

func Debug(ctx context.Context, msg string) {
	if config.DebugEnabled {
		logHelper(ctx, loggerDEBUG, msg)
	}
}

func Info(ctx context.Context, msg string) {
	logHelper(ctx, loggerINFO, msg)
}

func Warn(ctx context.Context, msg string) {
	logHelper(ctx, loggerWarn, msg)
}

func Error(ctx context.Context, msg string) {
	logHelper(ctx, loggerError, msg)
}

func Debugf(ctx context.Context, format string, a ...any) {
	Debug(ctx, fmt.Sprintf(format, a...))
}

func Infof(ctx context.Context, format string, a ...any) {
	Info(ctx, fmt.Sprintf(format, a...))
}

func Warnf(ctx context.Context, format string, a ...any) {
	Warn(ctx, fmt.Sprintf(format, a...))
}

func Errorf(ctx context.Context, format string, a ...any) {
	Error(ctx, fmt.Sprintf(format, a...))
}

func logHelper(ctx context.Context, level string, msg string) {
	rotateIfNeeded()
	writer := gin.DefaultWriter
	if level == loggerError {
		writer = gin.DefaultErrorWriter
	}

	id := ""
	if ctx != nil {
		if v := ctx.Value(RequestIdKey); v != nil {
			id = fmt.Sprintf("%v", v)
		}
	}
	if id == "" {
		id = helper.GenRequestID()
	}

	writeJSONLog(writer, level, id, msg)
}

func FatalLog(v ...any) {
	msg := fmt.Sprint(v...)
	writeJSONLog(gin.DefaultErrorWriter, "fatal", "", msg)
	os.Exit(1)
}
