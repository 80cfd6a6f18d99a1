package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Level is a log level name as accepted by --log-level and FILEKIT_LOG_LEVEL.
type Level string

const (
	Trace Level = "trace"
	Debug Level = "debug"
	Info  Level = "info"
	Warn  Level = "warn"
	Error Level = "error"
	Fatal Level = "fatal"
)

// DefaultLogFile is used by the CLI when --log-path is given without a value
// and no FILEKIT_LOG_PATH is set.
const DefaultLogFile = "filekit.log"

var logrusLevels = map[Level]logrus.Level{
	Trace: logrus.TraceLevel,
	Debug: logrus.DebugLevel,
	Info:  logrus.InfoLevel,
	Warn:  logrus.WarnLevel,
	Error: logrus.ErrorLevel,
	Fatal: logrus.FatalLevel,
}

// Integer maps l to its logrus level. Unknown names map to info.
func (l Level) Integer() logrus.Level {
	if level, ok := logrusLevels[l]; ok {
		return level
	}
	return logrus.InfoLevel
}

// LevelFromString parses a level name, ignoring case and surrounding space.
// "warning" is accepted for warn; anything unrecognised yields Info.
func LevelFromString(level string) Level {
	name := Level(strings.ToLower(strings.TrimSpace(level)))
	if name == "warning" {
		return Warn
	}
	if _, ok := logrusLevels[name]; ok {
		return name
	}
	return Info
}

// GlobalLogger receives the resolver diagnostics unless a caller supplies
// its own logger. Until Init is called it writes warnings and above to stderr.
var GlobalLogger = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// Init configures GlobalLogger for CLI use. An empty path logs to stderr.
func Init(level Level, path string) {
	GlobalLogger.SetFormatter(&logrus.TextFormatter{
		DisableColors: false,
		FullTimestamp: true,
		DisableQuote:  true,
	})

	GlobalLogger.SetReportCaller(false)
	GlobalLogger.SetLevel(level.Integer())
	GlobalLogger.ReplaceHooks(make(logrus.LevelHooks))

	if path == "" {
		GlobalLogger.SetOutput(os.Stderr)
		return
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		GlobalLogger.SetOutput(os.Stderr)
		GlobalLogger.Warnf("Failed to log to file %s, using stderr", path)
		return
	}

	GlobalLogger.SetOutput(file)

	// Warnings from the resolver are still worth seeing when the log goes to a file.
	GlobalLogger.AddHook(&warnConsoleHook{out: os.Stderr})
}

// warnConsoleHook duplicates warning messages to the console with an orange
// color so they are visible even when primary log output is a file.
type warnConsoleHook struct {
	out io.Writer
}

func (h *warnConsoleHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel}
}

func (h *warnConsoleHook) Fire(entry *logrus.Entry) error {
	color := "\x1b[33m" // fallback yellow
	reset := "\x1b[0m"
	if supports256Color() {
		color = "\x1b[38;5;208m" // orange
	}

	var fieldParts []string
	for k, v := range entry.Data {
		fieldParts = append(fieldParts, k+"="+toString(v))
	}
	fields := ""
	if len(fieldParts) > 0 {
		fields = " (" + strings.Join(fieldParts, ", ") + ")"
	}

	_, _ = io.WriteString(h.out, color+"WARNING: "+entry.Message+fields+reset+"\n")
	return nil
}

func supports256Color() bool {
	term := os.Getenv("TERM")
	return strings.Contains(term, "256color") || strings.Contains(os.Getenv("COLORTERM"), "truecolor")
}

func toString(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v", v)
}
