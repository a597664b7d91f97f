package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the minimum severity a record needs to be written
type Level int

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var levels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var recordFormat = logging.MustStringFormatter(
	`%{color}%{time:15:04:05.000} %{level:.4s} %{module:-10s}%{color:reset} %{message}`,
)

// backend is shared by every module logger; its level applies to all of them
var backend logging.LeveledBackend

// Logger is the leveled logger handed out to each package of the renderer
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})

	Debug(v ...interface{})
	Info(v ...interface{})
	Notice(v ...interface{})
	Warning(v ...interface{})
	Error(v ...interface{})
}

// New returns the logger for a package. The name is printed with every record.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink redirects all records to w. The current level is kept.
func SetSink(w io.Writer) {
	level := logging.NOTICE
	if backend != nil {
		level = backend.GetLevel("")
	}

	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), recordFormat)
	backend = logging.AddModuleLevel(formatted)
	backend.SetLevel(level, "")
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every logger.
func SetLevel(level Level) {
	backend.SetLevel(level.backendLevel(), "")
}

// IsEnabled reports whether records at level are written.
func IsEnabled(level Level) bool {
	return backend.IsEnabledFor(level.backendLevel(), "")
}

func (level Level) backendLevel() logging.Level {
	if l, ok := levels[level]; ok {
		return l
	}
	return logging.NOTICE
}

func init() {
	SetSink(os.Stdout)
}
