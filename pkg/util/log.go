package util

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hook appends formatted log entries to a file, tagging every entry with
// a key unique to the current invocation.
type Hook struct {
	formatter logrus.Formatter
	levels    []logrus.Level
	fields    logrus.Fields
	path      string
}

var (
	fieldMap = logrus.FieldMap{
		logrus.FieldKeyTime:  "@time",
		logrus.FieldKeyLevel: "@level",
		logrus.FieldKeyMsg:   "message",
	}
	fields = logrus.Fields{
		"@key": uuid.New(), // This will be unique for every command being run
	}
)

// NewFileHook returns a hook appending JSON entries to path.
func NewFileHook(path string, levels []logrus.Level) *Hook {
	f := logrus.Fields{}
	for k, v := range fields {
		f[k] = v
	}
	return &Hook{
		formatter: &logrus.JSONFormatter{FieldMap: fieldMap},
		fields:    f,
		path:      path,
		levels:    levels,
	}
}

func (h *Hook) Fire(entry *logrus.Entry) error {
	data := make(logrus.Fields, len(entry.Data)+len(h.fields))
	for k, v := range entry.Data {
		data[k] = v
	}
	for k, v := range h.fields {
		data[k] = v
	}
	e := entry.WithFields(data)
	e.Level = entry.Level
	e.Message = entry.Message
	e.Time = entry.Time
	bytes, err := h.formatter.Format(e)
	if err != nil {
		return err
	}

	w, err := os.OpenFile(h.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = w.Write(bytes)
	return err
}

func (h *Hook) Levels() []logrus.Level {
	return h.levels
}
