package inet

import (
	"github.com/sirupsen/logrus"
)

// loggerHelper stamps package and function fields on every entry.
type loggerHelper struct {
	fields logrus.Fields
}

func newLogger(function string) *loggerHelper {
	return &loggerHelper{
		fields: logrus.Fields{
			"function": function,
			"package":  "inet",
		},
	}
}

func (l *loggerHelper) WithField(key string, value interface{}) *loggerHelper {
	l.fields[key] = value
	return l
}

func (l *loggerHelper) WithFields(fields logrus.Fields) *loggerHelper {
	for k, v := range fields {
		l.fields[k] = v
	}
	return l
}

func (l *loggerHelper) WithError(err error) *loggerHelper {
	l.fields["error"] = err.Error()
	return l
}

func (l *loggerHelper) Debug(message string) {
	logrus.WithFields(l.fields).Debug(message)
}

func (l *loggerHelper) Warn(message string) {
	logrus.WithFields(l.fields).Warn(message)
}
