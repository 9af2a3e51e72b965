// Package log configures the application logger. Entries go to a size-rotated file in the logs directory.
package log

import (
	"errors"
	"io"
	"path/filepath"

	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/where"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	enabled bool
	logger  = logrus.New()
	discard = newDiscard()
)

func newDiscard() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetLevel(logrus.PanicLevel)
	return l
}

// Setup initializes the logger from the config.
// If logging is disabled, every entry is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(dir, constant.Kinometa+".log"),
		MaxSize:    viper.GetInt(key.LogsMaxSize),
		MaxBackups: viper.GetInt(key.LogsMaxBackups),
		MaxAge:     viper.GetInt(key.LogsMaxAge),
		Compress:   true,
	})

	if viper.GetBool(key.LogsJson) {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return nil
}

// Logger returns the application logger, or a logger that drops everything when logging is disabled.
func Logger() logrus.FieldLogger {
	if !enabled {
		return discard
	}
	return logger
}

func Error(args ...interface{}) {
	Logger().Error(args...)
}

func Errorf(format string, args ...interface{}) {
	Logger().Errorf(format, args...)
}

func Warn(args ...interface{}) {
	Logger().Warn(args...)
}

func Warnf(format string, args ...interface{}) {
	Logger().Warnf(format, args...)
}

func Info(args ...interface{}) {
	Logger().Info(args...)
}

func Infof(format string, args ...interface{}) {
	Logger().Infof(format, args...)
}

func Debugf(format string, args ...interface{}) {
	Logger().Debugf(format, args...)
}
