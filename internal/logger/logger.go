package logger

import (
	"time"

	"github.com/natefinch/lumberjack"
	logrus "github.com/sirupsen/logrus"
)

// Setup initializes Logrus with a rotating file sink. Store operations and
// the API adapter log through the standard logger.
func Setup() {
	rotator := &lumberjack.Logger{
		Filename:   "./logs/swiftship.log",
		MaxSize:    10, // megabytes
		MaxBackups: 7,  // keep up to 7 old files
		MaxAge:     7,  // days
		Compress:   true,
	}

	logrus.SetOutput(rotator)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.SetLevel(logrus.DebugLevel)
}

// L returns the standard Logrus logger for packages that want a handle
// instead of the package-level functions.
func L() *logrus.Logger {
	return logrus.StandardLogger()
}
