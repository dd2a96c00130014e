package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func BootstrapLogger(debug bool) {
	Log = &logrus.Logger{
		Out:   os.Stdout,
		Hooks: make(logrus.LevelHooks),
		Formatter: &logrus.TextFormatter{
			DisableColors:   false,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
		Level:    logrus.InfoLevel,
		ExitFunc: os.Exit,
	}

	if debug {
		Log.SetLevel(logrus.DebugLevel)
		Log.SetReportCaller(true)
	}
}
