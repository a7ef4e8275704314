package logger

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Init podešava nivo i format strukturiranog loggera.
func Init(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	// JSON format za production, tekst za development.
	Log.SetFormatter(&logrus.JSONFormatter{})
}

// SetTextFormatter postavlja tekstualni format logova (za development).
func SetTextFormatter() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}
