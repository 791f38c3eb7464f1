// Package conf is a helper for snapcheck configuration for both the
// command line interface and environment variables.
// It gives the ability to register options which will be fetched from
// CLI input OR an environment variable (for instance flag "metadata_db"
// is read from <SNAPCHECK_METADATA_DB> when not given on the command line).
// By default it registers the following option:
// <SNAPCHECK_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// When `ParseEnv` is executed, only the environment arguments are parsed
// and ready to be used in flag variables. It can be run multiple times.
//
// When `ParseFlags` is executed, arguments from both CLI and Env are
// parsed, including positional arguments.
package conf

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("snapcheck", "No help available")

	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level for snapcheck: debug, info, warn, error, fatal, panic",
		"error",
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets the application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns the specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns the configured log level from the input option or
// environment variable. If it cannot parse the configured level, it
// falls back to the default value.
func LogLevel() logrus.Level {
	level, err := logrus.ParseLevel(logLevelFlag.Value())
	if err == nil {
		return level
	}

	level, err = logrus.ParseLevel(logLevelFlag.defaultValue)
	if err == nil {
		return level
	}

	// Programmer error.
	panic(errors.Wrap(err, "parsing log level failed"))
}

// ParseFlags parses both the command line arguments of the process and
// environment variables.
func ParseFlags() error {
	_, err := app.Parse(os.Args[1:])
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse command line flags")
}

// ParseEnv parses the environment for arguments.
func ParseEnv() error {
	_, err := app.Parse([]string{})
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrap(err, "could not parse environment flags")
}
