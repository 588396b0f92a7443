// conf is a helper for configuration coming from both command line interface
// and environment variables.
// It gives ability to register arguments which will be fetched from
// CLI input OR environment variable prefixed with COLLISIONS_.
// By default it registers following options:
// <COLLISIONS_LOG> --log <Log level: debug, info, warn, error, fatal, panic> Default: error
//
// `ParseEnv` parses only the environment and can be run multiple times.
// `ParseCommand` parses both CLI and environment. In case of --help option it prints help.

package conf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "COLLISIONS"

var (
	app = kingpin.New("collisions", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"log",
		"Log level: debug, info, warn, error, fatal, panic",
		"error", // Default Error log level.
	)
	isEnvParsed = false
)

// SetHelp sets the help message for the CLI.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// Command registers a subcommand of the application.
func Command(name, help string) *kingpin.CmdClause {
	return app.Command(name, help)
}

// LogLevel returns configured logLevel from input option or env variable.
// If it cannot parse the log level, it returns default value.
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

// ParseCommand parses given arguments together with environment and returns selected command.
func ParseCommand(args []string) (string, error) {
	command, err := app.Parse(args)
	if err != nil {
		return "", errors.Wrapf(err, "could not parse command line flags")
	}
	isEnvParsed = true
	return command, nil
}

// ParseEnv parse the environment for arguments.
func ParseEnv() error {
	if _, err := app.Parse([]string{}); err != nil {
		return errors.Wrapf(err, "could not parse environment flags")
	}
	isEnvParsed = true
	return nil
}

// Flag describes current state of a registered flag.
type Flag struct {
	Name, Value, Default, Help string
}

// GetFlags returns registered flags in registration order.
func GetFlags() []Flag {
	flags := []Flag{}
	for _, name := range flagOrder {
		flags = append(flags, definedFlags[name].describe())
	}
	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
// Includes "allexport" directives for bash.
func DumpConfig() string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export all values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, flag := range GetFlags() {
		fmt.Fprintf(buffer, "\n# %s\n", flag.Help)
		if flag.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", flag.Default)
		}
		fmt.Fprintf(buffer, "%s_%s=%v\n", envPrefix, strings.ToUpper(flag.Name), flag.Value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}
