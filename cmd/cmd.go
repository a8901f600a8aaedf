/*package cmd contains code for running rindex in its various command line
modes.

Global settings are read, in increasing order of precedence, from a config
file given by --config, from RINDEX_-prefixed environment variables and from
command line flags.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phil-mansfield/rindex/logging"
	"github.com/phil-mansfield/rindex/material"
)

// app holds the state shared by every mode of a single invocation.
type app struct {
	v *viper.Viper
	cfgFile string
	stdout, stderr io.Writer
	log *slog.Logger
}

// NewRootCommand returns the rindex command tree writing to the given
// streams. Settings are held in a private viper instance.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use: "rindex",
		Short: "rindex computes complex refractive indices n + ik of optical materials",
		SilenceErrors: true,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (yaml, toml or json)")
	flags.String("log-level", "nil", "logging level: nil, performance or debug")
	flags.Bool("no-color", false, "disable colored log and error output")
	_ = a.v.BindPFlag("log-level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("no-color", flags.Lookup("no-color"))

	a.v.SetDefault("interp", "notaknot")
	a.v.SetEnvPrefix("RINDEX")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.evalCommand(),
		a.formulasCommand(),
		a.exampleCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *app) loadConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}

	mode, err := logging.ParseFlag(a.v.GetString("log-level"))
	if err != nil { return err }
	logging.Mode = mode
	noColor := a.v.GetBool("no-color")
	if noColor { color.NoColor = true }
	a.log = logging.New(a.stderr, mode, noColor)

	if a.v.ConfigFileUsed() != "" {
		a.log.Debug("config loaded", "file", a.v.ConfigFileUsed())
	}
	return nil
}

// writeLines writes the lines returned by a mode to stdout.
func (a *app) writeLines(lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(a.stdout, line); err != nil { return err }
	}
	return nil
}

// Execute runs the command line with os.Args and exits with status 1 if the
// mode fails.
func Execute() {
	root := NewRootCommand(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	rangeColor = color.New(color.FgRed, color.Bold)
	configColor = color.New(color.FgYellow, color.Bold)
	errorColor = color.New(color.FgRed)
)

// ReportError writes err to w, labelled by its kind. Callers should use a
// different wavelength after a range error; configuration errors need a
// different material file.
func ReportError(w io.Writer, err error) {
	var (
		rerr *material.RangeError
		cerr *material.ConfigurationError
	)

	switch {
	case errors.As(err, &rerr):
		rangeColor.Fprint(w, "range error: ")
	case errors.As(err, &cerr):
		configColor.Fprint(w, "configuration error: ")
	default:
		errorColor.Fprint(w, "error: ")
	}
	fmt.Fprintln(w, err.Error())
}
