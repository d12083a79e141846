// Package commands implements the CLI commands for the fresh build tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fresh/internal/app"
	"go.trai.ch/fresh/internal/build"
	"go.trai.ch/fresh/internal/core/domain"
)

// CLI represents the command line interface for fresh.
type CLI struct {
	app     Application
	rootCmd *cobra.Command

	configFile      string
	directories     []string
	verbose         bool
	traceTimestamps bool
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Watch(ctx context.Context, opts app.RunOptions) error
	SetLogLevel(level domain.LogLevel)
}

// Defaults are the flag values used when a flag is not given.
type Defaults struct {
	ConfigFile  string
	Directories []string
}

// New creates a new CLI instance with the given app.
func New(a Application, defaults Defaults) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fresh",
		Short:         "Rebuild only the files that are out of date",
		Long:          "fresh runs the tasks of a build file whose outputs are older than their inputs,\nbringing every final target of every project directory up to date.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// -v belongs to --verbose, so --version is registered without a shorthand.
	rootCmd.Flags().Bool("version", false, "Print the application version")
	rootCmd.InitDefaultVersionFlag()

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.configFile, "input", "i", defaults.ConfigFile, "Name of the build file in every project directory")
	flags.StringArrayVarP(&c.directories, "directory", "d", defaults.Directories, "Project directory to build (repeatable)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log skipped and up-to-date targets")
	flags.BoolVar(&c.traceTimestamps, "trace-timestamps", false, "Log the modification time of every declared path before and after building")

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.verbose {
			c.app.SetLogLevel(domain.LogLevelDebug)
		}
	}
	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return c.app.Run(cmd.Context(), c.runOptions())
	}

	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runOptions() app.RunOptions {
	return app.RunOptions{
		ConfigFile:      c.configFile,
		Directories:     c.directories,
		TraceTimestamps: c.traceTimestamps,
	}
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
