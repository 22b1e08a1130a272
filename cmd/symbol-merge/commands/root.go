// Package commands implements the CLI commands for symbol-merge.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/Debian/apt/internal/app"
	"github.com/Debian/apt/internal/build"
	"github.com/Debian/apt/internal/core/domain"
	"github.com/Debian/apt/internal/core/ports"
	"github.com/Debian/apt/internal/engine/merger"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for symbol-merge.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	configPath string
	jsonLogs   bool
}

// Application represents the application logic interface.
type Application interface {
	Merge(ctx context.Context, dists []string, opts app.MergeOptions) (*merger.Result, error)
	Archs(ctx context.Context, dist string, opts app.Options) (domain.ArchSet, error)
}

// jsonSwitcher is implemented by loggers that support structured output.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "symbol-merge",
		Short:         "Merge the ABI symbols of released library packages into a symbols file",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to "+domain.ConfigFileName)
	rootCmd.PersistentFlags().BoolVar(&c.jsonLogs, "json-logs", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if s, ok := c.logger.(jsonSwitcher); ok && c.jsonLogs {
			s.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newMergeCmd())
	rootCmd.AddCommand(c.newArchsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
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

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) options() app.Options {
	return app.Options{ConfigPath: c.configPath}
}
