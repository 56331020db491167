// Package cli implements the minutes command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mklimuk/minutes-pilot/pkg/config"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

type rootOptions struct {
	configPath string
}

// NewRootCmd builds the command tree. Each call gets its own configuration
// state.
func NewRootCmd() *cobra.Command {
	v := config.New()
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "minutes",
		Short: "Meeting minutes and task tracking",
		Long: `minutes records meetings and the tasks assigned in them, lets assignees
report progress, and keeps a markdown archive of the minutes.

Run "minutes serve" to start the HTTP API.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ./minutes.yaml)")
	root.PersistentFlags().String("db", "", "path to the SQLite database")
	_ = v.BindPFlag("db.path", root.PersistentFlags().Lookup("db"))

	root.AddCommand(
		newServeCmd(v, opts),
		newResetCmd(v, opts),
		newTasksCmd(v, opts),
		newDashboardCmd(v, opts),
		newArchiveCmd(v, opts),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "minutes %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
