package cli

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mklimuk/minutes-pilot/pkg/minutes"
)

func newArchiveCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Inspect and back up the minutes archive",
	}
	cmd.AddCommand(newArchiveListCmd(v, opts), newArchiveBackupCmd(v, opts))
	return cmd
}

func newArchiveListCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List archived meeting notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(v, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if a.cfg.ArchiveDir == "" {
				return errors.New("archive.dir is not configured")
			}
			notes, err := minutes.NewArchive(a.cfg.ArchiveDir, nil).List()
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"Number", "Date", "Title", "Secretary", "Tasks"})
			for _, n := range notes {
				fm := n.Frontmatter
				t.AppendRow(table.Row{fm.MeetingNumber, fm.Date, fm.Title, fm.Secretary, len(fm.Tasks)})
			}
			t.Render()
			return nil
		},
	}
}

func newArchiveBackupCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Upload new and modified notes to Google Drive",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(v, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			b := a.backup(cmd.Context())
			if b == nil {
				return errors.New("drive backup is not configured")
			}
			report, err := b.RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d, updated %d, unchanged %d, failed %d\n",
				report.Uploaded, report.Updated, report.Unchanged, len(report.Failed))
			return nil
		},
	}
}
