package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mklimuk/minutes-pilot/pkg/derive"
	"github.com/mklimuk/minutes-pilot/pkg/model"
)

func newTasksCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	var (
		filter string
		sortBy string
		desc   bool
	)
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List every task with its meeting and assignee",
		RunE: func(cmd *cobra.Command, args []string) error {
			var key derive.SortKey
			if sortBy != "" {
				k, err := derive.ParseSortKey(sortBy)
				if err != nil {
					return err
				}
				key = k
			}

			a, err := openApp(v, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			views := derive.Filter(derive.Enrich(a.store.Snapshot()), filter)
			if key != "" {
				dir := derive.Ascending
				if desc {
					dir = derive.Descending
				}
				views = derive.Sort(views, key, dir)
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleRounded)
			t.AppendHeader(table.Row{"ID", "Meeting", "Description", "Assignee", "Due", "Status", "Claimed"})
			for _, tv := range views {
				t.AppendRow(table.Row{
					tv.ID,
					tv.MeetingNumber,
					tv.Description,
					tv.AssigneeName,
					tv.DueDate,
					colorStatus(tv.Status),
					colorStatus(tv.ClaimedStatus),
				})
			}
			t.AppendFooter(table.Row{"", "", "", "", "", "Total", len(views)})
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "show tasks matching this text")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "", "sort key, e.g. dueDate or assigneeName")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	return cmd
}

func colorStatus(s model.TaskStatus) string {
	switch s {
	case model.StatusNotDone:
		return text.FgHiRed.Sprint(s)
	case model.StatusInProgress:
		return text.FgHiYellow.Sprint(s)
	case model.StatusWaiting:
		return text.FgHiBlue.Sprint(s)
	case model.StatusSuspended:
		return text.FgHiMagenta.Sprint(s)
	case model.StatusDone:
		return text.FgHiGreen.Sprint(s)
	}
	return string(s)
}
