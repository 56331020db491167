package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mklimuk/minutes-pilot/pkg/derive"
	"github.com/mklimuk/minutes-pilot/pkg/model"
)

func newDashboardCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	var (
		month   string
		meeting string
		as      string
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print dashboard figures",
		Long: `Print meeting and task totals with per-status and per-assignee counts.
With --as, figures are scoped the way that user sees them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(v, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			snap := a.store.Snapshot()
			user := model.Contact{Role: model.RoleAdmin}
			if as != "" {
				u, ok := findByEmail(snap.Contacts, as)
				if !ok {
					return fmt.Errorf("no contact with e-mail %s", as)
				}
				user = u
			}

			stats := derive.Dashboard(snap, user, derive.DashboardFilter{Month: month, MeetingNumber: meeting}, a.today())
			out := cmd.OutOrStdout()

			summary := table.NewWriter()
			summary.SetOutputMirror(out)
			summary.SetStyle(table.StyleRounded)
			summary.AppendRows([]table.Row{
				{"Meetings", stats.TotalMeetings},
				{"Tasks", stats.TotalTasks},
				{"Overdue", stats.OverdueTasks},
			})
			summary.Render()

			renderCounts(out, "Status", stats.ByStatus)
			renderCounts(out, "Assignee", stats.ByAssignee)

			if months := derive.AvailableMonths(snap.Meetings); len(months) > 0 {
				fmt.Fprintf(out, "Months: %s\n", strings.Join(months, ", "))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "limit to a month, YYYY/MM")
	cmd.Flags().StringVar(&meeting, "meeting", "", "limit to a meeting number")
	cmd.Flags().StringVar(&as, "as", "", "organizational e-mail of the user to scope figures to")
	return cmd
}

func renderCounts(out io.Writer, title string, counts []derive.Count) {
	if len(counts) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{title, "Tasks"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Name, c.Value})
	}
	t.Render()
}

func findByEmail(contacts []model.Contact, email string) (model.Contact, bool) {
	for _, c := range contacts {
		if strings.EqualFold(c.OrgEmail, email) {
			return c, true
		}
	}
	return model.Contact{}, false
}
