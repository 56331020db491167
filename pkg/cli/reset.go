package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newResetCmd(v *viper.Viper, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard stored data and restore the built-in sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(v, opts.configPath)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.store.Reset(); err != nil {
				return err
			}
			if err := a.store.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reset %s: %d contacts, %d meetings, %d tasks\n",
				a.cfg.DBPath, len(a.store.Contacts()), len(a.store.Meetings()), len(a.store.Tasks()))
			return nil
		},
	}
}
