package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	var description string
	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a task to the top of the list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if _, err := app.Store.Add(cmd.Context(), args[0], description); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Task added successfully")
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	return cmd
}
