package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd() *cobra.Command {
	var (
		name        string
		description string
	)
	cmd := &cobra.Command{
		Use:   "edit [name]",
		Short: "Rename or redescribe a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("description") {
				return fmt.Errorf("nothing to change: pass --name and/or --description")
			}
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			current, err := app.Store.BeginEdit(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("name") {
				name = current.Name
			}
			if !cmd.Flags().Changed("description") {
				description = current.Description
			}
			if _, err := app.Store.EditByID(cmd.Context(), current.ID, name, description); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Edited successfully")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New task name")
	cmd.Flags().StringVar(&description, "description", "", "New task description")
	return cmd
}
