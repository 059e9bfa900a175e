package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandeepkv93/mytodo/internal/model"
)

func newDoneCmd() *cobra.Command {
	var undo bool
	cmd := &cobra.Command{
		Use:   "done [name]",
		Short: "Mark a task completed (or back to todo with --undo)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			name := args[0]
			task, ok := app.Store.Find(name)
			if !ok {
				return &model.NotFoundError{Key: name}
			}
			want := !undo
			if task.Completed == want {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is already %s\n", task.Name, completionLabel(want))
				return nil
			}
			if _, err := app.Store.ToggleComplete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s marked %s\n", task.Name, completionLabel(want))
			return nil
		},
	}
	cmd.Flags().BoolVar(&undo, "undo", false, "Move the task back to todo")
	return cmd
}

func completionLabel(completed bool) string {
	if completed {
		return "completed"
	}
	return "todo"
}
