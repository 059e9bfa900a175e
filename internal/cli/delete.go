package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/mytodo/internal/model"
)

var errNeedsConfirmation = errors.New("refusing to delete without confirmation: pass --yes")

// Swapped out in tests.
var (
	isInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	confirmDelete = func(name string) (bool, error) {
		ok := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("Are You Sure You Want To Delete The Task %q?", name),
			Default: false,
		}
		if err := survey.AskOne(prompt, &ok); err != nil {
			return false, err
		}
		return ok, nil
	}
)

func newDeleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			name := args[0]
			if _, ok := app.Store.Find(name); !ok {
				return &model.NotFoundError{Key: name}
			}
			if !yes {
				if !isInteractive() {
					return errNeedsConfirmation
				}
				ok, err := confirmDelete(name)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Delete cancelled")
					return nil
				}
			}
			if _, err := app.Store.Delete(cmd.Context(), name); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted successfully")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}
