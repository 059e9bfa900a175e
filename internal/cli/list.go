package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/mytodo/internal/model"
	"github.com/sandeepkv93/mytodo/internal/query"
)

func newListCmd() *cobra.Command {
	var (
		tab    string
		search string
		page   int
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := query.ParseTab(tab)
			if err != nil {
				return err
			}
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			state := query.NewState()
			state.SelectTab(parsed)
			state.SetSearch(search)
			state.SetPage(page)
			res := query.Apply(app.Store.Tasks(), state.Params())

			out := cmd.OutOrStdout()
			if len(res.Items) == 0 {
				fmt.Fprintln(out, "No tasks")
			} else {
				fmt.Fprintln(out, renderTaskTable(res.Items))
			}
			fmt.Fprintf(out, "page %d/%d (%d matching)\n", state.Page, res.TotalPages, res.Matched)
			return nil
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(query.TabAll), "Tab: all, todo or completed")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")
	cmd.Flags().IntVar(&page, "page", 1, "Page number (4 tasks per page)")
	return cmd
}

func renderTaskTable(tasks []model.Task) string {
	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		var flags []string
		if t.Edited {
			flags = append(flags, "(Edited)")
		}
		if t.Completed {
			flags = append(flags, "(Completed)")
		}
		rows = append(rows, []string{check, t.Name, t.Description, t.Stamp.String(), strings.Join(flags, " ")})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("", "NAME", "DESCRIPTION", "CREATED", "").
		Rows(rows...).
		String()
}
