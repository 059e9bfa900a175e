package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sandeepkv93/mytodo/internal/model"
)

func newExportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print every task as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported export format %q (want json or yaml)", format)
			}
			app, err := initApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			tasks := app.Store.Tasks()
			if tasks == nil {
				tasks = []model.Task{}
			}
			var data []byte
			switch format {
			case "yaml":
				data, err = yaml.Marshal(tasks)
			default:
				data, err = json.MarshalIndent(tasks, "", "  ")
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "Output format: json or yaml")
	return cmd
}
