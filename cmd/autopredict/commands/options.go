package commands

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"autopredict-web/internal/core/domain"
)

func newOptionsCmd(opts *rootOptions) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "options [--field <name>]",
		Short: "Prints the values accepted by each prediction field.",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := domain.FieldNames
			if field != "" {
				if !isField(field) {
					return fmt.Errorf("unknown field %q, expected one of %s", field, strings.Join(domain.FieldNames, ", "))
				}
				names = []string{field}
			}

			options, err := opts.client().FetchFormOptions(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Field", "Count", "Values"})
			for _, name := range names {
				values := options.Field(name)
				t.AppendRow(table.Row{name, len(values), strings.Join(values, ", ")})
			}
			t.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&field, "field", "", "Only print the values of this field.")
	return cmd
}

func isField(name string) bool {
	for _, f := range domain.FieldNames {
		if f == name {
			return true
		}
	}
	return false
}
