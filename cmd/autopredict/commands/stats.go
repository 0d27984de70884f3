package commands

import (
	"errors"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"autopredict-web/internal/core/services"
)

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "stats [--limit <n>]",
		Short: "Prints the dashboard statistics and the most recent listings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			view := services.NewDashboardService(opts.client(), limit).Load(cmd.Context())
			if view.State == services.DashboardFailed {
				return errors.New(view.Error)
			}
			out := cmd.OutOrStdout()

			summary := newTable(out)
			row := table.Row{}
			header := table.Row{}
			for _, s := range view.Summary {
				header = append(header, s.Title)
				row = append(row, s.Value)
			}
			summary.AppendHeader(header)
			summary.AppendRow(row)
			summary.Render()

			metrics := newTable(out)
			metrics.AppendHeader(table.Row{"R² Score", "MAE", "RMSE"})
			metrics.AppendRow(table.Row{view.R2Text, view.MAEText, view.RMSEText})
			metrics.Render()

			gallery := newTable(out)
			gallery.AppendHeader(table.Row{"ID", "Marca", "Año", "Transmisión", "Precio", "Link"})
			for _, g := range view.Gallery {
				gallery.AppendRow(table.Row{g.Key, g.Brand, g.Year, g.Transmission, g.PriceText, g.DetailURL})
			}
			if view.GalleryEmpty {
				gallery.AppendRow(table.Row{"", "No hay autos disponibles para mostrar"})
			}
			gallery.Render()
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 12, "Maximum number of recent listings to print.")
	return cmd
}
