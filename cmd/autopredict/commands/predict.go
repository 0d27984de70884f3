package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"autopredict-web/internal/core/domain"
	"autopredict-web/internal/core/services"
)

func newPredictCmd(opts *rootOptions) *cobra.Command {
	var fields domain.FormFields

	cmd := &cobra.Command{
		Use:   "predict --brand <b> --year <y> --fuel <f> --transmission <t> --location <l> --subcategory <s>",
		Short: "Estimates the price of a used car and lists similar listings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := fields.Validate()
			if err != nil {
				return err
			}

			result, err := opts.client().SubmitPrediction(cmd.Context(), req)
			if err != nil {
				return err
			}
			log.WithField("brand", req.Brand).Debug("prediction received")

			view := services.NewResultsService(nil, nil).Build(result)
			out := cmd.OutOrStdout()

			summary := newTable(out)
			summary.AppendHeader(table.Row{"Precio Estimado", "Precisión (R²)", "Margen de Error"})
			summary.AppendRow(table.Row{view.PriceText, view.PrecisionText, view.MarginText})
			summary.Render()

			details := newTable(out)
			for _, d := range view.Details {
				details.AppendRow(table.Row{d.Label, d.Value})
			}
			for _, m := range view.Metrics {
				details.AppendRow(table.Row{m.Label, m.Value})
			}
			details.Render()

			if len(view.Cards) > 0 {
				similar := newTable(out)
				similar.AppendHeader(table.Row{"Auto", "Combustible", "Transmisión", "Tipo", "Precio", "Link"})
				for _, c := range view.Cards {
					similar.AppendRow(table.Row{c.Title, c.Fuel, c.Transmission, c.Subcategory, c.PriceText, c.Link})
				}
				similar.Render()
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&fields.Brand, domain.FieldBrand, "", "Vehicle brand.")
	flags.StringVar(&fields.Year, domain.FieldYear, "", "Manufacturing year.")
	flags.StringVar(&fields.Fuel, domain.FieldFuel, "", "Fuel type.")
	flags.StringVar(&fields.Transmission, domain.FieldTransmission, "", "Transmission.")
	flags.StringVar(&fields.Location, domain.FieldLocation, "", "Location.")
	flags.StringVar(&fields.Subcategory, domain.FieldSubcategory, "", "Vehicle type.")
	return cmd
}
