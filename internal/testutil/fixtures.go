package testutil

import (
	"github.com/shopspring/decimal"

	"autopredict-web/internal/core/domain"
)

// SampleOptions returns a small option snapshot.
func SampleOptions() *domain.FormOptions {
	return &domain.FormOptions{
		Brands:        domain.OptionList{"Toyota", "Hyundai", "Kia"},
		Years:         domain.OptionList{"2026", "2018", "2010"},
		Fuels:         domain.OptionList{"Gasolina", "Diésel"},
		Transmissions: domain.OptionList{"Automática", "Mecánica"},
		Locations:     domain.OptionList{"Lima", "Arequipa"},
		Subcategories: domain.OptionList{"Sedán", "SUV"},
	}
}

// ToyotaFields is a complete form selection.
func ToyotaFields() domain.FormFields {
	return domain.FormFields{
		Brand:        "Toyota",
		Year:         "2018",
		Fuel:         "Gasolina",
		Transmission: "Automática",
		Location:     "Lima",
		Subcategory:  "Sedán",
	}
}

// ToyotaRequest is ToyotaFields after validation.
func ToyotaRequest() domain.PredictionRequest {
	return domain.PredictionRequest{
		Brand:        "Toyota",
		Year:         2018,
		Fuel:         "Gasolina",
		Transmission: "Automática",
		Location:     "Lima",
		Subcategory:  "Sedán",
	}
}

// ToyotaResult is the backend answer for ToyotaRequest.
func ToyotaResult() *domain.PredictionResult {
	return &domain.PredictionResult{
		PredictedPrice: decimal.NewFromInt(12500),
		InputData:      ToyotaRequest(),
		Metrics: domain.ModelMetrics{
			TestR2:   0.44,
			TestMAE:  8951,
			TestRMSE: 12000,
		},
		SimilarCars: []domain.CarListing{
			{
				Brand: "Toyota", Year: 2017, Fuel: "Gasolina", Transmission: "Automática", Subcategory: "Sedán",
				Price: decimal.NewNullDecimal(decimal.NewFromInt(11900)),
				Image: "https://cde.neoauto.pe/autos/1.jpg", Link: "https://neoauto.com/auto/1",
			},
			{
				Brand: "Toyota", Year: 2019, Fuel: "Gasolina", Transmission: "Automática", Subcategory: "Sedán",
				Price: decimal.NewNullDecimal(decimal.NewFromFloat(14250.5)),
				Image: "https://cde.neoauto.pe/autos/2.jpg", Link: "https://neoauto.com/auto/2",
			},
			{
				Brand: "Toyota", Year: 2018, Fuel: "Gasolina", Transmission: "Automática", Subcategory: "Sedán",
			},
		},
	}
}
