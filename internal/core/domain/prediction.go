package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Form field names, in display order.
const (
	FieldBrand        = "brand"
	FieldYear         = "year"
	FieldFuel         = "fuel"
	FieldTransmission = "transmission"
	FieldLocation     = "location"
	FieldSubcategory  = "subcategory"
)

var FieldNames = []string{
	FieldBrand,
	FieldYear,
	FieldFuel,
	FieldTransmission,
	FieldLocation,
	FieldSubcategory,
}

// FormFields holds the raw selections of the prediction form.
type FormFields struct {
	Brand        string `json:"brand" form:"brand"`
	Year         string `json:"year" form:"year"`
	Fuel         string `json:"fuel" form:"fuel"`
	Transmission string `json:"transmission" form:"transmission"`
	Location     string `json:"location" form:"location"`
	Subcategory  string `json:"subcategory" form:"subcategory"`
}

// Get returns the value of a field by name.
func (f FormFields) Get(name string) string {
	switch name {
	case FieldBrand:
		return f.Brand
	case FieldYear:
		return f.Year
	case FieldFuel:
		return f.Fuel
	case FieldTransmission:
		return f.Transmission
	case FieldLocation:
		return f.Location
	case FieldSubcategory:
		return f.Subcategory
	}
	return ""
}

// Set assigns a field by name. Fields are independent of each other.
func (f *FormFields) Set(name, value string) {
	switch name {
	case FieldBrand:
		f.Brand = value
	case FieldYear:
		f.Year = value
	case FieldFuel:
		f.Fuel = value
	case FieldTransmission:
		f.Transmission = value
	case FieldLocation:
		f.Location = value
	case FieldSubcategory:
		f.Subcategory = value
	}
}

// Validate builds a PredictionRequest, or returns a *ValidationError naming every
// empty field and a year that does not parse to an integer.
func (f FormFields) Validate() (PredictionRequest, error) {
	verr := &ValidationError{}
	for _, name := range FieldNames {
		if strings.TrimSpace(f.Get(name)) == "" {
			verr.Missing = append(verr.Missing, name)
		}
	}

	var year int
	if y := strings.TrimSpace(f.Year); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			verr.Invalid = append(verr.Invalid, FieldYear)
		}
		year = parsed
	}

	if len(verr.Missing) > 0 || len(verr.Invalid) > 0 {
		return PredictionRequest{}, verr
	}

	return PredictionRequest{
		Brand:        strings.TrimSpace(f.Brand),
		Year:         year,
		Fuel:         strings.TrimSpace(f.Fuel),
		Transmission: strings.TrimSpace(f.Transmission),
		Location:     strings.TrimSpace(f.Location),
		Subcategory:  strings.TrimSpace(f.Subcategory),
	}, nil
}

// PredictionRequest is the body of a predict call.
type PredictionRequest struct {
	Brand        string `json:"brand"`
	Year         int    `json:"year"`
	Fuel         string `json:"fuel"`
	Transmission string `json:"transmission"`
	Location     string `json:"location"`
	Subcategory  string `json:"subcategory"`
}

// ModelMetrics are the held-out scores of the model that produced a prediction.
type ModelMetrics struct {
	TestR2   float64 `json:"test_r2"`
	TestMAE  float64 `json:"test_mae"`
	TestRMSE float64 `json:"test_rmse"`
}

// PredictionResult is the backend answer to one submission. It lives only in
// the result carrier and is never persisted.
type PredictionResult struct {
	PredictedPrice decimal.Decimal   `json:"predicted_price"`
	InputData      PredictionRequest `json:"input_data"`
	Metrics        ModelMetrics      `json:"metrics"`
	SimilarCars    []CarListing      `json:"similar_cars"`
}
