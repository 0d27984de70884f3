package dto

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"autopredict-web/internal/core/domain"
)

// ============================================================================
// Prediction DTOs
// ============================================================================

// FlexibleString accepts a JSON string or number, so "year": 2018 and
// "year": "2018" decode alike.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexibleString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*s = FlexibleString(n.String())
	}
	return nil
}

type CreatePredictionRequest struct {
	Token        string         `json:"token"`
	Brand        string         `json:"brand"`
	Year         FlexibleString `json:"year"`
	Fuel         string         `json:"fuel"`
	Transmission string         `json:"transmission"`
	Location     string         `json:"location"`
	Subcategory  string         `json:"subcategory"`
}

func (r CreatePredictionRequest) ToFormFields() domain.FormFields {
	return domain.FormFields{
		Brand:        r.Brand,
		Year:         string(r.Year),
		Fuel:         r.Fuel,
		Transmission: r.Transmission,
		Location:     r.Location,
		Subcategory:  r.Subcategory,
	}
}

type CreatePredictionResponse struct {
	HandoffID  uuid.UUID `json:"handoff_id"`
	ResultsURL string    `json:"results_url"`
}

func ToCreatePredictionResponse(id uuid.UUID) CreatePredictionResponse {
	return CreatePredictionResponse{
		HandoffID:  id,
		ResultsURL: "/api/v1/results/" + id.String(),
	}
}

// ErrorResponse is the body of every failed JSON request.
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}
