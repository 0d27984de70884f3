package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
)

const noPriceText = "Sin precio"

// MetricCard is one model metric on the results page.
type MetricCard struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// DetailRow echoes one submitted field.
type DetailRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CarCard is one similar listing. Key is derived from the listing itself so
// per-card state survives reordering.
type CarCard struct {
	Key             string `json:"key"`
	Title           string `json:"title"`
	Fuel            string `json:"fuel"`
	Transmission    string `json:"transmission"`
	Subcategory     string `json:"subcategory"`
	PriceText       string `json:"price"`
	ImageURL        string `json:"image_url,omitempty"`
	Link            string `json:"link,omitempty"`
	ShowPlaceholder bool   `json:"show_placeholder"`
}

// ResultsView is the render-ready results page. Empty is set when no
// prediction was carried to the page.
type ResultsView struct {
	Empty         bool         `json:"empty"`
	PriceText     string       `json:"price,omitempty"`
	PrecisionText string       `json:"precision,omitempty"`
	MarginText    string       `json:"margin,omitempty"`
	Metrics       []MetricCard `json:"metrics,omitempty"`
	Details       []DetailRow  `json:"details,omitempty"`
	Cards         []CarCard    `json:"similar_cars,omitempty"`
}

// MarkImageFailed switches the card with key to the placeholder. Other cards
// are untouched. It reports whether a card matched.
func (v *ResultsView) MarkImageFailed(key string) bool {
	for i := range v.Cards {
		if v.Cards[i].Key == key {
			v.Cards[i].ShowPlaceholder = true
			return true
		}
	}
	return false
}

// ResultsService turns a carried prediction into the results page.
type ResultsService struct {
	carrier ports.ResultCarrier
	prober  ports.ImageProber
}

// NewResultsService creates a new results service. prober may be nil.
func NewResultsService(carrier ports.ResultCarrier, prober ports.ImageProber) *ResultsService {
	return &ResultsService{
		carrier: carrier,
		prober:  prober,
	}
}

// Consume takes the result for handoffID from the carrier and builds the view.
// Unknown, malformed, expired or already consumed ids yield the empty view.
func (s *ResultsService) Consume(ctx context.Context, handoffID string) *ResultsView {
	id, err := uuid.Parse(handoffID)
	if err != nil {
		return s.Build(nil)
	}
	result, ok := s.carrier.Take(ctx, id)
	if !ok {
		return s.Build(nil)
	}

	view := s.Build(result)
	s.ProbeImages(ctx, view)
	return view
}

// Build derives the results view. A nil result gives the empty state.
func (s *ResultsService) Build(result *domain.PredictionResult) *ResultsView {
	if result == nil {
		return &ResultsView{Empty: true}
	}

	m := result.Metrics
	in := result.InputData

	view := &ResultsView{
		PriceText:     formatUSD(result.PredictedPrice),
		PrecisionText: formatPercent(m.TestR2, 1),
		MarginText:    "±" + formatUSDFloat(m.TestMAE),
		Metrics: []MetricCard{
			{Label: "R² Score", Value: formatRatio(m.TestR2, 4), Description: "Coeficiente de determinación"},
			{Label: "MAE", Value: formatUSDFloat(m.TestMAE), Description: "Error Promedio"},
			{Label: "RMSE", Value: formatUSDFloat(m.TestRMSE), Description: "Error Cuadrático Medio"},
		},
		Details: []DetailRow{
			{Label: "Marca", Value: in.Brand},
			{Label: "Año", Value: strconv.Itoa(in.Year)},
			{Label: "Combustible", Value: in.Fuel},
			{Label: "Transmisión", Value: in.Transmission},
			{Label: "Ubicación", Value: in.Location},
			{Label: "Tipo", Value: in.Subcategory},
		},
	}

	seen := make(map[string]int, len(result.SimilarCars))
	for _, car := range result.SimilarCars {
		key := listingKey(car)
		seen[key]++
		if n := seen[key]; n > 1 {
			key = fmt.Sprintf("%s-%d", key, n)
		}
		view.Cards = append(view.Cards, CarCard{
			Key:             key,
			Title:           fmt.Sprintf("%s %d", car.Brand, car.Year),
			Fuel:            car.Fuel,
			Transmission:    car.Transmission,
			Subcategory:     car.Subcategory,
			PriceText:       priceText(car.Price),
			ImageURL:        car.Image,
			Link:            car.Link,
			ShowPlaceholder: car.Image == "",
		})
	}

	return view
}

// ProbeImages checks card images up front and falls back per card. It is a
// no-op without a prober.
func (s *ResultsService) ProbeImages(ctx context.Context, view *ResultsView) {
	if s.prober == nil || view == nil || len(view.Cards) == 0 {
		return
	}

	var images []ports.ImageProbe
	for _, c := range view.Cards {
		if !c.ShowPlaceholder {
			images = append(images, ports.ImageProbe{Key: c.Key, URL: c.ImageURL})
		}
	}

	failed, err := s.prober.Probe(ctx, images)
	if err != nil {
		log.WithError(err).Warn("image probe interrupted")
	}
	for key := range failed {
		view.MarkImageFailed(key)
	}
}

// listingKey identifies a similar listing by its link, then its image, then
// its content.
func listingKey(car domain.CarListing) string {
	src := car.Link
	if src == "" {
		src = car.Image
	}
	if src == "" {
		src = fmt.Sprintf("%s|%d|%s|%s|%s|%s",
			car.Brand, car.Year, car.Fuel, car.Transmission, car.Subcategory, car.Price.Decimal.String())
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(src)).String()
}

func priceText(p decimal.NullDecimal) string {
	if !p.Valid {
		return noPriceText
	}
	return formatUSD(p.Decimal)
}
