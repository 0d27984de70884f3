package services

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
)

// DashboardState tags what the dashboard can show.
type DashboardState string

const (
	DashboardLoaded DashboardState = "loaded"
	DashboardFailed DashboardState = "failed"
)

const alertDashboardFailed = "No se pudieron cargar las estadísticas. Intenta nuevamente."

// StatCard is one of the summary metrics at the top of the dashboard.
type StatCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle"`
}

// GalleryCard is one recent listing.
type GalleryCard struct {
	Key          string `json:"key"`
	Brand        string `json:"brand"`
	Year         int    `json:"year"`
	Transmission string `json:"transmission"`
	PriceText    string `json:"price"`
	ImageURL     string `json:"image_url,omitempty"`
	DetailURL    string `json:"detail_url,omitempty"`
}

// DashboardView is the render-ready dashboard.
type DashboardView struct {
	State         DashboardState `json:"state"`
	Error         string         `json:"error,omitempty"`
	Summary       []StatCard     `json:"summary,omitempty"`
	R2Text        string         `json:"r2,omitempty"`
	MAEText       string         `json:"mae,omitempty"`
	RMSEText      string         `json:"rmse,omitempty"`
	TotalCarsText string         `json:"total_cars,omitempty"`
	Gallery       []GalleryCard  `json:"gallery"`
	GalleryEmpty  bool           `json:"gallery_empty"`
}

// DashboardService loads the dashboard once per visit
type DashboardService struct {
	api         ports.PredictorAPI
	recentLimit int
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(api ports.PredictorAPI, recentLimit int) *DashboardService {
	if recentLimit <= 0 {
		recentLimit = 12
	}
	return &DashboardService{
		api:         api,
		recentLimit: recentLimit,
	}
}

// Load fetches the stats once. A failure yields the failed state, never a
// zero-valued loaded view.
func (s *DashboardService) Load(ctx context.Context) *DashboardView {
	stats, err := s.api.FetchDashboardStats(ctx)
	if err != nil {
		log.WithError(err).Error("load dashboard stats failed")
		return &DashboardView{
			State:   DashboardFailed,
			Error:   alertDashboardFailed,
			Gallery: []GalleryCard{},
		}
	}
	return s.build(stats)
}

func (s *DashboardService) build(stats *domain.DashboardStats) *DashboardView {
	view := &DashboardView{
		State: DashboardLoaded,
		Summary: []StatCard{
			{Title: "Total Vehículos", Value: formatCount(stats.TotalCars), Subtitle: "en base de datos"},
			{Title: "Precisión Modelo", Value: formatPercent(stats.ModelR2, 0), Subtitle: "R² score"},
			{Title: "Error Promedio", Value: formatUSDFloat(stats.ModelMAE), Subtitle: "MAE"},
			{Title: "Predicciones", Value: formatCount(stats.TotalPredictions), Subtitle: "realizadas"},
		},
		R2Text:        formatRatio(stats.ModelR2, 4),
		MAEText:       formatUSDFloat(stats.ModelMAE),
		RMSEText:      formatUSDFloat(stats.ModelRMSE),
		TotalCarsText: formatCount(stats.TotalCars),
		Gallery:       []GalleryCard{},
	}

	recent := stats.RecentCars
	if len(recent) > s.recentLimit {
		recent = recent[:s.recentLimit]
	}
	for _, car := range recent {
		view.Gallery = append(view.Gallery, GalleryCard{
			Key:          strconv.FormatInt(car.ID, 10),
			Brand:        car.Brand,
			Year:         car.Year,
			Transmission: car.Transmission,
			PriceText:    priceText(car.Price),
			ImageURL:     car.ImageURL,
			DetailURL:    car.DetailURL,
		})
	}
	view.GalleryEmpty = len(view.Gallery) == 0

	return view
}
