package domain

import "github.com/shopspring/decimal"

// CarListing is a scraped listing shown next to a prediction.
type CarListing struct {
	Brand        string              `json:"brand"`
	Year         int                 `json:"year"`
	Fuel         string              `json:"fuel"`
	Transmission string              `json:"transmission"`
	Subcategory  string              `json:"subcategory"`
	Price        decimal.NullDecimal `json:"price"`
	Image        string              `json:"image,omitempty"`
	Link         string              `json:"link,omitempty"`
}

// RecentCar is a listing from the dashboard gallery.
type RecentCar struct {
	ID           int64               `json:"id"`
	Brand        string              `json:"brand"`
	Year         int                 `json:"year"`
	Fuel         string              `json:"fuel"`
	Transmission string              `json:"transmission"`
	Price        decimal.NullDecimal `json:"price"`
	ImageURL     string              `json:"image_url,omitempty"`
	DetailURL    string              `json:"detail_url,omitempty"`
}

// DashboardStats aggregates the dataset and model metrics shown on the dashboard.
type DashboardStats struct {
	TotalCars        int64       `json:"total_cars"`
	ModelR2          float64     `json:"model_r2"`
	ModelMAE         float64     `json:"model_mae"`
	ModelRMSE        float64     `json:"model_rmse"`
	TotalPredictions int64       `json:"total_predictions"`
	RecentCars       []RecentCar `json:"recent_cars"`
}
