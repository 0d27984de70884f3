package predictorapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"autopredict-web/internal/config"
	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
	"autopredict-web/internal/requestid"
)

const (
	optionsPath = "/predictor/api/options/"
	predictPath = "/predictor/api/predict/"
	statsPath   = "/predictor/api/stats/"

	maxErrorBody = 512
)

type predictorClient struct {
	http *resty.Client
}

// NewPredictorClient creates a client for the prediction backend rooted at cfg.URL.
func NewPredictorClient(cfg *config.PredictorConfig) ports.PredictorAPI {
	client := resty.New()
	client.SetBaseURL(cfg.URL)
	client.SetHeader("Accept", "application/json")

	return &predictorClient{http: client}
}

func (c *predictorClient) FetchFormOptions(ctx context.Context) (*domain.FormOptions, error) {
	var opts domain.FormOptions
	if err := c.call(ctx, "fetch form options", http.MethodGet, optionsPath, nil, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}

func (c *predictorClient) SubmitPrediction(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	var result domain.PredictionResult
	if err := c.call(ctx, "submit prediction", http.MethodPost, predictPath, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *predictorClient) FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.call(ctx, "fetch dashboard stats", http.MethodGet, statsPath, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *predictorClient) call(ctx context.Context, op, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)

	reqID := requestid.FromContext(ctx)
	if reqID != "" {
		req.SetHeader(requestid.Header, reqID)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	log.WithFields(log.Fields{
		"method":     method,
		"path":       path,
		"request_id": reqID,
	}).Debug("calling predictor api")

	resp, err := req.Execute(method, path)
	if err != nil {
		return &domain.NetworkError{Op: op, Err: err}
	}

	if !resp.IsSuccess() {
		return &domain.ServerError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Body:       snippet(resp.Body()),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &domain.ServerError{
			Op:         op,
			StatusCode: resp.StatusCode(),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	return nil
}

func snippet(body []byte) string {
	if len(body) > maxErrorBody {
		cut := maxErrorBody
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}
	return strings.TrimSpace(string(body))
}
