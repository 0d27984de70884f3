package imageprobe

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"autopredict-web/internal/config"
	ports "autopredict-web/internal/core/ports/output"
)

type prober struct {
	http        *resty.Client
	concurrency int
}

// NewProber creates an image prober that checks listing images before render.
func NewProber(cfg *config.ImageProbeConfig) ports.ImageProber {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))

	return &prober{http: client, concurrency: concurrency}
}

func (p *prober) Probe(ctx context.Context, images []ports.ImageProbe) (map[string]bool, error) {
	failed := make(map[string]bool)
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(p.concurrency)

	for _, img := range images {
		if img.URL == "" {
			continue
		}
		g.Go(func() error {
			if p.loads(ctx, img.URL) {
				return nil
			}
			mu.Lock()
			failed[img.Key] = true
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return failed, err
	}
	return failed, ctx.Err()
}

// loads reports whether url answers 2xx with an image content type. Servers that
// reject HEAD get a single-byte ranged GET instead.
func (p *prober) loads(ctx context.Context, url string) bool {
	resp, err := p.http.R().SetContext(ctx).Head(url)
	if err == nil && resp.StatusCode() == http.StatusMethodNotAllowed {
		resp, err = p.http.R().
			SetContext(ctx).
			SetHeader("Range", "bytes=0-0").
			Get(url)
	}
	if err != nil {
		log.WithError(err).WithField("url", url).Debug("image probe failed")
		return false
	}
	if !resp.IsSuccess() {
		log.WithFields(log.Fields{
			"url":    url,
			"status": resp.StatusCode(),
		}).Debug("image probe rejected")
		return false
	}

	ct := resp.Header().Get("Content-Type")
	return ct == "" || strings.HasPrefix(ct, "image/")
}
