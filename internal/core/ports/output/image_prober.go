package ports

import "context"

// ImageProbe is one image to check, identified by the card key it belongs to.
type ImageProbe struct {
	Key string
	URL string
}

// ImageProber reports which image URLs cannot be loaded.
type ImageProber interface {
	// Probe returns the keys whose image failed to load.
	Probe(ctx context.Context, images []ImageProbe) (map[string]bool, error)
}
