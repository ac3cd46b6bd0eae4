package utils

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out outgoing work to stay under the marketplace's informal
// rate limits.
type Pacer interface {
	AfterProbe(ctx context.Context) error
	AfterListing(ctx context.Context) error
}

// FixedPacer enforces a fixed minimum gap after every pricing probe and
// after every completed listing. Each gap is a single-token bucket, so
// swapping in a burstier policy is a constructor change, not a loop change.
type FixedPacer struct {
	probes   *rate.Limiter
	listings *rate.Limiter
}

// NewFixedPacer creates a FixedPacer from the two configured delays.
func NewFixedPacer(probeDelay, listingDelay time.Duration) *FixedPacer {
	return &FixedPacer{
		probes:   rate.NewLimiter(rate.Every(probeDelay), 1),
		listings: rate.NewLimiter(rate.Every(listingDelay), 1),
	}
}

func (p *FixedPacer) AfterProbe(ctx context.Context) error {
	return p.probes.Wait(ctx)
}

func (p *FixedPacer) AfterListing(ctx context.Context) error {
	return p.listings.Wait(ctx)
}

// NopPacer waits for nothing. Used in tests.
type NopPacer struct{}

func (NopPacer) AfterProbe(context.Context) error   { return nil }
func (NopPacer) AfterListing(context.Context) error { return nil }
