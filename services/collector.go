package services

import (
	"context"

	"airbnb-price-tracker/config"
	"airbnb-price-tracker/models"
	"airbnb-price-tracker/utils"
)

const titleMaxRunes = 50

// ProbeRequest identifies one pricing fetch: a listing, a stay window and
// the display parameters the marketplace prices it under.
type ProbeRequest struct {
	RoomID   string
	CheckIn  string
	CheckOut string
	Nights   int
	Adults   int
	Currency string
	Language string
}

// CalendarFetcher returns the raw availability calendar for a listing.
type CalendarFetcher interface {
	FetchCalendar(ctx context.Context, roomID string) (models.CalendarMonths, error)
}

// PricingFetcher returns the listing detail for one probe.
type PricingFetcher interface {
	FetchPricing(ctx context.Context, req ProbeRequest) (*models.ListingDetail, error)
}

// Collector runs the sequential probing loop: one listing at a time, one
// date at a time, pacing after every probe and every completed listing.
// Failures are contained at the granularity they occur at: a calendar
// failure skips the listing, a pricing failure yields a null-price row.
type Collector struct {
	cfg       *config.Config
	logger    *utils.Logger
	calendars CalendarFetcher
	pricing   PricingFetcher
	pacer     utils.Pacer
}

// NewCollector creates a Collector
func NewCollector(cfg *config.Config, logger *utils.Logger, calendars CalendarFetcher, pricing PricingFetcher, pacer utils.Pacer) *Collector {
	return &Collector{
		cfg:       cfg,
		logger:    logger,
		calendars: calendars,
		pricing:   pricing,
		pacer:     pacer,
	}
}

// Run probes every listing and returns the accumulated quotes. The only
// way out early is context cancellation; anything gathered so far is
// returned as-is.
func (c *Collector) Run(ctx context.Context, roomIDs []string) []models.PriceQuote {
	var quotes []models.PriceQuote

	for idx, roomID := range roomIDs {
		c.logger.Info("[%d/%d] Room %s", idx+1, len(roomIDs), roomID)

		listingQuotes, err := c.collectListing(ctx, roomID)
		quotes = append(quotes, listingQuotes...)
		if err != nil {
			if ctx.Err() != nil {
				c.logger.Warn("Run cancelled, returning %d quotes gathered so far", len(quotes))
				return quotes
			}
			c.logger.Error("Room %s failed: %v, skipping", roomID, err)
		}

		if err := c.pacer.AfterListing(ctx); err != nil {
			return quotes
		}
	}

	return quotes
}

func (c *Collector) collectListing(ctx context.Context, roomID string) ([]models.PriceQuote, error) {
	months, err := c.calendars.FetchCalendar(ctx, roomID)
	if err != nil {
		return nil, err
	}

	days := AvailableDays(months)
	c.logger.Info("Room %s: %d available days", roomID, len(days))

	if len(days) == 0 {
		return nil, nil
	}
	if capped := CapDays(days, c.cfg.MaxDays); len(capped) < len(days) {
		days = capped
		c.logger.Info("Room %s: limited to the first %d days", roomID, c.cfg.MaxDays)
	}

	var quotes []models.PriceQuote
	for i, day := range days {
		checkOut, err := CheckOutDate(day.Date, day.MinNights)
		if err != nil {
			c.logger.Warn("Room %s: %v, skipping day", roomID, err)
			continue
		}

		req := ProbeRequest{
			RoomID:   roomID,
			CheckIn:  day.Date,
			CheckOut: checkOut,
			Nights:   day.MinNights,
			Adults:   c.cfg.Adults,
			Currency: c.cfg.Currency,
			Language: c.cfg.Language,
		}

		c.logger.Info("  [%d/%d] %s → %s (%d night(s))", i+1, len(days), day.Date, checkOut, day.MinNights)

		detail, err := c.pricing.FetchPricing(ctx, req)
		if err != nil {
			if ctx.Err() != nil {
				return quotes, ctx.Err()
			}
			c.logger.Warn("  Room %s %s: pricing fetch failed: %v", roomID, day.Date, err)
			if c.cfg.IncludeFailedProbes {
				quotes = append(quotes, failedQuote(req))
			}
		} else {
			q := c.buildQuote(req, detail)
			if q.PriceFinal.Valid {
				c.logger.Info("  %s %s/night", q.PriceFinal, q.Currency)
			} else {
				c.logger.Warn("  No price recognized")
			}
			quotes = append(quotes, q)
		}

		if err := c.pacer.AfterProbe(ctx); err != nil {
			return quotes, err
		}
	}

	return quotes, nil
}

func (c *Collector) buildQuote(req ProbeRequest, detail *models.ListingDetail) models.PriceQuote {
	ex := ExtractRate(detail.Price)

	q := models.PriceQuote{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Nights:    req.Nights,
		Currency:  req.Currency,
		Title:     clip(detail.Title, titleMaxRunes),
		RoomType:  detail.RoomType,
		Available: true,
		Unit:      ex.Unit,
	}

	switch {
	case ex.PerNight.Amount.Valid:
		q.PriceOriginal = ex.PerNight.Amount
	case ex.Unit == models.RateUnitUnknown && ex.StayTotal.Amount.Valid:
		// Fallback figure of unknown scope: recorded, but tagged so the
		// matrix never treats it as a nightly rate.
		q.PriceOriginal = ex.StayTotal.Amount
	}
	q.PriceDiscounted = ex.DiscountedTotal.Amount
	q.DiscountAmount = ex.Discount.Amount
	q.PriceFinal = ex.Final.Amount

	return q
}

func failedQuote(req ProbeRequest) models.PriceQuote {
	return models.PriceQuote{
		RoomID:    req.RoomID,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Nights:    req.Nights,
		Currency:  req.Currency,
		Available: true,
		Failed:    true,
	}
}

func clip(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
