package airbnb

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"airbnb-price-tracker/config"
	"airbnb-price-tracker/utils"
)

// The public API key is embedded in the homepage's bootstrap config.
var apiKeyRegex = regexp.MustCompile(`"api_config":\{[^{}]*?"key":"([^"]+)"`)

// AcquireAPIKey loads the marketplace homepage in a headless browser and
// pulls the embedded API key out of the bootstrap scripts. Done once per
// run; without the key no calendar call is possible, so the caller treats
// failure as fatal.
func AcquireAPIKey(parent context.Context, cfg *config.Config, logger *utils.Logger) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"), // suppress Chrome logs
		chromedp.UserAgent(userAgent),
		chromedp.WindowSize(1280, 900),
	)
	if cfg.ProxyURL != "" {
		opts = append(opts, chromedp.ProxyServer(cfg.ProxyURL))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancelCtx()

	ctx, cancelTimeout := context.WithTimeout(ctx, 2*time.Minute)
	defer cancelTimeout()

	logger.Info("Loading %s for API key...", cfg.AirbnbURL)

	var html string
	err := chromedp.Run(ctx,
		chromedp.Navigate(cfg.AirbnbURL),
		chromedp.Sleep(5*time.Second), // give JS time to render
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("homepage navigation failed: %w", err)
	}

	key, err := extractAPIKey(html)
	if err != nil {
		return "", err
	}
	logger.Info("API key acquired")
	return key, nil
}

// extractAPIKey scans the page's script tags for the bootstrap config.
func extractAPIKey(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing homepage HTML: %w", err)
	}

	var key string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := apiKeyRegex.FindStringSubmatch(s.Text()); m != nil {
			key = m[1]
			return false
		}
		return true
	})

	// Some variants inline the config outside a dedicated script tag.
	if key == "" {
		if m := apiKeyRegex.FindStringSubmatch(html); m != nil {
			key = m[1]
		}
	}

	if key == "" {
		return "", fmt.Errorf("no api_config key found in homepage")
	}
	return key, nil
}
