// Command inspect dumps raw marketplace payloads for one listing: the
// calendar's month blocks and, for a chosen stay window, every price-like
// field buried in the listing page state. Exploration only; the
// production extraction path never does generic payload searches.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"airbnb-price-tracker/config"
	"airbnb-price-tracker/scraper/airbnb"
	"airbnb-price-tracker/services"
	"airbnb-price-tracker/utils"
)

const (
	searchMaxDepth     = 6
	searchMaxListItems = 5
	valuePreviewLen    = 100
)

var priceWords = []string{"price", "cost", "fee", "rate", "total", "amount"}

func main() {
	roomID := flag.String("room", "", "Listing identifier to inspect (required)")
	checkIn := flag.String("check-in", "", "Check-in date (ISO); defaults to the first available day")
	checkOut := flag.String("check-out", "", "Check-out date (ISO); defaults to check-in + min nights")
	flag.Parse()

	logger := utils.NewLogger()
	cfg := config.Load()

	if *roomID == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect -room <id> [-check-in YYYY-MM-DD -check-out YYYY-MM-DD]")
		os.Exit(2)
	}

	ctx := context.Background()

	apiKey, err := airbnb.AcquireAPIKey(ctx, cfg, logger)
	if err != nil {
		logger.Error("API key acquisition failed: %v", err)
		os.Exit(1)
	}
	client, err := airbnb.NewClient(cfg, logger, apiKey)
	if err != nil {
		logger.Error("Client setup failed: %v", err)
		os.Exit(1)
	}

	// ---- Calendar structure ----
	months, err := client.FetchCalendar(ctx, *roomID)
	if err != nil {
		logger.Error("Calendar fetch failed: %v", err)
		os.Exit(1)
	}

	fmt.Printf("\nCalendar: %d month blocks\n", len(months))
	fmt.Printf("%-8s %-6s %-8s %-10s\n", "MONTH", "YEAR", "DAYS", "AVAILABLE")
	for _, m := range months {
		available := 0
		for _, d := range m.Days {
			if d.Available {
				available++
			}
		}
		fmt.Printf("%-8d %-6d %-8d %-10d\n", m.Month, m.Year, len(m.Days), available)
	}

	// ---- Pick a stay window ----
	in, out := *checkIn, *checkOut
	if in == "" {
		days := services.AvailableDays(months)
		if len(days) == 0 {
			logger.Warn("No available days, skipping pricing dump")
			return
		}
		in = days[0].Date
		out, err = services.CheckOutDate(in, days[0].MinNights)
		if err != nil {
			logger.Error("Bad calendar date %q: %v", in, err)
			os.Exit(1)
		}
		logger.Info("Using first available day: %s → %s", in, out)
	} else if out == "" {
		out, err = services.CheckOutDate(in, 1)
		if err != nil {
			logger.Error("Bad check-in date %q: %v", in, err)
			os.Exit(1)
		}
	}

	req := services.ProbeRequest{
		RoomID:   *roomID,
		CheckIn:  in,
		CheckOut: out,
		Adults:   cfg.Adults,
		Currency: cfg.Currency,
		Language: cfg.Language,
	}

	// ---- Price-like fields in the raw page state ----
	state, err := client.FetchPricingState(ctx, req)
	if err != nil {
		logger.Error("Pricing fetch failed: %v", err)
		os.Exit(1)
	}

	var tree any
	if err := json.Unmarshal(state, &tree); err != nil {
		logger.Error("Page state is not JSON: %v", err)
		os.Exit(1)
	}

	found := make(map[string]string)
	findPriceKeys(tree, "", 0, found)

	fmt.Printf("\n%d price-like fields in the page state:\n", len(found))
	keys := make([]string, 0, len(found))
	for k := range found {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s: %s\n", k, found[k])
	}

	// ---- What the production parser sees ----
	detail, err := client.FetchPricing(ctx, req)
	if err != nil {
		logger.Warn("Typed extraction failed: %v", err)
		return
	}
	fmt.Printf("\nTitle: %s\nRoom type: %s\n", detail.Title, detail.RoomType)
	fmt.Printf("Main: original=%q discounted=%q\n", detail.Price.Main.OriginalPrice, detail.Price.Main.DiscountedPrice)
	for _, line := range detail.Price.Lines {
		fmt.Printf("  %s = %s\n", line.Label, line.Value)
	}
}

// findPriceKeys walks the decoded payload collecting keys that look
// price-related. Depth and list fan-out are capped so an adversarially
// deep payload cannot blow the stack or the terminal.
func findPriceKeys(node any, prefix string, depth int, out map[string]string) {
	if depth > searchMaxDepth {
		return
	}
	switch v := node.(type) {
	case map[string]any:
		for key, child := range v {
			full := key
			if prefix != "" {
				full = prefix + "." + key
			}
			if isPriceKey(key) {
				out[full] = preview(child)
			}
			findPriceKeys(child, full, depth+1, out)
		}
	case []any:
		for i, child := range v {
			if i >= searchMaxListItems {
				break
			}
			findPriceKeys(child, fmt.Sprintf("%s[%d]", prefix, i), depth+1, out)
		}
	}
}

func isPriceKey(key string) bool {
	lower := strings.ToLower(key)
	for _, w := range priceWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func preview(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) > valuePreviewLen {
		return s[:valuePreviewLen] + "..."
	}
	return s
}
