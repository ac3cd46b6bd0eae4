package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"airbnb-price-tracker/models"
)

// BuildRunSummary computes the end-of-run totals from the gathered quotes.
func BuildRunSummary(roomIDs []string, quotes []models.PriceQuote, outputFiles []string) *models.RunSummary {
	s := &models.RunSummary{
		ListingsRequested: len(roomIDs),
		RowsPerListing:    make(map[string]int),
		OutputFiles:       outputFiles,
	}

	probed := make(map[string]struct{})
	var priced []decimal.Decimal

	for _, q := range quotes {
		s.ProbesAttempted++
		probed[q.RoomID] = struct{}{}
		s.RowsPerListing[q.RoomID]++
		if q.Failed {
			s.ProbesFailed++
			continue
		}
		if q.PriceFinal.Valid && q.Unit == models.RatePerNight {
			s.PricedQuotes++
			priced = append(priced, q.PriceFinal.Value)
		}
	}
	s.ListingsProbed = len(probed)

	if len(priced) > 0 {
		min, max, sum := priced[0], priced[0], decimal.Zero
		for _, p := range priced {
			if p.LessThan(min) {
				min = p
			}
			if p.GreaterThan(max) {
				max = p
			}
			sum = sum.Add(p)
		}
		s.MinNightly = models.NewAmount(min)
		s.MaxNightly = models.NewAmount(max)
		s.AvgNightly = models.NewAmount(sum.DivRound(decimal.NewFromInt(int64(len(priced))), 2))
	}

	return s
}

// PrintRunSummary formats and prints the run summary to terminal
func PrintRunSummary(s *models.RunSummary, currency string) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("NIGHTLY PRICE SCRAPE SUMMARY", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Listings Requested    : %d\n", s.ListingsRequested)
	fmt.Printf("  Listings With Rows    : %d\n", s.ListingsProbed)
	fmt.Printf("  Probes Attempted      : %d\n", s.ProbesAttempted)
	fmt.Printf("  Probes Failed         : %d\n", s.ProbesFailed)
	fmt.Printf("  Priced Quotes         : %d\n", s.PricedQuotes)

	if s.PricedQuotes > 0 {
		fmt.Printf("\n NIGHTLY PRICE (%s)\n%s\n", currency, thin)
		fmt.Printf("  Minimum               : %s\n", s.MinNightly)
		fmt.Printf("  Average               : %s\n", s.AvgNightly)
		fmt.Printf("  Maximum               : %s\n", s.MaxNightly)
	}

	if len(s.RowsPerListing) > 0 {
		fmt.Printf("\n ROWS PER LISTING\n%s\n", thin)
		ids := make([]string, 0, len(s.RowsPerListing))
		for id := range s.RowsPerListing {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			fmt.Printf("  %-25s %4d\n", id+":", s.RowsPerListing[id])
		}
	}

	if len(s.OutputFiles) > 0 {
		fmt.Printf("\n OUTPUT FILES\n%s\n", thin)
		for _, f := range s.OutputFiles {
			fmt.Printf("  %s\n", f)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}
