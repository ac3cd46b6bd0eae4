package airbnb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"airbnb-price-tracker/models"
)

var deferredStateIDs = []string{"data-deferred-state-0", "data-deferred-state"}

// extractDeferredState locates the embedded page-state script in a
// listing page and returns its JSON body.
func extractDeferredState(page []byte) (json.RawMessage, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parsing listing page HTML: %w", err)
	}

	for _, id := range deferredStateIDs {
		text := doc.Find("script#" + id).First().Text()
		if text == "" {
			continue
		}
		if !json.Valid([]byte(text)) {
			return nil, fmt.Errorf("script #%s holds invalid JSON", id)
		}
		return json.RawMessage(text), nil
	}
	return nil, fmt.Errorf("no deferred-state script found in listing page")
}

// parseListingDetail walks the page state's known shape down to the
// booking sidebar. Only the handful of fields this tool consumes are
// decoded; an absent price section yields an empty breakdown, not an
// error; a listing page without a price is a normal outcome.
func parseListingDetail(state json.RawMessage) (*models.ListingDetail, error) {
	var envelope deferredState
	if err := json.Unmarshal(state, &envelope); err != nil {
		return nil, fmt.Errorf("decoding page state: %w", err)
	}

	for _, entry := range envelope.NiobeMinimalClientData {
		// Each entry is a [key, payload] pair.
		var pair []json.RawMessage
		if err := json.Unmarshal(entry, &pair); err != nil || len(pair) < 2 {
			continue
		}
		var data clientData
		if err := json.Unmarshal(pair[1], &data); err != nil {
			continue
		}
		sections := data.Data.Presentation.StayProductDetailPage.Sections
		if len(sections.Sections) == 0 && sections.Metadata.SharingConfig.Title == "" {
			continue
		}

		detail := &models.ListingDetail{
			Title:    sections.Metadata.SharingConfig.Title,
			RoomType: sections.Metadata.SharingConfig.PropertyType,
		}
		detail.Price = priceBreakdownFrom(sections.Sections)
		return detail, nil
	}

	return nil, fmt.Errorf("page state holds no listing sections")
}

func priceBreakdownFrom(sections []sectionEntry) models.PriceBreakdown {
	var pb models.PriceBreakdown
	for _, entry := range sections {
		if entry.SectionID != "BOOK_IT_SIDEBAR" && entry.SectionID != "BOOK_IT_FLOATING_FOOTER" {
			continue
		}
		var section bookItSection
		if err := json.Unmarshal(entry.Section, &section); err != nil {
			continue
		}

		price := section.StructuredDisplayPrice
		main := models.MainPrice{
			OriginalPrice:   price.PrimaryLine.OriginalPrice,
			DiscountedPrice: price.PrimaryLine.DiscountedPrice,
		}
		if main.OriginalPrice == "" {
			main.OriginalPrice = price.PrimaryLine.Price
		}

		var lines []models.PriceLine
		for _, group := range price.ExplanationData.PriceDetails {
			for _, item := range group.Items {
				lines = append(lines, models.PriceLine{Label: item.Description, Value: item.PriceString})
			}
		}

		if len(lines) > 0 || main.OriginalPrice != "" || main.DiscountedPrice != "" {
			pb = models.PriceBreakdown{Lines: lines, Main: main}
			break
		}
	}
	return pb
}
