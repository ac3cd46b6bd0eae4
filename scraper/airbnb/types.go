package airbnb

import (
	"encoding/json"

	"airbnb-price-tracker/models"
)

// calendarEnvelope is the availability-calendar API response.
type calendarEnvelope struct {
	Data struct {
		Merlin struct {
			PdpAvailabilityCalendar struct {
				CalendarMonths models.CalendarMonths `json:"calendarMonths"`
			} `json:"pdpAvailabilityCalendar"`
		} `json:"merlin"`
	} `json:"data"`
}

// deferredState is the JSON blob embedded in a listing page's
// data-deferred-state script tag. Each entry is a [key, payload] pair.
type deferredState struct {
	NiobeMinimalClientData []json.RawMessage `json:"niobeMinimalClientData"`
}

type clientData struct {
	Data struct {
		Presentation struct {
			StayProductDetailPage struct {
				Sections struct {
					Metadata sectionsMetadata `json:"metadata"`
					Sections []sectionEntry   `json:"sections"`
				} `json:"sections"`
			} `json:"stayProductDetailPage"`
		} `json:"presentation"`
	} `json:"data"`
}

type sectionsMetadata struct {
	SharingConfig struct {
		Title        string `json:"title"`
		PropertyType string `json:"propertyType"`
	} `json:"sharingConfig"`
}

type sectionEntry struct {
	SectionID string          `json:"sectionId"`
	Section   json.RawMessage `json:"section"`
}

// bookItSection carries the structured display price of the booking
// sidebar: the headline strings plus the itemized breakdown lines.
type bookItSection struct {
	StructuredDisplayPrice struct {
		PrimaryLine struct {
			Price           string `json:"price"`
			OriginalPrice   string `json:"originalPrice"`
			DiscountedPrice string `json:"discountedPrice"`
		} `json:"primaryLine"`
		ExplanationData struct {
			PriceDetails []struct {
				Items []struct {
					Description string `json:"description"`
					PriceString string `json:"priceString"`
				} `json:"items"`
			} `json:"priceDetails"`
		} `json:"explanationData"`
	} `json:"structuredDisplayPrice"`
}
