package airbnb

import (
	"encoding/json"
	"testing"
)

const sampleState = `{
  "niobeMinimalClientData": [
    ["unrelated-key", {"data": {}}],
    ["StaysPdpSections:{}", {
      "data": {
        "presentation": {
          "stayProductDetailPage": {
            "sections": {
              "metadata": {
                "sharingConfig": {"title": "Sea-view studio", "propertyType": "Entire rental unit"}
              },
              "sections": [
                {"sectionId": "TITLE_DEFAULT", "section": {"title": "Sea-view studio"}},
                {"sectionId": "BOOK_IT_SIDEBAR", "section": {
                  "structuredDisplayPrice": {
                    "primaryLine": {"price": "", "originalPrice": "$400.00", "discountedPrice": "$360.00"},
                    "explanationData": {
                      "priceDetails": [
                        {"items": [
                          {"description": "2 nights x $200.00", "priceString": "$400.00"},
                          {"description": "Early bird discount", "priceString": "-$40.00"}
                        ]},
                        {"items": [
                          {"description": "Cleaning fee", "priceString": "$35.00"}
                        ]}
                      ]
                    }
                  }
                }}
              ]
            }
          }
        }
      }
    }]
  ]
}`

func TestParseListingDetail(t *testing.T) {
	detail, err := parseListingDetail(json.RawMessage(sampleState))
	if err != nil {
		t.Fatal(err)
	}

	if detail.Title != "Sea-view studio" {
		t.Errorf("Title = %q", detail.Title)
	}
	if detail.RoomType != "Entire rental unit" {
		t.Errorf("RoomType = %q", detail.RoomType)
	}
	if detail.Price.Main.OriginalPrice != "$400.00" || detail.Price.Main.DiscountedPrice != "$360.00" {
		t.Errorf("Main = %+v", detail.Price.Main)
	}

	// Breakdown lines flattened across groups, payload order kept.
	wantLabels := []string{"2 nights x $200.00", "Early bird discount", "Cleaning fee"}
	if len(detail.Price.Lines) != len(wantLabels) {
		t.Fatalf("got %d lines, want %d", len(detail.Price.Lines), len(wantLabels))
	}
	for i, w := range wantLabels {
		if detail.Price.Lines[i].Label != w {
			t.Errorf("line %d = %q, want %q", i, detail.Price.Lines[i].Label, w)
		}
	}
}

func TestParseListingDetailNoSections(t *testing.T) {
	state := json.RawMessage(`{"niobeMinimalClientData": [["k", {"data": {}}]]}`)
	if _, err := parseListingDetail(state); err == nil {
		t.Error("expected error when page state holds no listing sections")
	}
}

func TestParseListingDetailNoPriceSection(t *testing.T) {
	state := json.RawMessage(`{
	  "niobeMinimalClientData": [["k", {"data": {"presentation": {"stayProductDetailPage": {"sections": {
	    "metadata": {"sharingConfig": {"title": "Quiet cabin", "propertyType": "Cabin"}},
	    "sections": [{"sectionId": "TITLE_DEFAULT", "section": {}}]
	  }}}}}]]
	}`)
	detail, err := parseListingDetail(state)
	if err != nil {
		t.Fatal(err)
	}
	if detail.Title != "Quiet cabin" {
		t.Errorf("Title = %q", detail.Title)
	}
	if len(detail.Price.Lines) != 0 || detail.Price.Main.OriginalPrice != "" {
		t.Errorf("expected empty breakdown, got %+v", detail.Price)
	}
}

func TestExtractDeferredState(t *testing.T) {
	page := []byte(`<html><body>
	<script id="data-deferred-state-0" type="application/json">{"niobeMinimalClientData":[]}</script>
	</body></html>`)

	state, err := extractDeferredState(page)
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid(state) {
		t.Error("extracted state is not valid JSON")
	}

	if _, err := extractDeferredState([]byte(`<html><body>no state</body></html>`)); err == nil {
		t.Error("expected error when no state script present")
	}
}
