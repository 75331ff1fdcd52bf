// Package tablet defines the medicine record model shared across the CLI,
// the API client, and the TUI. Records are immutable snapshots: they are
// decoded once and only ever replaced wholesale, never mutated in place.
package tablet

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// shortIDLen is the number of leading ID characters shown on a card.
const shortIDLen = 8

// priceScale is the number of fraction digits in a formatted price.
const priceScale = 2

// CurrencySymbol prefixes every formatted price.
const CurrencySymbol = "₹"

// Tablet is a single medicine record as returned by the inventory service.
// CreatedAt and UpdatedAt are opaque date-time strings; this client never
// parses or validates them.
type Tablet struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	GenericName string  `json:"genericName"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// pricePrinter formats prices with grouped thousands for display.
var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a price with the currency prefix and exactly two
// fraction digits, e.g. 12.5 -> "₹12.50".
func FormatPrice(price float64) string {
	return pricePrinter.Sprintf("%s%v", CurrencySymbol, number.Decimal(price, number.Scale(priceScale)))
}

// ShortID truncates an identifier to its first 8 runes and appends an
// ellipsis, matching the card display contract.
func ShortID(id string) string {
	runes := []rune(id)
	if len(runes) > shortIDLen {
		runes = runes[:shortIDLen]
	}
	return string(runes) + "..."
}
