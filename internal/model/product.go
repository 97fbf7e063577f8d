package model

import "time"

// Product is a supply entry in the warehouse catalog.
type Product struct {
	ID           string `json:"id"`
	SKU          string `json:"sku,omitempty"`
	InternalCode string `json:"internal_code,omitempty"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Category     string `json:"category"`
	Stock        int    `json:"stock"`
	Unit         string `json:"unit"`
	// ConversionFactor converts a unit-based stock count into an
	// equivalent liters figure, for display only. Nil means not
	// applicable; it is never stored as zero.
	ConversionFactor *float64  `json:"conversion_factor,omitempty"`
	Status           string    `json:"status"`
	ImageURL         string    `json:"image_url,omitempty"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Product statuses. Inactive products are hidden from the catalog.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Units of measure.
const (
	UnitUnidade = "un"
	UnitCaixa   = "cx"
	UnitPacote  = "pct"
	UnitLitro   = "lt"
	UnitGalao   = "gl"
)

// Units lists all accepted units of measure.
var Units = []string{UnitUnidade, UnitCaixa, UnitPacote, UnitLitro, UnitGalao}

// ValidUnit reports whether unit is an accepted unit of measure.
func ValidUnit(unit string) bool {
	for _, u := range Units {
		if u == unit {
			return true
		}
	}
	return false
}

// LitersEquivalent returns the stock count multiplied by the conversion
// factor. The second return value is false when no factor applies.
func (p *Product) LitersEquivalent() (float64, bool) {
	if p.ConversionFactor == nil {
		return 0, false
	}
	return float64(p.Stock) * *p.ConversionFactor, true
}
