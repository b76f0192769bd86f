package pricing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// Rules is the legacy rule table: multiplicative subtype/color factors and
// flat per-type rates used when the catalog lacks a base price.
type Rules struct {
	SubtypeFactors map[string]float64 `yaml:"subtype_factors"`
	ColorFactors   map[string]float64 `yaml:"color_factors"`
	FlatRatesPerM2 map[string]int64   `yaml:"flat_rates_per_m2"`
}

// SubtypeFactor returns the multiplier for a subtype id. Unknown ids and
// non-positive factors default to 1.0.
func (r Rules) SubtypeFactor(id string) float64 {
	if f, ok := r.SubtypeFactors[id]; ok && f > 0 {
		return f
	}
	return 1.0
}

// ColorFactor returns the multiplier for a color id. Unknown ids and
// non-positive factors default to 1.0.
func (r Rules) ColorFactor(id string) float64 {
	if f, ok := r.ColorFactors[id]; ok && f > 0 {
		return f
	}
	return 1.0
}

// FlatRate returns the legacy flat rate for a product type id, or 0 when the
// type has no legacy rule.
func (r Rules) FlatRate(typeID string) int64 {
	return r.FlatRatesPerM2[typeID]
}

// DefaultRules is the embedded legacy rule table.
var DefaultRules = mustLoadRules()

func mustLoadRules() Rules {
	var r Rules
	if err := yaml.Unmarshal(rulesYAML, &r); err != nil {
		panic(fmt.Sprintf("pricing: malformed embedded rules.yaml: %v", err))
	}
	return r
}
