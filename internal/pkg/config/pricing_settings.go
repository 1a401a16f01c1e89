package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Default quotation formulas. Variables are documented in PricingSettings.
const (
	DefaultBaseFormula   = "(base_rate + area * area_rate + bedrooms * bedroom_rate + bathrooms * bathroom_rate) * type_factor"
	DefaultExtrasFormula = "exterior_area * exterior_rate + duplex * duplex_fee + bbq * bbq_fee + glass_garden * glass_garden_fee"
)

// PricingSettings holds the quotation pricing formulas.
//
// Formulas are evaluated with the variables area, exterior_area, bedrooms, bathrooms,
// duplex, bbq, glass_garden (0 or 1), type_factor (looked up in TypeFactors by property
// type) and every entry of Rates.
type PricingSettings struct {
	BaseFormula   string             `yaml:"base_formula" validate:"required"`
	ExtrasFormula string             `yaml:"extras_formula" validate:"required"`
	Rates         map[string]float64 `yaml:"rates"`
	TypeFactors   map[string]float64 `yaml:"type_factors" validate:"required,min=1,dive,gt=0"`
	ValidityDays  int                `yaml:"validity_days" validate:"min=1,max=365"`
}

// DefaultPricingSettings returns the pricing used when the config file has no pricing section
func DefaultPricingSettings() PricingSettings {
	return PricingSettings{
		BaseFormula:   DefaultBaseFormula,
		ExtrasFormula: DefaultExtrasFormula,
		Rates: map[string]float64{
			"base_rate":        20,
			"area_rate":        0.3,
			"bedroom_rate":     5,
			"bathroom_rate":    8,
			"exterior_rate":    0.15,
			"duplex_fee":       50,
			"bbq_fee":          30,
			"glass_garden_fee": 20,
		},
		TypeFactors: map[string]float64{
			"apartment":  1.0,
			"house":      1.15,
			"villa":      1.3,
			"commercial": 1.2,
		},
		ValidityDays: 30,
	}
}

func (s *PricingSettings) applyDefaults() {
	defaults := DefaultPricingSettings()
	if s.BaseFormula == "" {
		s.BaseFormula = defaults.BaseFormula
	}
	if s.ExtrasFormula == "" {
		s.ExtrasFormula = defaults.ExtrasFormula
	}
	if s.Rates == nil {
		s.Rates = defaults.Rates
	}
	if len(s.TypeFactors) == 0 {
		s.TypeFactors = defaults.TypeFactors
	}
	if s.ValidityDays == 0 {
		s.ValidityDays = defaults.ValidityDays
	}
}

// Validate checks that all fields in PricingSettings are valid
func (s *PricingSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for PricingSettings: %w", err)
	}
	return nil
}
