package app

import (
	"fmt"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/quotations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/config"

	"github.com/Knetic/govaluate"
	"github.com/shopspring/decimal"
)

// formulaPriceCalculator evaluates the configured base and extras formulas
type formulaPriceCalculator struct {
	base        *govaluate.EvaluableExpression
	extras      *govaluate.EvaluableExpression
	rates       map[string]float64
	typeFactors map[string]float64
}

// NewFormulaPriceCalculator compiles the pricing formulas of settings
func NewFormulaPriceCalculator(settings *config.PricingSettings) (quotations.PriceCalculator, error) {
	base, err := govaluate.NewEvaluableExpression(settings.BaseFormula)
	if err != nil {
		return nil, fmt.Errorf("invalid base formula %q: %w", settings.BaseFormula, err)
	}
	extras, err := govaluate.NewEvaluableExpression(settings.ExtrasFormula)
	if err != nil {
		return nil, fmt.Errorf("invalid extras formula %q: %w", settings.ExtrasFormula, err)
	}
	return &formulaPriceCalculator{
		base:        base,
		extras:      extras,
		rates:       settings.Rates,
		typeFactors: settings.TypeFactors,
	}, nil
}

// Calculate returns base, extras and their sum, each rounded to cents and floored at zero
func (c *formulaPriceCalculator) Calculate(input *quotations.PricingInput) (*quotations.Price, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	factor, ok := c.typeFactors[input.PropertyType]
	if !ok {
		return nil, fmt.Errorf("%w: no price factor for property type %s", apperrors.ErrValidation, input.PropertyType)
	}

	parameters := make(map[string]interface{}, len(c.rates)+8)
	for name, rate := range c.rates {
		parameters[name] = rate
	}
	parameters["area"] = input.Area
	parameters["exterior_area"] = input.ExteriorArea
	parameters["bedrooms"] = float64(input.Bedrooms)
	parameters["bathrooms"] = float64(input.Bathrooms)
	parameters["duplex"] = flag(input.IsDuplex)
	parameters["bbq"] = flag(input.HasBBQ)
	parameters["glass_garden"] = flag(input.HasGlassGarden)
	parameters["type_factor"] = factor

	base, err := evaluate(c.base, parameters)
	if err != nil {
		return nil, err
	}
	extras, err := evaluate(c.extras, parameters)
	if err != nil {
		return nil, err
	}
	return &quotations.Price{
		BasePrice:       base,
		AdditionalPrice: extras,
		TotalPrice:      base.Add(extras),
	}, nil
}

func evaluate(expression *govaluate.EvaluableExpression, parameters map[string]interface{}) (decimal.Decimal, error) {
	result, err := expression.Evaluate(parameters)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to evaluate formula %q: %w", expression.String(), err)
	}
	value, ok := result.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("formula %q did not return a number", expression.String())
	}
	amount := decimal.NewFromFloat(value).Round(2)
	if amount.IsNegative() {
		return decimal.Zero, nil
	}
	return amount, nil
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
