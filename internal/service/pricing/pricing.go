// Package pricing derives ARS prices from USD prices and the exchange rate.
// Plain float64 arithmetic, rounding is left to presentation.
package pricing

import (
	"math"

	"github.com/you-humble/frio-catalog/internal/model"
)

// ComputeARS returns the ARS price a product should store. A product fixed
// in ARS keeps currentARS untouched, otherwise priceUSD (absent counts as 0)
// is converted at rate.
func ComputeARS(priceUSD *float64, rate float64, fixedInARS bool, currentARS *float64) *float64 {
	if fixedInARS {
		return currentARS
	}

	v := value(priceUSD) * rate
	return &v
}

// UnitPriceARS is the price used when selling a product at rate.
func UnitPriceARS(p *model.Product, rate float64) float64 {
	if p == nil {
		return 0
	}
	if p.FixedInARS {
		return value(p.PriceARS)
	}
	return value(p.PriceUSD) * rate
}

func ValidRate(rate float64) bool {
	return rate > 0 && !math.IsInf(rate, 1)
}

// Finite reports whether v is absent or a finite number.
func Finite(v *float64) bool {
	return v == nil || (!math.IsNaN(*v) && !math.IsInf(*v, 0))
}

func value(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
