package model

type KitUnit string

const (
	KitUnitLength KitUnit = "m"
	KitUnitCount  KitUnit = "u"
)

const (
	DefaultLengthStep = 0.5
	DefaultCountStep  = 1.0
)

type KitItemSpec struct {
	Key             string
	Label           string
	Unit            KitUnit
	Step            float64
	DefaultQuantity float64
	Source          KitSource
}

// KitSource says how a kit line maps to a product code.
// It is either DirectSource or VariantSource.
type KitSource interface {
	// Resolve returns the product code for the selected variant value.
	Resolve(variant string) (string, bool)
}

type DirectSource struct {
	ProductCode string
}

func (s DirectSource) Resolve(string) (string, bool) {
	return s.ProductCode, s.ProductCode != ""
}

type KitVariant struct {
	Value       string
	ProductCode string
}

type VariantSource struct {
	Variants []KitVariant
}

func (s VariantSource) Resolve(variant string) (string, bool) {
	for _, v := range s.Variants {
		if v.Value == variant {
			return v.ProductCode, v.ProductCode != ""
		}
	}
	return "", false
}

type KitPriceParams struct {
	Quantities map[string]float64
	Variants   map[string]string
}

type KitPriceLine struct {
	Key          string
	Label        string
	Unit         KitUnit
	ProductCode  string
	ProductName  string
	Variant      string
	Quantity     float64
	UnitPriceARS float64
	SubtotalARS  float64
}

type KitPrice struct {
	Lines []KitPriceLine
	Total float64
}
