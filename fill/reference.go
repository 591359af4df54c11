package fill

import (
	"github.com/martinjakubec/fxproxy/provider/currencies"
	"github.com/martinjakubec/fxproxy/storage/types"
)

// Reference supplies the fixed conversion table that synthetic snapshots
// are derived from
type Reference interface {
	// ConversionRates returns the reference rate per target currency
	ConversionRates() map[types.Currency]float64
}

type staticReference struct{}

func (staticReference) ConversionRates() map[types.Currency]float64 {
	return currencies.ReferenceRates()
}

// StaticReference returns the embedded provider reference table
func StaticReference() Reference {
	return staticReference{}
}
