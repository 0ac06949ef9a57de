// Package units converts line-item quantities between canonical units and
// grams for cost arithmetic.
package units

import (
	"github.com/bistrodata/invoice-tracker/constants"
)

// ToGrams converts a quantity in the given unit to grams. Weight units use
// fixed factors. Every other unit, including volumes, containers, and tokens
// the synonym table does not recognize, is treated as a container of
// defaultGrams each. An unknown unit must never collapse to one gram; that
// would silently under-count expensive ingredients, so the fallback leans
// toward over-estimation.
func ToGrams(quantity float64, unit string, defaultGrams float64) float64 {
	switch constants.NormalizeUnit(unit) {
	case constants.UnitKg:
		return quantity * 1000
	case constants.UnitHundredG:
		return quantity * 100
	case constants.UnitG:
		return quantity
	}
	return quantity * defaultGrams
}

// FromGrams converts grams back to the given weight unit. Non-weight units
// are returned unchanged; there is no meaningful inverse for containers.
func FromGrams(grams float64, unit string) float64 {
	switch constants.NormalizeUnit(unit) {
	case constants.UnitKg:
		return grams / 1000
	case constants.UnitHundredG:
		return grams / 100
	case constants.UnitG:
		return grams
	}
	return grams
}
