// Package availability implements the pantry-matching engine: unit
// normalization, ingredient name matching, pantry reconciliation and
// recipe availability aggregation. Everything in this package is a pure
// function over snapshots passed in by the caller.
package availability

import (
	"math"
	"strings"
)

// Base is one of the three canonical unit families every conversion
// normalizes into.
type Base string

const (
	BaseMass   Base = "kg"
	BaseVolume Base = "l"
	BaseCount  Base = "pz"
)

type unitEntry struct {
	base   Base
	factor float64 // multiplier into the base unit
}

var unitTable = map[string]unitEntry{
	// mass
	"g":      {BaseMass, 0.001},
	"gr":     {BaseMass, 0.001},
	"grammi": {BaseMass, 0.001},
	"kg":     {BaseMass, 1},

	// volume
	"ml": {BaseVolume, 0.001},
	"cl": {BaseVolume, 0.01},
	"l":  {BaseVolume, 1},
	"lt": {BaseVolume, 1},

	// count
	"pz":       {BaseCount, 1},
	"pezzo":    {BaseCount, 1},
	"pezzi":    {BaseCount, 1},
	"uovo":     {BaseCount, 1},
	"uova":     {BaseCount, 1},
	"spicchio": {BaseCount, 1},
	"spicchi":  {BaseCount, 1},
	"fetta":    {BaseCount, 1},
	"fette":    {BaseCount, 1},
}

func normalizeUnit(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

// sanitize coerces malformed numeric input to 0. A required-but-zero
// quantity is trivially available, which is the conservative outcome.
func sanitize(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}
	return amount
}

// ToBase converts a (quantity, unit) pair into its canonical base.
// Units outside the known table default to count identity.
func ToBase(amount float64, unit string) (float64, Base) {
	amount = sanitize(amount)
	if entry, ok := unitTable[normalizeUnit(unit)]; ok {
		return amount * entry.factor, entry.base
	}
	return amount, BaseCount
}

// Convert is the pairwise primitive used for pantry-quantity summation:
// identical units pass through, units within the same family are rescaled,
// and a cross-family or unknown pairing yields (0, false) so a unit
// mismatch can never overstate availability.
func Convert(amount float64, from, to string) (float64, bool) {
	amount = sanitize(amount)
	f, t := normalizeUnit(from), normalizeUnit(to)
	if f == t {
		return amount, true
	}
	fromEntry, fromOK := unitTable[f]
	toEntry, toOK := unitTable[t]
	if !fromOK || !toOK || fromEntry.base != toEntry.base {
		return 0, false
	}
	return amount * fromEntry.factor / toEntry.factor, true
}

// roundForDisplay rounds a shortfall back to a sensible display precision:
// one decimal for the base units kg and l, nearest whole number for
// grams, millilitres and counts.
func roundForDisplay(quantity float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "kg", "l", "lt":
		return math.Round(quantity*10) / 10
	default:
		return math.Round(quantity)
	}
}
