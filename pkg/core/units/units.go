// Package units converts financial figures between the magnitude units
// used in Indian and international reporting (thousand, lakhs, million,
// crore, billion). Conversions go through decimal arithmetic so chained
// conversions round-trip exactly.
package units

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Unit is a reporting magnitude.
type Unit string

const (
	Thousand Unit = "thousand"
	Lakhs    Unit = "lakhs"
	Million  Unit = "million"
	Crore    Unit = "cr"
	Billion  Unit = "billion"
)

type unitInfo struct {
	factor  int64
	display string
	zeroes  int
}

var units = map[Unit]unitInfo{
	Thousand: {1_000, "Thousand", 3},
	Lakhs:    {100_000, "Lakhs", 5},
	Million:  {1_000_000, "Million", 6},
	Crore:    {10_000_000, "Crore (Cr)", 7},
	Billion:  {1_000_000_000, "Billion", 9},
}

// All returns the known units ordered by ascending magnitude.
func All() []Unit {
	out := make([]Unit, 0, len(units))
	for u := range units {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool {
		return units[out[i]].factor < units[out[j]].factor
	})
	return out
}

// Valid reports whether u is a known unit.
func Valid(u Unit) bool {
	_, ok := units[u]
	return ok
}

// Display returns the human-readable name for a unit.
func (u Unit) Display() string {
	if info, ok := units[u]; ok {
		return info.display
	}
	return string(u)
}

// Zeroes returns the number of trailing zeroes the unit represents, for
// the reference table shown during unit selection.
func (u Unit) Zeroes() int {
	return units[u].zeroes
}

// Factor returns the absolute multiplier for a unit.
func (u Unit) Factor() (int64, error) {
	info, ok := units[u]
	if !ok {
		return 0, fmt.Errorf("unknown unit %q", u)
	}
	return info.factor, nil
}

// Convert re-expresses value from one unit in another:
// value × factor(from) / factor(to).
func Convert(value float64, from, to Unit) (float64, error) {
	if from == to {
		return value, nil
	}
	fromFactor, err := from.Factor()
	if err != nil {
		return 0, err
	}
	toFactor, err := to.Factor()
	if err != nil {
		return 0, err
	}
	d := decimal.NewFromFloat(value).
		Mul(decimal.NewFromInt(fromFactor)).
		Div(decimal.NewFromInt(toFactor))
	out, _ := d.Float64()
	return out, nil
}
