// Package units - Unit conversion factor derivation
// A small table of directly known ratios seeds a closure search over the
// implicit graph whose nodes are units and whose edges are known ratios.
// Every ratio is usable in either direction.
package units

import (
	"dimgrid/internal/errors"
)

// Ratio states that 1 From equals Factor To.
type Ratio struct {
	From   string
	To     string
	Factor float64
}

// RatioTable holds the directly known conversion ratios.
type RatioTable struct {
	factors map[[2]string]float64
}

// DefaultRatios returns the built-in energy unit ratios.
func DefaultRatios() *RatioTable {
	return NewRatioTable(
		Ratio{From: "kWh", To: "MWh", Factor: 1.0e-3},
		Ratio{From: "MWh", To: "GWh", Factor: 1.0e-3},
		Ratio{From: "GWh", To: "TWh", Factor: 1.0e-3},
	)
}

// NewRatioTable creates a table from directly known ratios.
func NewRatioTable(ratios ...Ratio) *RatioTable {
	factors := make(map[[2]string]float64, len(ratios))
	for _, r := range ratios {
		factors[[2]string{r.From, r.To}] = r.Factor
	}
	return &RatioTable{factors: factors}
}

// Factor derives the multiplier converting fromUnit values to toUnit values.
// Direct ratios, inverted ratios, and chained compositions are all usable.
// The search terminates because the set of known pairs only grows; it finds
// a path when one exists, not necessarily the shortest.
func (t *RatioTable) Factor(fromUnit, toUnit string) (float64, error) {
	key := [2]string{fromUnit, toUnit}
	known := t.reaching(toUnit, 0)
	if factor, ok := known[key]; ok {
		return factor, nil
	}

	added := true
	for added {
		added = false
		frontier := make([][2]string, 0, len(known))
		for k := range known {
			frontier = append(frontier, k)
		}
		for _, k := range frontier {
			factor := known[k]
			// Every pair that reaches k's origin unit also reaches toUnit,
			// with the multipliers composed.
			for candidate, val := range t.reaching(k[0], factor) {
				chained := [2]string{candidate[0], toUnit}
				if _, ok := known[chained]; !ok {
					known[chained] = val
					added = true
				}
			}
		}
		if factor, ok := known[key]; ok {
			return factor, nil
		}
	}

	return 0, errors.NotSupportedf("no conversion factor available to go from %s to %s", fromUnit, toUnit)
}

// reaching returns every pair that converts into toUnit in one step:
// table entries ending at toUnit, plus the inverse of entries starting at
// toUnit. A non-zero multiplier scales every returned factor.
func (t *RatioTable) reaching(toUnit string, multiplier float64) map[[2]string]float64 {
	result := make(map[[2]string]float64)
	for pair, factor := range t.factors {
		if pair[1] == toUnit {
			result[pair] = factor
		}
		if pair[0] == toUnit {
			result[[2]string{pair[1], pair[0]}] = 1.0 / factor
		}
	}
	if multiplier != 0 {
		for pair := range result {
			result[pair] *= multiplier
		}
	}
	return result
}
