// Copyright (c) 2026 Keymaster Team
// CurrencyField - locale-aware currency entry for terminal forms
// This source code is licensed under the MIT license found in the LICENSE file.
package amount

import "github.com/shopspring/decimal"

// Round rounds v half away from zero to places fraction digits.
func Round(v float64, places int) float64 {
	f, _ := decimal.NewFromFloat(v).Round(int32(places)).Float64()
	return f
}

// Sum adds amounts in decimal arithmetic and rounds the total to places.
func Sum(places int, vs ...float64) float64 {
	total := decimal.Zero
	for _, v := range vs {
		total = total.Add(decimal.NewFromFloat(v))
	}
	f, _ := total.Round(int32(places)).Float64()
	return f
}
