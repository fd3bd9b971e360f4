package kernel

import "math"

// moneyScale is the number of minor units per major currency unit.
const moneyScale = 100

// RoundMoney rounds a monetary amount to the currency's smallest unit
// (two decimal places) using round-half-up. Every monetary output of the
// pricing rules passes through this function so that charge and commission
// values are always exact to the minor unit.
func RoundMoney(amount float64) float64 {
	return math.Floor(amount*moneyScale+0.5) / moneyScale
}
