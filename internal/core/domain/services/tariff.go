package services

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// Tariff constants, in the platform currency's major unit.
const (
	// documentFlatRate is charged for document parcels regardless of weight
	// and route class.
	documentFlatRate = 60.0
	// nonDocumentBaseRate covers non-document parcels up to baseWeightLimitKg.
	nonDocumentBaseRate = 110.0
	// baseWeightLimitKg is the weight threshold above which the per-kg
	// surcharge applies.
	baseWeightLimitKg = 3.0
	// perKgSurcharge is billed pro rata for each kilogram above the threshold.
	perKgSurcharge = 40.0
	// warehouseSurcharge is added to cross-district non-document deliveries
	// for the warehouse relay handling.
	warehouseSurcharge = 50.0

	// withinCityCommissionRate is the rider's share of a within-city charge.
	withinCityCommissionRate = 0.80
	// crossDistrictCommissionRate is the rider's share of a cross-district
	// charge. The platform keeps the larger cut to fund the warehouse relay;
	// the relay cost is never passed to the rider.
	crossDistrictCommissionRate = 0.60
)

// ErrInvalidPricingInput is returned for negative weights, unrecognized
// product types, and negative charges.
var ErrInvalidPricingInput = errors.New("invalid pricing input")

// ComputeCharge computes the delivery charge from the product attributes and
// the route class. Pure and deterministic: identical inputs always produce
// identical outputs.
//
// Pricing rules:
//   - document parcels: flat rate regardless of weight
//   - non-document parcels: base rate up to the weight threshold, plus a
//     pro-rata per-kg surcharge above it; cross-district parcels add the
//     warehouse-handling surcharge
//
// The result is rounded half-up to the currency's smallest unit.
func ComputeCharge(productType delivery.ProductType, weightKg float64, withinCity bool) (float64, error) {
	if err := productType.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidPricingInput, err)
	}
	if weightKg < 0 {
		return 0, fmt.Errorf("%w: weight %g is negative", ErrInvalidPricingInput, weightKg)
	}

	if productType == delivery.ProductTypeDocument {
		return kernel.RoundMoney(documentFlatRate), nil
	}

	charge := nonDocumentBaseRate
	if weightKg > baseWeightLimitKg {
		charge += (weightKg - baseWeightLimitKg) * perKgSurcharge
	}
	if !withinCity {
		charge += warehouseSurcharge
	}

	return kernel.RoundMoney(charge), nil
}

// ComputeCommission computes the rider's share of a delivery charge:
// 80% within-city, 60% cross-district, rounded half-up to the currency's
// smallest unit. The commission never exceeds the charge.
func ComputeCommission(charge float64, withinCity bool) (float64, error) {
	if charge < 0 {
		return 0, fmt.Errorf("%w: charge %g is negative", ErrInvalidPricingInput, charge)
	}

	rate := crossDistrictCommissionRate
	if withinCity {
		rate = withinCityCommissionRate
	}

	return kernel.RoundMoney(charge * rate), nil
}
