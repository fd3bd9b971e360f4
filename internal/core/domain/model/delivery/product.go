package delivery

import (
	"fmt"

	"logistics/internal/pkg/errs"
)

// ProductType distinguishes flat-rate document parcels from weight-priced
// non-document parcels.
type ProductType int

const (
	// ProductTypeUnknown represents an invalid or undefined product type.
	// This value (0) helps catch uninitialized ProductType values.
	ProductTypeUnknown ProductType = iota

	// ProductTypeDocument is a paper-document parcel, charged a flat rate
	// regardless of weight.
	ProductTypeDocument

	// ProductTypeNonDocument is any physical parcel, charged by weight.
	ProductTypeNonDocument
)

// getProductTypeStrings returns the wire representations of all product types.
func getProductTypeStrings() map[ProductType]string {
	return map[ProductType]string{
		ProductTypeUnknown:     "unknown",
		ProductTypeDocument:    "document",
		ProductTypeNonDocument: "non-document",
	}
}

// getValidProductTypeStrings returns only the product types a caller may supply.
func getValidProductTypeStrings() map[ProductType]string {
	//nolint:exhaustive // ProductTypeUnknown is intentionally excluded as it's invalid
	return map[ProductType]string{
		ProductTypeDocument:    "document",
		ProductTypeNonDocument: "non-document",
	}
}

// ProductTypeFromString parses the wire representation of a product type.
func ProductTypeFromString(s string) (ProductType, error) {
	for pt, str := range getValidProductTypeStrings() {
		if str == s {
			return pt, nil
		}
	}
	return ProductTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"product type is invalid",
		fmt.Errorf("%q is not a valid product type", s),
	)
}

// String returns the wire representation of the product type.
func (p ProductType) String() string {
	if str, ok := getProductTypeStrings()[p]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the ProductType is one of the caller-visible values.
func (p ProductType) Validate() error {
	if _, ok := getValidProductTypeStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"product type is invalid",
			fmt.Errorf("%d is not a valid product type", p),
		)
	}
	return nil
}

// Product is the value object describing what a delivery carries.
// Weight is expressed in kilograms and is meaningful only for non-document
// parcels; document parcels are priced flat and may carry zero weight.
type Product struct {
	productType ProductType
	weightKg    float64
}

// NewProduct creates a Product descriptor.
// The type must be valid and the weight non-negative.
func NewProduct(productType ProductType, weightKg float64) (Product, error) {
	if err := productType.Validate(); err != nil {
		return Product{}, err
	}
	if weightKg < 0 {
		return Product{}, errs.NewValueIsInvalidErrorWithCause(
			"weight is invalid",
			fmt.Errorf("%g is not a valid weight", weightKg),
		)
	}

	return Product{
		productType: productType,
		weightKg:    weightKg,
	}, nil
}

// Type returns the product type.
func (p Product) Type() ProductType {
	return p.productType
}

// WeightKg returns the parcel weight in kilograms.
func (p Product) WeightKg() float64 {
	return p.weightKg
}

// Validate checks that the Product was properly constructed.
func (p Product) Validate() error {
	if err := p.productType.Validate(); err != nil {
		return err
	}
	if p.weightKg < 0 {
		return errs.NewValueIsInvalidError("weight is invalid")
	}
	return nil
}
