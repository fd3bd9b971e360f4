// Package services provides domain services that implement business rules
// spanning multiple domain entities in the logistics system.
//
// The package includes:
//   - ClassifyRoute: the route classifier labelling a pickup/delivery pair as
//     within-city or cross-district
//   - Tariff: the pure pricing rules computing delivery charge and rider
//     commission
//   - RiderMatcher: a domain service ranking and assigning candidate riders
//     to a delivery
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root.
package services
