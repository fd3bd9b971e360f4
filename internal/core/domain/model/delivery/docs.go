// Package delivery contains the Delivery aggregate and its supporting value
// objects: the product descriptor carried by a delivery and the status state
// machine that governs its lifecycle.
//
// A delivery's route class (within-city or cross-district) is fixed when the
// aggregate is created and selects one of two status paths through a single
// shared transition table. The aggregate becomes immutable once it reaches a
// terminal status.
package delivery
