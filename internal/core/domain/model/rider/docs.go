// Package rider contains the Rider aggregate: the rider's identity and
// credentials, their availability state, and the append-only earnings and
// rating ledgers updated as deliveries complete.
//
// Availability and the current delivery reference are always updated
// together, and the aggregate rating is always recomputed from the rating
// ledger, never mutated independently.
package rider
