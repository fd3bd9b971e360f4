package services

import (
	"errors"
	"sort"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
)

// ErrNoCandidateAvailable is returned when no verified, available rider in
// the pickup district can take a delivery. The engine never queues or
// retries; retry and escalation policy belong to the caller.
var ErrNoCandidateAvailable = errors.New("no candidate rider available")

// RiderMatcher is a domain service that selects a rider for a delivery from
// a snapshot of candidates.
//
// Ranking rewards both quality and experience: rating descending first, then
// completed-delivery count descending. A rider with zero history therefore
// ranks below any equally rated rider with at least one completed delivery.
//
// The candidate snapshot may be stale: a rider taken by a concurrent dispatch
// between listing and assignment simply loses the Assign call and the next
// candidate is tried.
//
// Example usage:
//
//	matcher := NewRiderMatcher()
//	assigned, err := matcher.Match(delivery, candidates)
//	if errors.Is(err, ErrNoCandidateAvailable) {
//	    // escalate or retry later, outside the engine
//	}
type RiderMatcher struct{}

// NewRiderMatcher creates a new RiderMatcher instance.
func NewRiderMatcher() RiderMatcher {
	return RiderMatcher{}
}

// Match selects the best candidate for the delivery and assigns it on both
// sides of the relationship: the rider takes the delivery and the delivery
// records the rider.
//
// Returns ErrNoCandidateAvailable when no candidate passes the filters, or
// the first unexpected error encountered while assigning.
func (m RiderMatcher) Match(d *delivery.Delivery, candidates []*rider.Rider) (*rider.Rider, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	for _, candidate := range m.RankCandidates(d.Pickup(), candidates) {
		err := candidate.Assign(d.ID())
		if errors.Is(err, rider.ErrRiderUnavailable) || errors.Is(err, rider.ErrRiderNotVerified) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if err = d.AssignRider(candidate.ID()); err != nil {
			candidate.Release()
			return nil, err
		}

		return candidate, nil
	}

	return nil, ErrNoCandidateAvailable
}

// RankCandidates filters the snapshot down to verified, available riders in
// the pickup division and district, ordered by rating descending, then by
// completed-delivery count descending. The sort is stable, so equally ranked
// riders keep their snapshot order.
func (m RiderMatcher) RankCandidates(pickup kernel.Address, candidates []*rider.Rider) []*rider.Rider {
	ranked := make([]*rider.Rider, 0, len(candidates))
	for _, c := range candidates {
		if c == nil || c.Validate() != nil {
			continue
		}
		if !c.IsVerified() || !c.IsAvailable() {
			continue
		}
		if !c.Address().InDistrict(pickup.Division(), pickup.District()) {
			continue
		}
		ranked = append(ranked, c)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Rating() != ranked[j].Rating() {
			return ranked[i].Rating() > ranked[j].Rating()
		}
		return ranked[i].CompletedDeliveries() > ranked[j].CompletedDeliveries()
	})

	return ranked
}
