package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/pkg/guard"
)

var (
	ErrSubmitRatingCommandIsNotConstructed = errors.New(
		"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
	)
	ErrCustomerIDIsRequired = errors.New("customer id is required")
)

// SubmitRatingCommand represents a customer rating a rider for a delivery.
// A customer revising an earlier rating submits a new command; the ledger
// keeps both records and the rider's aggregate rating includes both.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	customerID string
	score      int
	comment    string

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate the rider of a delivery.
// The score must be between 1 and 5; the comment is optional.
func NewSubmitRatingCommand(deliveryID kernel.UUID, customerID string, score int, comment string) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
		cmd.setScore(score),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	cmd.comment = comment
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitRatingCommandIsNotConstructed if validation fails.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// DeliveryID returns the delivery being rated.
func (c SubmitRatingCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// CustomerID returns the customer submitting the rating.
func (c SubmitRatingCommand) CustomerID() string {
	return c.customerID
}

// Score returns the rating score, 1 to 5.
func (c SubmitRatingCommand) Score() int {
	return c.score
}

// Comment returns the optional free-text feedback.
func (c SubmitRatingCommand) Comment() string {
	return c.comment
}

func (c *SubmitRatingCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *SubmitRatingCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return ErrCustomerIDIsRequired
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitRatingCommand) setScore(score int) error {
	if score < rider.MinRating || score > rider.MaxRating {
		return fmt.Errorf("%w: score %d", rider.ErrInvalidRating, score)
	}

	c.score = score
	return nil
}
