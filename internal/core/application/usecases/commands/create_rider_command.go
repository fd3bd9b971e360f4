package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrRiderNameIsRequired   = errors.New("rider name is required")
	ErrRiderUserIDIsRequired = errors.New("rider user id is required")
)

// CreateRiderCommand represents a request to onboard a new rider.
// New riders start unverified and cannot be matched until an administrator
// approves their credentials.
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID     kernel.UUID
	userID      string
	name        string
	email       string
	phone       string
	credentials rider.Credentials
	address     kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to onboard a rider.
// Validates the rider ID, the external user ID, the display name, the
// credentials, and the home address; email and phone are optional contact
// details.
func NewCreateRiderCommand(
	riderID kernel.UUID,
	userID string,
	name string,
	email string,
	phone string,
	credentials rider.Credentials,
	address kernel.Address,
) (CreateRiderCommand, error) {
	cmd := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRiderID(riderID),
		cmd.setUserID(userID),
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	cmd.email = email
	cmd.phone = phone
	cmd.credentials = credentials
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRiderCommandIsNotConstructed if validation fails.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the unique identifier for the new rider.
func (c CreateRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

// UserID returns the external authentication identity.
func (c CreateRiderCommand) UserID() string {
	return c.userID
}

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

// Email returns the rider's contact email.
func (c CreateRiderCommand) Email() string {
	return c.email
}

// Phone returns the rider's contact phone number.
func (c CreateRiderCommand) Phone() string {
	return c.phone
}

// Credentials returns the documents registered at onboarding.
func (c CreateRiderCommand) Credentials() rider.Credentials {
	return c.credentials
}

// Address returns the rider's administrative home location.
func (c CreateRiderCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.UUID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setUserID(userID string) error {
	if userID == "" {
		return ErrRiderUserIDIsRequired
	}

	c.userID = userID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrRiderNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateRiderCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}

	c.address = address
	return nil
}
