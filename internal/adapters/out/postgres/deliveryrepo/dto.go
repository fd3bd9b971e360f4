// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Status is stored as its wire string so operational queries and the event
// payloads read the same vocabulary.
type DeliveryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RiderID     *uuid.UUID `gorm:"type:uuid;index"`
	Pickup      AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff     AddressDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	ProductType string     `gorm:"type:varchar(32);not null"`
	WeightKg    float64    `gorm:"type:double precision;not null"`
	Charge      float64    `gorm:"type:double precision;not null"`
	Commission  float64    `gorm:"type:double precision;not null"`
	WithinCity  bool       `gorm:"not null"`
	Status      string     `gorm:"type:varchar(32);not null;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	DueAt       time.Time  `gorm:"not null"`
}

// TableName specifies the database table name for delivery entities.
// Overrides GORM's default naming convention to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents the embedded administrative address fields within the
// delivery table. District is indexed because route classification and rider
// matching both filter on it.
type AddressDTO struct {
	Division string `gorm:"type:varchar(64);not null"`
	District string `gorm:"type:varchar(64);not null;index"`
	Area     string `gorm:"type:varchar(128)"`
	Street   string `gorm:"type:varchar(255)"`
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var riderID *uuid.UUID
	if id := aggregate.RiderID(); id != nil {
		raw := id.Bytes()
		riderID = &raw
	}

	return DeliveryDTO{
		ID:          aggregate.ID().Bytes(),
		RiderID:     riderID,
		Pickup:      addressFromDomain(aggregate.Pickup()),
		Dropoff:     addressFromDomain(aggregate.Dropoff()),
		ProductType: aggregate.Product().Type().String(),
		WeightKg:    aggregate.Product().WeightKg(),
		Charge:      aggregate.Charge(),
		Commission:  aggregate.Commission(),
		WithinCity:  aggregate.WithinCity(),
		Status:      aggregate.Status().String(),
		CreatedAt:   aggregate.CreatedAt(),
		DueAt:       aggregate.DueAt(),
	}
}

func addressFromDomain(address kernel.Address) AddressDTO {
	return AddressDTO{
		Division: address.Division(),
		District: address.District(),
		Area:     address.Area(),
		Street:   address.Street(),
	}
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Division, dto.District, dto.Area, dto.Street)
}

// toDomain converts a database DTO to a delivery domain aggregate.
// Reconstructs the complete aggregate including status and rider assignment
// using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var riderID *kernel.UUID
	if dto.RiderID != nil {
		rID, riderErr := kernel.UUIDFromBytes((*dto.RiderID)[:])
		if riderErr != nil {
			return nil, riderErr
		}

		riderID = &rID
	}

	pickup, err := addressToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := addressToDomain(dto.Dropoff)
	if err != nil {
		return nil, err
	}

	productType, err := delivery.ProductTypeFromString(dto.ProductType)
	if err != nil {
		return nil, err
	}

	product, err := delivery.NewProduct(productType, dto.WeightKg)
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id, pickup, dropoff, product,
		dto.Charge, dto.Commission, dto.WithinCity,
		status, riderID, dto.CreatedAt, dto.DueAt,
	)
}
