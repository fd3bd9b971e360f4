// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
// This package implements the repository pattern for the rider domain aggregate, handling
// the conversion between domain entities and database representations.
//
// The earnings and rating ledgers live in child tables. Both are append-only:
// updates insert new rows and never rewrite existing ones.
package riderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// The aggregate rating itself is not stored: it is recomputed from the rating
// ledger on restore, so the column can never drift from the records.
type RiderDTO struct {
	ID                  uuid.UUID    `gorm:"type:uuid;primaryKey"`
	UserID              string       `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                string       `gorm:"type:varchar(255);not null"`
	Email               string       `gorm:"type:varchar(255)"`
	Phone               string       `gorm:"type:varchar(64)"`
	NationalID          string       `gorm:"type:varchar(64);not null"`
	LicenseNumber       string       `gorm:"type:varchar(64);not null"`
	VehicleType         string       `gorm:"type:varchar(64);not null"`
	VehicleNumber       string       `gorm:"type:varchar(64)"`
	IsVerified          bool         `gorm:"not null"`
	IsAvailable         bool         `gorm:"not null;index"`
	CurrentDeliveryID   *uuid.UUID   `gorm:"type:uuid;index"`
	AddressDivision     string       `gorm:"type:varchar(64);not null"`
	AddressDistrict     string       `gorm:"type:varchar(64);not null;index"`
	AddressArea         string       `gorm:"type:varchar(128)"`
	AddressStreet       string       `gorm:"type:varchar(255)"`
	RatingCount         int          `gorm:"not null"`
	CompletedDeliveries int          `gorm:"not null"`
	OnTimeDeliveries    int          `gorm:"not null"`
	LateDeliveries      int          `gorm:"not null"`
	CancelledDeliveries int          `gorm:"not null"`
	Earnings            []EarningDTO `gorm:"foreignKey:RiderID;constraint:OnDelete:CASCADE"`
	Ratings             []RatingDTO  `gorm:"foreignKey:RiderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for rider entities.
// Overrides GORM's default naming convention to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

// EarningDTO represents one row of the append-only earnings ledger.
type EarningDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	RiderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount     float64   `gorm:"type:double precision;not null"`
	Status     string    `gorm:"type:varchar(32);not null"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for earning ledger rows.
func (EarningDTO) TableName() string {
	return "rider_earnings"
}

// RatingDTO represents one row of the append-only rating ledger.
// A revised rating is a second row for the same delivery, never an update.
type RatingDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	RiderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	DeliveryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID string    `gorm:"type:varchar(255);not null"`
	Score      int       `gorm:"not null"`
	Comment    string    `gorm:"type:text"`
	OccurredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for rating ledger rows.
func (RatingDTO) TableName() string {
	return "rider_ratings"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	riderID := aggregate.ID().Bytes()

	var currentDeliveryID *uuid.UUID
	if id := aggregate.CurrentDeliveryID(); id != nil {
		raw := id.Bytes()
		currentDeliveryID = &raw
	}

	earnings := make([]EarningDTO, 0, len(aggregate.Earnings()))
	for _, record := range aggregate.Earnings() {
		earnings = append(earnings, EarningDTO{
			RiderID:    riderID,
			DeliveryID: record.DeliveryID().Bytes(),
			Amount:     record.Amount(),
			Status:     record.Status().String(),
			OccurredAt: record.OccurredAt(),
		})
	}

	ratings := make([]RatingDTO, 0, len(aggregate.Ratings()))
	for _, record := range aggregate.Ratings() {
		ratings = append(ratings, RatingDTO{
			RiderID:    riderID,
			DeliveryID: record.DeliveryID().Bytes(),
			CustomerID: record.CustomerID(),
			Score:      record.Score(),
			Comment:    record.Comment(),
			OccurredAt: record.OccurredAt(),
		})
	}

	credentials := aggregate.Credentials()
	address := aggregate.Address()

	return RiderDTO{
		ID:                  riderID,
		UserID:              aggregate.UserID(),
		Name:                aggregate.Name(),
		Email:               aggregate.Email(),
		Phone:               aggregate.Phone(),
		NationalID:          credentials.NationalID(),
		LicenseNumber:       credentials.LicenseNumber(),
		VehicleType:         credentials.VehicleType(),
		VehicleNumber:       credentials.VehicleNumber(),
		IsVerified:          aggregate.IsVerified(),
		IsAvailable:         aggregate.IsAvailable(),
		CurrentDeliveryID:   currentDeliveryID,
		AddressDivision:     address.Division(),
		AddressDistrict:     address.District(),
		AddressArea:         address.Area(),
		AddressStreet:       address.Street(),
		RatingCount:         aggregate.RatingCount(),
		CompletedDeliveries: aggregate.CompletedDeliveries(),
		OnTimeDeliveries:    aggregate.OnTimeDeliveries(),
		LateDeliveries:      aggregate.LateDeliveries(),
		CancelledDeliveries: aggregate.CancelledDeliveries(),
		Earnings:            earnings,
		Ratings:             ratings,
	}
}

// toDomain converts a database DTO to a rider domain aggregate.
// Ledger rows are expected in insertion order so the restored slices keep
// the append order.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var currentDeliveryID *kernel.UUID
	if dto.CurrentDeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.CurrentDeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}

		currentDeliveryID = &dID
	}

	credentials, err := rider.NewCredentials(dto.NationalID, dto.LicenseNumber, dto.VehicleType, dto.VehicleNumber)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.AddressDivision, dto.AddressDistrict, dto.AddressArea, dto.AddressStreet)
	if err != nil {
		return nil, err
	}

	earnings := make([]rider.EarningRecord, 0, len(dto.Earnings))
	for _, row := range dto.Earnings {
		record, recordErr := earningToDomain(row)
		if recordErr != nil {
			return nil, recordErr
		}
		earnings = append(earnings, record)
	}

	ratings := make([]rider.RatingRecord, 0, len(dto.Ratings))
	for _, row := range dto.Ratings {
		record, recordErr := ratingToDomain(row)
		if recordErr != nil {
			return nil, recordErr
		}
		ratings = append(ratings, record)
	}

	return rider.RestoreRider(rider.RestoreRiderParams{
		ID:                  id,
		UserID:              dto.UserID,
		Name:                dto.Name,
		Email:               dto.Email,
		Phone:               dto.Phone,
		Credentials:         credentials,
		IsVerified:          dto.IsVerified,
		IsAvailable:         dto.IsAvailable,
		CurrentDeliveryID:   currentDeliveryID,
		Address:             address,
		RatingCount:         dto.RatingCount,
		CompletedDeliveries: dto.CompletedDeliveries,
		OnTimeDeliveries:    dto.OnTimeDeliveries,
		LateDeliveries:      dto.LateDeliveries,
		CancelledDeliveries: dto.CancelledDeliveries,
		Earnings:            earnings,
		Ratings:             ratings,
	})
}

func earningToDomain(row EarningDTO) (rider.EarningRecord, error) {
	deliveryID, err := kernel.UUIDFromBytes(row.DeliveryID[:])
	if err != nil {
		return rider.EarningRecord{}, err
	}

	status, err := rider.EarningStatusFromString(row.Status)
	if err != nil {
		return rider.EarningRecord{}, err
	}

	return rider.NewEarningRecord(deliveryID, row.Amount, row.OccurredAt, status)
}

func ratingToDomain(row RatingDTO) (rider.RatingRecord, error) {
	deliveryID, err := kernel.UUIDFromBytes(row.DeliveryID[:])
	if err != nil {
		return rider.RatingRecord{}, err
	}

	return rider.NewRatingRecord(deliveryID, row.CustomerID, row.Score, row.Comment, row.OccurredAt)
}
