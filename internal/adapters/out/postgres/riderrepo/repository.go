package riderrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/rider"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRiderRepository implements RiderRepository using GORM.
type GormRiderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRiderRepository creates a new GORM rider repository.
func NewGormRiderRepository(db *gorm.DB, tracker aggregateTracker) *GormRiderRepository {
	return &GormRiderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new rider to the database, including any ledger rows.
func (r *GormRiderRepository) Add(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing rider to the database.
// The riders row is rewritten in full; the ledgers are append-only, so only
// rows beyond the persisted count are inserted and nothing is ever modified
// or removed.
func (r *GormRiderRepository) Update(ctx context.Context, aggregate *rider.Rider) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&RiderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "Earnings", "Ratings").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.appendNewEarnings(db, dto); err != nil {
		return err
	}
	if err := r.appendNewRatings(db, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRiderRepository) appendNewEarnings(db *gorm.DB, dto RiderDTO) error {
	var persisted int64
	if err := db.Model(&EarningDTO{}).Where("rider_id = ?", dto.ID).Count(&persisted).Error; err != nil {
		return err
	}

	if int(persisted) >= len(dto.Earnings) {
		return nil
	}

	tail := dto.Earnings[persisted:]
	return db.Create(&tail).Error
}

func (r *GormRiderRepository) appendNewRatings(db *gorm.DB, dto RiderDTO) error {
	var persisted int64
	if err := db.Model(&RatingDTO{}).Where("rider_id = ?", dto.ID).Count(&persisted).Error; err != nil {
		return err
	}

	if int(persisted) >= len(dto.Ratings) {
		return nil
	}

	tail := dto.Ratings[persisted:]
	return db.Create(&tail).Error
}

// Get retrieves a rider by ID with both ledgers preloaded in append order.
// Inside a transaction the riders row is locked for update, which serializes
// concurrent dispatches on the same rider: the loser re-reads the updated
// availability and fails with ErrRiderUnavailable in the domain.
func (r *GormRiderRepository) Get(ctx context.Context, id kernel.UUID) (*rider.Rider, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Earnings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_earnings.id") }).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_ratings.id") }).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByDeliveryID retrieves the rider currently assigned to a delivery.
// Takes the same row lock as Get so a terminal settlement and a concurrent
// dispatch on the same rider serialize.
func (r *GormRiderRepository) GetByDeliveryID(ctx context.Context, deliveryID kernel.UUID) (*rider.Rider, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dto RiderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Earnings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_earnings.id") }).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_ratings.id") }).
		First(&dto, "current_delivery_id = ?", deliveryID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rider by delivery", deliveryID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAvailableInDistrict retrieves verified, available riders in the given
// division and district. The listing itself is not locked; staleness is
// resolved by the row lock taken when the chosen candidate is re-read or
// updated.
func (r *GormRiderRepository) GetAvailableInDistrict(ctx context.Context, division, district string) ([]*rider.Rider, error) {
	var dtos []RiderDTO
	if err := r.db.WithContext(ctx).
		Preload("Earnings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_earnings.id") }).
		Preload("Ratings", func(db *gorm.DB) *gorm.DB { return db.Order("rider_ratings.id") }).
		Where("is_verified AND is_available").
		Where("LOWER(address_division) = LOWER(?) AND LOWER(address_district) = LOWER(?)", division, district).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	riders := make([]*rider.Rider, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		riders = append(riders, aggregate)
	}

	return riders, nil
}
