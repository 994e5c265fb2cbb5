// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Platform
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, so they can
// run on a pooled handle, a dedicated connection, or inside a transaction.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When a platform is not found, functions return ErrNotFound
//     (gorm.ErrRecordNotFound).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated.
//
// Functions:
//
//   - CreatePlatform(ctx, db, p) -> error
//     Inserts p, assigning a UUID and UTC timestamps when missing.
//
//   - ListPlatforms(ctx, db) -> []domain.Platform, error
//     Returns the whole catalog in catalog order (sort_order, name).
//
//   - GetPlatformByName(ctx, db, name) -> *domain.Platform, error
//     Fetches a platform by its unique name, or ErrNotFound.
//
//   - UpsertPlatform(ctx, db, p) -> *domain.Platform, error
//     Creates p or overwrites the attributes of the platform with the same name.
//
//   - DeletePlatformByName(ctx, db, name) -> error
//     Removes a platform; its reviews go with it through the FK cascade.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreatePlatform inserts p. A UUID is generated when p.ID is empty and
// CreatedAt/UpdatedAt default to the current UTC time.
func CreatePlatform(ctx context.Context, db *gorm.DB, p *domain.Platform) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	return db.WithContext(ctx).Create(p).Error
}

// ListPlatforms returns every platform in catalog order. It returns an empty
// slice when the catalog is empty.
func ListPlatforms(ctx context.Context, db *gorm.DB) ([]domain.Platform, error) {
	var out []domain.Platform
	err := db.WithContext(ctx).
		Order("sort_order ASC, name ASC").
		Find(&out).Error
	return out, err
}

// CountPlatforms returns the number of platforms in the catalog.
func CountPlatforms(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&domain.Platform{}).Count(&total).Error
	return total, err
}

// GetPlatformByName fetches a single platform by its unique name. If the
// record does not exist, it returns ErrNotFound.
func GetPlatformByName(ctx context.Context, db *gorm.DB, name string) (*domain.Platform, error) {
	var p domain.Platform
	err := db.WithContext(ctx).
		Where("name = ?", name).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertPlatform inserts p, or when a platform with the same name exists,
// overwrites its descriptive attributes while keeping its ID (and thus its
// reviews). The stored row is returned.
func UpsertPlatform(ctx context.Context, db *gorm.DB, p *domain.Platform) (*domain.Platform, error) {
	existing, err := GetPlatformByName(ctx, db, p.Name)
	switch {
	case err == nil:
		res := db.WithContext(ctx).
			Model(&domain.Platform{}).
			Where("id = ?", existing.ID).
			Updates(map[string]any{
				"operating_system":  p.OperatingSystem,
				"speed_score":       p.SpeedScore,
				"accuracy_score":    p.AccuracyScore,
				"maintenance_score": p.MaintenanceScore,
				"price_range":       p.PriceRange,
				"features":          p.Features,
				"sort_order":        p.SortOrder,
				"updated_at":        time.Now().UTC(),
			})
		if res.Error != nil {
			return nil, res.Error
		}
		return GetPlatformByName(ctx, db, p.Name)
	case err == ErrNotFound:
		cp := *p
		if err := CreatePlatform(ctx, db, &cp); err != nil {
			return nil, err
		}
		return &cp, nil
	default:
		return nil, err
	}
}

// DeletePlatformByName removes the named platform. Reviews are removed by the
// ON DELETE CASCADE constraint. If no row matched it returns ErrNotFound.
func DeletePlatformByName(ctx context.Context, db *gorm.DB, name string) error {
	res := db.WithContext(ctx).
		Where("name = ?", name).
		Delete(&domain.Platform{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
