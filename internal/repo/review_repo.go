// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Review model.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// CreateReview inserts a review for platformID. Rating and text validation
// belong to the service layer; the rating range is also guarded by a DB
// check constraint.
func CreateReview(ctx context.Context, db *gorm.DB, platformID, userName string, rating int, comment string) (*domain.Review, error) {
	r := &domain.Review{
		ID:         uuid.NewString(),
		PlatformID: platformID,
		UserName:   userName,
		Rating:     rating,
		Comment:    comment,
		CreatedAt:  time.Now().UTC(),
	}
	if err := db.WithContext(ctx).Create(r).Error; err != nil {
		return nil, err
	}
	return r, nil
}

// GetReview fetches a review by ID with its platform preloaded.
func GetReview(ctx context.Context, db *gorm.DB, id string) (*domain.Review, error) {
	var r domain.Review
	if err := db.WithContext(ctx).Preload("Platform").Where("id = ?", id).First(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReviews returns the reviews of platformID created at or after since,
// newest first. A zero since returns the full history.
func ListReviews(ctx context.Context, db *gorm.DB, platformID string, since time.Time) ([]domain.Review, error) {
	var out []domain.Review
	q := db.WithContext(ctx).Preload("Platform").Where("platform_id = ?", platformID)
	if !since.IsZero() {
		q = q.Where("created_at >= ?", since.UTC())
	}
	err := q.Order("created_at DESC, id ASC").Find(&out).Error
	return out, err
}

// ListReviewsSince returns reviews of the given platforms created at or after
// since, oldest first, with the owning platform preloaded. An empty
// platformIDs slice means every platform.
func ListReviewsSince(ctx context.Context, db *gorm.DB, platformIDs []string, since time.Time) ([]domain.Review, error) {
	var out []domain.Review
	q := db.WithContext(ctx).Preload("Platform").Where("created_at >= ?", since.UTC())
	if len(platformIDs) > 0 {
		q = q.Where("platform_id IN ?", platformIDs)
	}
	err := q.Order("created_at ASC, id ASC").Find(&out).Error
	return out, err
}

// CountReviews returns the number of reviews left on platformID.
func CountReviews(ctx context.Context, db *gorm.DB, platformID string) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("platform_id = ?", platformID).
		Count(&total).Error
	return total, err
}

// ListReviewsPage returns a page of reviews for platformID, newest first.
// The caller computes offset and limit (e.g. (page-1)*pageSize).
func ListReviewsPage(ctx context.Context, db *gorm.DB, platformID string, offset, limit int) ([]domain.Review, error) {
	var out []domain.Review
	err := db.WithContext(ctx).
		Where("platform_id = ?", platformID).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	return out, err
}

// RatingSummary returns the number of reviews and the mean rating for
// platformID. Mean is 0 when there are no reviews.
func RatingSummary(ctx context.Context, db *gorm.DB, platformID string) (count int64, mean float64, err error) {
	var row struct {
		Count int64
		Mean  float64
	}
	err = db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS mean").
		Where("platform_id = ?", platformID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	return row.Count, row.Mean, nil
}
