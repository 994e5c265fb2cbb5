// Package domain defines the persistence models for the platform catalog and
// user reviews. These types are mapped with GORM and form the core data layer
// of the comparison dashboard.
package domain

import (
	"time"
)

// Platform is a cataloged low-code/no-code product. Platforms are created when
// the catalog is seeded and are read-only for the rest of the process life.
//
// Fields:
//   - ID: stable UUID primary key (char(36)).
//   - Name: unique, non-empty display name; the natural key used by the API.
//   - OperatingSystem: free-text OS descriptor, slash or comma delimited
//     (e.g. "iOS/Android/Web").
//   - SpeedScore / AccuracyScore / MaintenanceScore: numeric scores in [0,100].
//   - PriceRange: free-text price descriptor (e.g. "$25-299/mo" or "Custom").
//   - Features: comma-delimited feature labels.
//   - SortOrder: catalog position; list reads return platforms in this order.
//   - CreatedAt / UpdatedAt: timestamps managed by GORM.
type Platform struct {
	ID               string    `json:"id"                gorm:"type:char(36);primaryKey"`
	Name             string    `json:"name"              gorm:"type:varchar(128);not null;uniqueIndex:ux_platform_name"`
	OperatingSystem  string    `json:"operating_system"  gorm:"type:varchar(255);not null;default:''"`
	SpeedScore       float64   `json:"speed_score"       gorm:"not null;default:0"`
	AccuracyScore    float64   `json:"accuracy_score"    gorm:"not null;default:0"`
	MaintenanceScore float64   `json:"maintenance_score" gorm:"not null;default:0"`
	PriceRange       string    `json:"price_range"       gorm:"type:varchar(64);not null;default:''"`
	Features         string    `json:"features"          gorm:"type:text;not null;default:''"`
	SortOrder        int       `json:"-"                 gorm:"not null;default:0;index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TableName returns the database table name for Platform.
func (Platform) TableName() string { return "platforms" }

// Review is a star rating left by a user on a platform. Reviews are immutable
// once written and disappear only when their platform is deleted.
//
// Fields:
//   - ID: UUID primary key (char(36)).
//   - PlatformID: foreign key to the owning platform (indexed with CreatedAt).
//   - UserName: author display name, non-empty.
//   - Rating: 1..5 (enforced by DB constraint).
//   - Comment: free-text body, non-empty.
//   - CreatedAt: submission time (UTC).
//   - Platform: FK association, ensures cascade delete/update.
type Review struct {
	ID         string    `json:"id"          gorm:"type:char(36);primaryKey"`
	PlatformID string    `json:"platform_id" gorm:"type:char(36);not null;index:idx_platform_reviews,priority:1"`
	UserName   string    `json:"user_name"   gorm:"type:varchar(128);not null"`
	Rating     int       `json:"rating"      gorm:"not null;check:rating BETWEEN 1 AND 5"`
	Comment    string    `json:"comment"     gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"  gorm:"index:idx_platform_reviews,priority:2"`

	// Platform is the reviewed product. Reviews are cascade-deleted when the
	// platform is removed.
	Platform Platform `json:"-" gorm:"foreignKey:PlatformID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Review.
func (Review) TableName() string { return "reviews" }

// PlatformName returns the name of the preloaded platform, or the raw
// PlatformID when the association was not loaded.
func (r Review) PlatformName() string {
	if r.Platform.Name != "" {
		return r.Platform.Name
	}
	return r.PlatformID
}
