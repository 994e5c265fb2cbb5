package domain

import (
	"testing"
	"time"
)

func TestIdempotency_InsertAndUniqueKey(t *testing.T) {
	db := newDomainDB(t)
	now := time.Now().UTC()

	rec := &Idempotency{
		ID:         "id-1",
		PlatformID: "p1",
		Key:        "k1",
		ReviewID:   "r1",
		Status:     201,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("insert valid: %v", err)
	}

	var got Idempotency
	if err := db.First(&got, "id = ?", "id-1").Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if got.PlatformID != "p1" || got.Key != "k1" || got.ReviewID != "r1" || got.Status != 201 {
		t.Fatalf("unexpected row: %+v", got)
	}
	if got.ExpiresAt.Before(now) {
		t.Fatalf("ExpiresAt should be after CreatedAt: %v vs %v", got.ExpiresAt, now)
	}

	// Same (platform_id, key) must be rejected.
	dup := &Idempotency{
		ID:         "id-2",
		PlatformID: "p1",
		Key:        "k1",
		ReviewID:   "r2",
		Status:     201,
		CreatedAt:  now,
		ExpiresAt:  now.Add(2 * time.Hour),
	}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected UNIQUE violation on (platform_id, key)")
	}

	// Same key on another platform is fine.
	other := &Idempotency{
		ID:         "id-3",
		PlatformID: "p2",
		Key:        "k1",
		ReviewID:   "r3",
		Status:     201,
		CreatedAt:  now,
		ExpiresAt:  now.Add(time.Hour),
	}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("insert on other platform: %v", err)
	}
}
