package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

func TestCreateReview_AndGet(t *testing.T) {
	db := newTestDB(t, &domain.Platform{}, &domain.Review{})
	ctx := context.Background()
	p := seedPlatform(t, db, "Bubble", 0)

	r, err := CreateReview(ctx, db, p.ID, "ann", 4, "solid")
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if r.ID == "" || r.CreatedAt.IsZero() {
		t.Fatalf("expected id/timestamp, got %+v", r)
	}

	got, err := GetReview(ctx, db, r.ID)
	if err != nil {
		t.Fatalf("GetReview: %v", err)
	}
	if got.PlatformName() != "Bubble" || got.Rating != 4 {
		t.Fatalf("unexpected review: %+v", got)
	}

	if _, err := GetReview(ctx, db, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCreateReview_RejectsUnknownPlatformAndBadRating(t *testing.T) {
	db := newTestDB(t, &domain.Platform{}, &domain.Review{})
	ctx := context.Background()
	p := seedPlatform(t, db, "Bubble", 0)

	if _, err := CreateReview(ctx, db, "no-such-platform", "ann", 3, "x"); err == nil {
		t.Fatalf("expected FK violation for unknown platform")
	}
	if _, err := CreateReview(ctx, db, p.ID, "ann", 6, "x"); err == nil {
		t.Fatalf("expected check violation for rating 6")
	}
}

func TestListReviews_NewestFirstAndWindow(t *testing.T) {
	db := newTestDB(t, &domain.Platform{}, &domain.Review{})
	ctx := context.Background()
	p := seedPlatform(t, db, "Bubble", 0)
	q := seedPlatform(t, db, "Webflow", 1)

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	seedReviewAt(t, db, "r1", p.ID, 3, base)
	seedReviewAt(t, db, "r2", p.ID, 4, base.Add(time.Hour))
	seedReviewAt(t, db, "r3", p.ID, 5, base.Add(2*time.Hour))
	seedReviewAt(t, db, "x1", q.ID, 1, base.Add(time.Hour))

	all, err := ListReviews(ctx, db, p.ID, time.Time{})
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(all) != 3 || all[0].ID != "r3" || all[2].ID != "r1" {
		t.Fatalf("expected newest first r3..r1, got %+v", all)
	}

	recent, err := ListReviews(ctx, db, p.ID, base.Add(30*time.Minute))
	if err != nil || len(recent) != 2 {
		t.Fatalf("expected 2 reviews in window, got %d (err=%v)", len(recent), err)
	}

	page, err := ListReviewsPage(ctx, db, p.ID, 1, 1)
	if err != nil || len(page) != 1 || page[0].ID != "r2" {
		t.Fatalf("unexpected page: %+v (err=%v)", page, err)
	}
}

func TestListReviewsSince_PreloadsPlatformOldestFirst(t *testing.T) {
	db := newTestDB(t, &domain.Platform{}, &domain.Review{})
	ctx := context.Background()
	p := seedPlatform(t, db, "Bubble", 0)
	q := seedPlatform(t, db, "Webflow", 1)

	base := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	seedReviewAt(t, db, "old", p.ID, 2, base.Add(-48*time.Hour))
	seedReviewAt(t, db, "a", q.ID, 4, base.Add(time.Hour))
	seedReviewAt(t, db, "b", p.ID, 5, base.Add(2*time.Hour))

	out, err := ListReviewsSince(ctx, db, nil, base)
	if err != nil {
		t.Fatalf("ListReviewsSince: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].ID != "b" {
		t.Fatalf("expected [a b], got %+v", out)
	}
	if out[0].PlatformName() != "Webflow" || out[1].PlatformName() != "Bubble" {
		t.Fatalf("platform not preloaded: %q %q", out[0].PlatformName(), out[1].PlatformName())
	}

	only, err := ListReviewsSince(ctx, db, []string{p.ID}, time.Time{})
	if err != nil || len(only) != 2 {
		t.Fatalf("expected 2 reviews for Bubble, got %d (err=%v)", len(only), err)
	}
}

func TestRatingSummary(t *testing.T) {
	db := newTestDB(t, &domain.Platform{}, &domain.Review{})
	ctx := context.Background()
	p := seedPlatform(t, db, "Bubble", 0)

	n, mean, err := RatingSummary(ctx, db, p.ID)
	if err != nil || n != 0 || mean != 0 {
		t.Fatalf("empty summary = (%d, %v, %v)", n, mean, err)
	}

	now := time.Now().UTC()
	seedReviewAt(t, db, "r1", p.ID, 4, now)
	seedReviewAt(t, db, "r2", p.ID, 5, now)

	n, mean, err = RatingSummary(ctx, db, p.ID)
	if err != nil {
		t.Fatalf("RatingSummary: %v", err)
	}
	if n != 2 || mean != 4.5 {
		t.Fatalf("expected (2, 4.5), got (%d, %v)", n, mean)
	}
}
