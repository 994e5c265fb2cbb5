// Package services – CatalogService
//
// CatalogService is the catalog store boundary used by the dashboard and the
// HTTP layer. Every call runs on one dedicated pooled connection obtained via
// gorm's Connection helper; the connection is returned to the pool on every
// exit path, including errors and panics. Review submission additionally runs
// inside a transaction that records the client's Idempotency-Key.
//
// Observability: public methods open OpenTelemetry spans carrying the platform
// name where one applies.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/platform-dashboard/internal/domain"
	"github.com/tbourn/platform-dashboard/internal/repo"
	"github.com/tbourn/platform-dashboard/internal/utils"
)

const (
	minRating = 1
	maxRating = 5

	defaultIdempotencyTTL = 24 * time.Hour
)

// CatalogService implements the catalog use-cases on top of a GORM handle that
// is owned by the caller.
type CatalogService struct {
	// DB is the pooled handle; the service never closes it.
	DB *gorm.DB

	// IdempotencyTTL bounds how long an Idempotency-Key is remembered.
	// Zero means 24h.
	IdempotencyTTL time.Duration

	// Now overrides the clock in tests.
	Now func() time.Time
}

func (s *CatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *CatalogService) ttl() time.Duration {
	if s.IdempotencyTTL > 0 {
		return s.IdempotencyTTL
	}
	return defaultIdempotencyTTL
}

func (s *CatalogService) span(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("services/CatalogService").Start(ctx, name, trace.WithAttributes(attrs...))
}

// withConn runs fn on a dedicated connection that is released when fn returns.
func (s *CatalogService) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	return s.DB.WithContext(ctx).Connection(fn)
}

// platformByName maps the repo not-found sentinel to ErrPlatformNotFound.
func platformByName(ctx context.Context, db *gorm.DB, name string) (*domain.Platform, error) {
	p, err := repo.GetPlatformByName(ctx, db, name)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrPlatformNotFound
	}
	return p, err
}

// ListPlatforms returns the catalog in catalog order.
func (s *CatalogService) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	ctx, span := s.span(ctx, "ListPlatforms")
	defer span.End()

	var out []domain.Platform
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		out, err = repo.ListPlatforms(ctx, conn)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Platform{}
	}
	return out, nil
}

// GetPlatform fetches one platform by name or returns ErrPlatformNotFound.
func (s *CatalogService) GetPlatform(ctx context.Context, name string) (*domain.Platform, error) {
	ctx, span := s.span(ctx, "GetPlatform", attribute.String("platform.name", name))
	defer span.End()

	var p *domain.Platform
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		p, err = platformByName(ctx, conn, name)
		return err
	})
	return p, err
}

// ListReviews returns the platform's reviews created at or after since,
// newest first. A zero since returns the full history.
func (s *CatalogService) ListReviews(ctx context.Context, name string, since time.Time) ([]domain.Review, error) {
	ctx, span := s.span(ctx, "ListReviews", attribute.String("platform.name", name))
	defer span.End()

	var out []domain.Review
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		p, err := platformByName(ctx, conn, name)
		if err != nil {
			return err
		}
		out, err = repo.ListReviews(ctx, conn, p.ID, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Review{}
	}
	return out, nil
}

// ListReviewsPage returns one page of a platform's reviews (newest first) and
// the total review count.
func (s *CatalogService) ListReviewsPage(ctx context.Context, name string, page, pageSize int) ([]domain.Review, int64, error) {
	ctx, span := s.span(ctx, "ListReviewsPage",
		attribute.String("platform.name", name),
		attribute.Int("page", page),
		attribute.Int("page_size", pageSize),
	)
	defer span.End()

	if pageSize <= 0 {
		pageSize = 20
	}
	pg := utils.Page{Number: page, Size: pageSize}.Clamp(0)

	var (
		items []domain.Review
		total int64
	)
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		p, err := platformByName(ctx, conn, name)
		if err != nil {
			return err
		}
		if total, err = repo.CountReviews(ctx, conn, p.ID); err != nil || total == 0 {
			return err
		}
		items, err = repo.ListReviewsPage(ctx, conn, p.ID, pg.Offset(), pg.Size)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	if items == nil {
		items = []domain.Review{}
	}
	return items, total, nil
}

// ReviewsSince returns reviews created at or after since for the named
// platforms (all platforms when names is empty), oldest first, with each
// review's platform preloaded. Unknown names yield ErrPlatformNotFound.
func (s *CatalogService) ReviewsSince(ctx context.Context, names []string, since time.Time) ([]domain.Review, error) {
	ctx, span := s.span(ctx, "ReviewsSince", attribute.StringSlice("platform.names", names))
	defer span.End()

	var out []domain.Review
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		ids := make([]string, 0, len(names))
		for _, n := range names {
			p, err := platformByName(ctx, conn, n)
			if err != nil {
				return err
			}
			ids = append(ids, p.ID)
		}
		var err error
		out, err = repo.ListReviewsSince(ctx, conn, ids, since)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Review{}
	}
	return out, nil
}

// RatingSummary returns the review count and mean rating of a platform.
func (s *CatalogService) RatingSummary(ctx context.Context, name string) (count int64, mean float64, err error) {
	ctx, span := s.span(ctx, "RatingSummary", attribute.String("platform.name", name))
	defer span.End()

	err = s.withConn(ctx, func(conn *gorm.DB) error {
		p, err := platformByName(ctx, conn, name)
		if err != nil {
			return err
		}
		count, mean, err = repo.RatingSummary(ctx, conn, p.ID)
		return err
	})
	return count, mean, err
}

// ValidateReview trims the free-text fields and checks them against the
// review rules. It never touches the store.
func ValidateReview(author string, rating int, comment string) (string, string, error) {
	author, comment = strings.TrimSpace(author), strings.TrimSpace(comment)
	switch {
	case rating < minRating || rating > maxRating:
		return "", "", ErrInvalidRating
	case author == "":
		return "", "", ErrEmptyAuthor
	case comment == "":
		return "", "", ErrEmptyComment
	}
	return author, comment, nil
}

// AddReview validates and stores a review for the named platform.
func (s *CatalogService) AddReview(ctx context.Context, name, author string, rating int, comment string) (*domain.Review, error) {
	r, _, err := s.AddReviewIdempotent(ctx, name, "", author, rating, comment)
	return r, err
}

// AddReviewIdempotent is AddReview with retry protection: when key is
// non-empty and a non-expired record exists for (platform, key), the review
// created by the first attempt is returned with replayed=true and nothing is
// inserted.
func (s *CatalogService) AddReviewIdempotent(ctx context.Context, name, key, author string, rating int, comment string) (r *domain.Review, replayed bool, err error) {
	ctx, span := s.span(ctx, "AddReview",
		attribute.String("platform.name", name),
		attribute.Int("review.rating", rating),
		attribute.Bool("idempotent", key != ""),
	)
	defer span.End()

	author, comment, err = ValidateReview(author, rating, comment)
	if err != nil {
		return nil, false, err
	}

	err = s.withConn(ctx, func(conn *gorm.DB) error {
		p, err := platformByName(ctx, conn, name)
		if err != nil {
			return err
		}

		if key != "" {
			prev, err := s.replay(ctx, conn, p.ID, key)
			if err != nil {
				return err
			}
			if prev != nil {
				r, replayed = prev, true
				return nil
			}
		}

		txErr := conn.Transaction(func(tx *gorm.DB) error {
			created, err := repo.CreateReview(ctx, tx, p.ID, author, rating, comment)
			if err != nil {
				return err
			}
			if key != "" {
				if err := repo.PurgeIdempotency(ctx, tx, p.ID, key, s.now()); err != nil {
					return err
				}
				if _, err := repo.CreateIdempotency(ctx, tx, p.ID, key, created.ID, http.StatusCreated, s.ttl()); err != nil {
					return err
				}
			}
			created.Platform = *p
			r = created
			return nil
		})
		if errors.Is(txErr, repo.ErrDuplicate) {
			// A concurrent request with the same key won; serve its review.
			prev, err := s.replay(ctx, conn, p.ID, key)
			if err != nil {
				return err
			}
			if prev == nil {
				return fmt.Errorf("idempotency key %q: %w", key, txErr)
			}
			r, replayed = prev, true
			return nil
		}
		return txErr
	})
	if err != nil {
		return nil, false, err
	}
	span.SetAttributes(attribute.Bool("replayed", replayed))
	return r, replayed, nil
}

func (s *CatalogService) replay(ctx context.Context, conn *gorm.DB, platformID, key string) (*domain.Review, error) {
	rec, err := repo.GetIdempotency(ctx, conn, platformID, key, s.now())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	prev, err := repo.GetReview(ctx, conn, rec.ReviewID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	return prev, err
}

// DeletePlatform removes a platform and, through the FK cascade, its reviews.
func (s *CatalogService) DeletePlatform(ctx context.Context, name string) error {
	ctx, span := s.span(ctx, "DeletePlatform", attribute.String("platform.name", name))
	defer span.End()

	return s.withConn(ctx, func(conn *gorm.DB) error {
		err := repo.DeletePlatformByName(ctx, conn, name)
		if errors.Is(err, repo.ErrNotFound) {
			return ErrPlatformNotFound
		}
		return err
	})
}

// SeedIfEmpty inserts platforms only when the catalog has no rows and
// reports how many were inserted.
func (s *CatalogService) SeedIfEmpty(ctx context.Context, platforms []domain.Platform) (int, error) {
	ctx, span := s.span(ctx, "SeedIfEmpty", attribute.Int("platforms", len(platforms)))
	defer span.End()

	inserted := 0
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			n, err := repo.CountPlatforms(ctx, tx)
			if err != nil || n > 0 {
				return err
			}
			for i := range platforms {
				p := platforms[i]
				if err := repo.CreatePlatform(ctx, tx, &p); err != nil {
					return fmt.Errorf("seed %q: %w", p.Name, err)
				}
				inserted++
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Upsert writes every platform, creating missing ones and overwriting the
// attributes of existing ones. Reviews of existing platforms are kept.
func (s *CatalogService) Upsert(ctx context.Context, platforms []domain.Platform) (int, error) {
	ctx, span := s.span(ctx, "Upsert", attribute.Int("platforms", len(platforms)))
	defer span.End()

	err := s.withConn(ctx, func(conn *gorm.DB) error {
		return conn.Transaction(func(tx *gorm.DB) error {
			for i := range platforms {
				if _, err := repo.UpsertPlatform(ctx, tx, &platforms[i]); err != nil {
					return fmt.Errorf("upsert %q: %w", platforms[i].Name, err)
				}
			}
			return nil
		})
	})
	if err != nil {
		return 0, err
	}
	return len(platforms), nil
}

// CatalogETag returns a weak validator that changes whenever a platform is
// added, removed or updated.
func (s *CatalogService) CatalogETag(ctx context.Context) (string, error) {
	var (
		count int64
		maxTS *time.Time
	)
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		count, maxTS, err = repo.PlatformsStats(ctx, conn)
		return err
	})
	if err != nil {
		return "", err
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	return fmt.Sprintf(`W/"platforms:%d:%d"`, count, ts), nil
}

// ReviewsETag returns a weak validator over the reviews created at or after
// since.
func (s *CatalogService) ReviewsETag(ctx context.Context, since time.Time) (string, error) {
	var (
		count int64
		maxTS *time.Time
	)
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		count, maxTS, err = repo.ReviewsStats(ctx, conn, since)
		return err
	})
	if err != nil {
		return "", err
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.UnixNano()
	}
	return fmt.Sprintf(`W/"reviews:%d:%d"`, count, ts), nil
}
