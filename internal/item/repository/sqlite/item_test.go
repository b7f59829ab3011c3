package sqlite_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"samaritans-api/internal/db"
	"samaritans-api/internal/item/repository"
	"samaritans-api/internal/item/repository/sqlite"
	"samaritans-api/internal/model"
	"samaritans-api/pkg/geo"
)

type noopLogger struct{}

func (noopLogger) Debug(context.Context, ...any)          {}
func (noopLogger) Debugf(context.Context, string, ...any) {}
func (noopLogger) Info(context.Context, ...any)           {}
func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warn(context.Context, ...any)           {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Error(context.Context, ...any)          {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func newRepo(t *testing.T) (repository.Repository, *sql.DB) {
	t.Helper()
	database := db.NewTestDB(t)
	return sqlite.New(database, noopLogger{}), database
}

func seedUser(t *testing.T, database *sql.DB, userType string) string {
	t.Helper()
	id := uuid.NewString()
	_, err := database.Exec(
		`INSERT INTO users (id, username, email, password_hash, user_type) VALUES (?, ?, ?, ?, ?)`,
		id, "user-"+id[:8], id[:8]+"@example.com", "x", userType,
	)
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return id
}

func seedItem(t *testing.T, repo repository.Repository, donor string, category int) model.Item {
	t.Helper()
	it, err := repo.CreateItem(context.Background(), repository.CreateItemOptions{
		Category:       category,
		Description:    "Canned soup",
		PickupLocation: geo.Point{Lat: 42.3204, Lon: -82.5561},
		PostedBy:       donor,
		AvailableTill:  time.Now().Add(14 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("seeding item: %v", err)
	}
	return it
}

func TestCreateAndGetItem(t *testing.T) {
	repo, database := newRepo(t)
	ctx := context.Background()
	donor := seedUser(t, database, "samaritan")

	weight := 3.5
	bestBefore := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	created, err := repo.CreateItem(ctx, repository.CreateItemOptions{
		Category:          2,
		Description:       "Winter coats",
		WeightKg:          &weight,
		BestBefore:        &bestBefore,
		PickupLocation:    geo.Point{Lat: 42.3173, Lon: -82.5039},
		PickupWindowStart: "09:00",
		PickupWindowEnd:   "17:00",
		PostedBy:          donor,
		AvailableTill:     time.Now().Add(7 * 24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == "" {
		t.Fatal("expected assigned id")
	}
	if created.Status() != model.StatusOffered {
		t.Errorf("expected Offered, got %s", created.Status())
	}
	if created.WeightKg == nil || *created.WeightKg != 3.5 {
		t.Errorf("weight not round-tripped: %v", created.WeightKg)
	}
	if created.BestBefore == nil || created.BestBefore.Format(time.DateOnly) != "2026-10-01" {
		t.Errorf("best_before not round-tripped: %v", created.BestBefore)
	}
	if created.PickupWindowStart != "09:00" || created.PickupWindowEnd != "17:00" {
		t.Errorf("pickup window not round-tripped: %q, %q", created.PickupWindowStart, created.PickupWindowEnd)
	}
	if created.PickupLocation.Lat != 42.3173 {
		t.Errorf("location not round-tripped: %+v", created.PickupLocation)
	}

	t.Run("Unknown ID Is Zero Value", func(t *testing.T) {
		got, err := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: "missing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Errorf("expected zero value, got %+v", got)
		}
	})
}

func TestListOffered(t *testing.T) {
	repo, database := newRepo(t)
	ctx := context.Background()
	donor := seedUser(t, database, "samaritan")
	org := seedUser(t, database, "organization")

	open := seedItem(t, repo, donor, 1)
	other := seedItem(t, repo, donor, 3)
	claimed := seedItem(t, repo, donor, 1)

	if _, err := repo.Reserve(ctx, repository.ReserveOptions{
		ItemID: claimed.ID, ReservedBy: org, ReservedTill: time.Now().Add(7 * 24 * time.Hour),
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	// expired offer
	if _, err := database.Exec(`UPDATE items SET available_till = ? WHERE id = ?`,
		time.Now().Add(-time.Hour).UTC(), other.ID); err != nil {
		t.Fatalf("expiring item: %v", err)
	}

	t.Run("Excludes Reserved And Expired", func(t *testing.T) {
		items, err := repo.ListOffered(ctx, repository.ListOfferedOptions{Now: time.Now()})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 1 || items[0].ID != open.ID {
			t.Errorf("expected only the open item, got %+v", items)
		}
	})

	t.Run("Category Filter", func(t *testing.T) {
		items, err := repo.ListOffered(ctx, repository.ListOfferedOptions{Category: 5, Now: time.Now()})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("expected no category-5 items, got %d", len(items))
		}
	})
}

func TestListHistory(t *testing.T) {
	repo, database := newRepo(t)
	ctx := context.Background()
	donor := seedUser(t, database, "samaritan")

	for i := 0; i < 5; i++ {
		seedItem(t, repo, donor, 1)
	}

	notPicked := false
	items, total, err := repo.ListHistory(ctx, repository.ListHistoryOptions{
		PostedBy: donor,
		PickedUp: &notPicked,
		Limit:    2,
		Offset:   2,
	})
	if err != nil {
		t.Fatalf("list history: %v", err)
	}
	if total != 5 {
		t.Errorf("expected total 5, got %d", total)
	}
	if len(items) != 2 {
		t.Errorf("expected page of 2, got %d", len(items))
	}
}

func TestDeactivateExpired(t *testing.T) {
	repo, database := newRepo(t)
	ctx := context.Background()
	donor := seedUser(t, database, "samaritan")
	org := seedUser(t, database, "organization")

	stale := seedItem(t, repo, donor, 1)
	held := seedItem(t, repo, donor, 1)
	fresh := seedItem(t, repo, donor, 1)

	past := time.Now().Add(-time.Hour).UTC()
	for _, id := range []string{stale.ID, held.ID} {
		if _, err := database.Exec(`UPDATE items SET available_till = ? WHERE id = ?`, past, id); err != nil {
			t.Fatalf("backdating item: %v", err)
		}
	}
	// a held reservation survives the sweep even when the offer deadline passed
	if _, err := repo.Reserve(ctx, repository.ReserveOptions{
		ItemID: held.ID, ReservedBy: org, ReservedTill: time.Now().Add(24 * time.Hour),
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	n, err := repo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 swept row, got %d", n)
	}

	got, _ := repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: stale.ID})
	if got.IsActive {
		t.Error("stale item should be inactive")
	}
	got, _ = repo.GetOneItem(ctx, repository.GetOneItemOptions{ID: fresh.ID})
	if !got.IsActive {
		t.Error("fresh item should stay active")
	}
}
