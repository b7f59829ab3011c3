package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	authRepo "samaritans-api/internal/auth/repository"
	"samaritans-api/internal/item"
	"samaritans-api/internal/item/repository"
	"samaritans-api/pkg/log"
)

// Config carries the tunable business parameters of the item domain.
type Config struct {
	// OfferTTL is how long a new listing stays offered before the sweeper
	// deactivates it.
	OfferTTL time.Duration
	// ReservationTTL is how long a reservation is held.
	ReservationTTL time.Duration
	// DefaultRadiusKm is the browse radius used when the caller passes none.
	DefaultRadiusKm float64
	// ItemsPerPage is the default page size.
	ItemsPerPage int
	// ViewCacheTTL bounds staleness of cached read views; mutations purge
	// them immediately regardless.
	ViewCacheTTL time.Duration
	// ViewCacheSize is the max number of cached view pages.
	ViewCacheSize int
}

// Defaults fills zero fields with production defaults.
func (c Config) Defaults() Config {
	if c.OfferTTL <= 0 {
		c.OfferTTL = 14 * 24 * time.Hour
	}
	if c.ReservationTTL <= 0 {
		c.ReservationTTL = 7 * 24 * time.Hour
	}
	if c.DefaultRadiusKm <= 0 {
		c.DefaultRadiusKm = 5
	}
	if c.ItemsPerPage <= 0 {
		c.ItemsPerPage = 25
	}
	if c.ViewCacheTTL <= 0 {
		c.ViewCacheTTL = 30 * time.Second
	}
	if c.ViewCacheSize <= 0 {
		c.ViewCacheSize = 512
	}
	return c
}

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo  repository.Repository
	users authRepo.UserRepository
	cfg   Config
	views *viewCache
	l     log.Logger

	// now is swappable in tests.
	now func() time.Time
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, users authRepo.UserRepository, cfg Config, l log.Logger) *implUseCase {
	cfg = cfg.Defaults()
	return &implUseCase{
		repo:  repo,
		users: users,
		cfg:   cfg,
		views: newViewCache(cfg.ViewCacheSize, cfg.ViewCacheTTL),
		l:     l,
		now:   time.Now,
	}
}

var _ item.UseCase = (*implUseCase)(nil)

func newViewCache(size int, ttl time.Duration) *viewCache {
	return &viewCache{
		browse:  expirable.NewLRU[string, item.BrowseOutput](size, nil, ttl),
		orgHist: expirable.NewLRU[string, item.OrganizationHistoryOutput](size, nil, ttl),
		samHist: expirable.NewLRU[string, item.SamaritanHistoryOutput](size, nil, ttl),
	}
}
