// Package cache holds the in-memory snapshot of sheet data that the
// reporting core reads from. The store is an explicit value owned by the
// caller and passed into services; nothing here is package-global. A copy of
// each snapshot is mirrored into Redis so a restarted process can warm up
// without hitting the sheet API.
package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"apjatelpmo/internal/model"
)

const (
	keyProjects = "cache:projects"
	keyVendors  = "cache:vendors"

	mirrorTTL = 24 * time.Hour
)

type Store struct {
	mu        sync.RWMutex
	projects  []model.Project
	vendors   []model.Vendor
	fetchedAt time.Time

	rdb    *redis.Client
	logger *zap.Logger
}

// NewStore creates an empty store. rdb may be nil, in which case the Redis
// mirror is skipped entirely.
func NewStore(rdb *redis.Client, logger *zap.Logger) *Store {
	return &Store{rdb: rdb, logger: logger}
}

// SetProjects replaces the project snapshot and mirrors it to Redis.
func (s *Store) SetProjects(ctx context.Context, projects []model.Project) {
	s.mu.Lock()
	s.projects = projects
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.mirror(ctx, keyProjects, projects)
}

// SetVendors replaces the vendor snapshot and mirrors it to Redis.
func (s *Store) SetVendors(ctx context.Context, vendors []model.Vendor) {
	s.mu.Lock()
	s.vendors = vendors
	s.mu.Unlock()

	s.mirror(ctx, keyVendors, vendors)
}

// Projects returns a copy of the snapshot so callers can never mutate the
// cached records.
func (s *Store) Projects() []model.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Vendors returns a copy of the vendor snapshot.
func (s *Store) Vendors() []model.Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Vendor, len(s.vendors))
	copy(out, s.vendors)
	return out
}

// Lookup builds a vendor id -> name table from the current snapshot.
func (s *Store) Lookup() model.VendorLookup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.NewVendorLookup(s.vendors)
}

// Empty reports whether the store has never been filled.
func (s *Store) Empty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt.IsZero()
}

// FetchedAt returns when the project snapshot was last replaced.
func (s *Store) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fetchedAt
}

// UpsertProject updates one project in place (or appends it) without
// touching the rest of the snapshot. Used after a successful save so reads
// reflect the write before the next full refresh.
func (s *Store) UpsertProject(ctx context.Context, p model.Project) {
	s.mu.Lock()
	replaced := false
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		s.projects = append(s.projects, p)
	}
	projects := make([]model.Project, len(s.projects))
	copy(projects, s.projects)
	s.mu.Unlock()

	s.mirror(ctx, keyProjects, projects)
}

// WarmFromRedis restores both snapshots from the Redis mirror. Returns true
// when a project snapshot was found.
func (s *Store) WarmFromRedis(ctx context.Context) bool {
	if s.rdb == nil {
		return false
	}

	data, err := s.rdb.Get(ctx, keyProjects).Bytes()
	if err != nil {
		return false
	}
	var projects []model.Project
	if err := json.Unmarshal(data, &projects); err != nil {
		s.logger.Warn("Discarding corrupt project mirror", zap.Error(err))
		return false
	}

	var vendors []model.Vendor
	if data, err := s.rdb.Get(ctx, keyVendors).Bytes(); err == nil {
		if err := json.Unmarshal(data, &vendors); err != nil {
			s.logger.Warn("Discarding corrupt vendor mirror", zap.Error(err))
			vendors = nil
		}
	}

	s.mu.Lock()
	s.projects = projects
	if vendors != nil {
		s.vendors = vendors
	}
	s.fetchedAt = time.Now()
	s.mu.Unlock()

	s.logger.Info("Cache warmed from Redis mirror",
		zap.Int("projects", len(projects)),
		zap.Int("vendors", len(vendors)),
	)
	return true
}

func (s *Store) mirror(ctx context.Context, key string, v any) {
	if s.rdb == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, data, mirrorTTL).Err(); err != nil {
		s.logger.Warn("Failed to mirror cache to Redis",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}
