package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"apjatelpmo/internal/cache"
	"apjatelpmo/internal/model"
	"apjatelpmo/internal/report"
	"apjatelpmo/internal/sheet"
	"apjatelpmo/pkg/metrics"
	"apjatelpmo/pkg/mq"
)

var ErrProjectNotFound = errors.New("project not found")

// Publisher is the slice of the MQ publisher the project service needs;
// split out so tests can hand in a fake.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type ProjectService struct {
	sheets        *sheet.Client
	store         *cache.Store
	publisher     Publisher
	adminVendorID string
	allowDemo     bool
	logger        *zap.Logger
}

func NewProjectService(sheets *sheet.Client, store *cache.Store, publisher Publisher, adminVendorID string, allowDemo bool, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		sheets:        sheets,
		store:         store,
		publisher:     publisher,
		adminVendorID: adminVendorID,
		allowDemo:     allowDemo,
		logger:        logger,
	}
}

// Refresh pulls fresh project and vendor snapshots from the sheet into the
// cache. On failure the existing cache is kept; a cold cache falls back to
// the demo dataset when that is enabled.
func (s *ProjectService) Refresh(ctx context.Context) error {
	projects, err := s.sheets.FetchProjects(ctx)
	if err != nil {
		s.logger.Warn("Project refresh failed, serving cached data", zap.Error(err))
		s.fallbackIfCold(ctx)
		return err
	}
	s.store.SetProjects(ctx, projects)

	vendors, err := s.sheets.FetchVendors(ctx)
	if err != nil {
		s.logger.Warn("Vendor refresh failed, keeping cached vendors", zap.Error(err))
	} else {
		s.store.SetVendors(ctx, vendors)
	}

	metrics.IncrementCacheRefresh("sheet")
	s.logger.Info("Cache refreshed from sheet",
		zap.Int("projects", len(projects)),
		zap.Int("vendors", len(vendors)),
	)
	return nil
}

func (s *ProjectService) fallbackIfCold(ctx context.Context) {
	if !s.store.Empty() || !s.allowDemo {
		return
	}
	s.store.SetProjects(ctx, sheet.DemoProjects())
	s.store.SetVendors(ctx, sheet.DemoVendors())
	metrics.IncrementCacheRefresh("fallback")
	s.logger.Warn("Cache cold and sheet unreachable, demo dataset loaded")
}

// List returns the projects visible to the given vendor. The admin sentinel
// sees everything. The cache is refreshed first; a stale snapshot is served
// when the refresh fails.
func (s *ProjectService) List(ctx context.Context, vendorID string) ([]model.Project, error) {
	_ = s.Refresh(ctx)
	return report.ScopeByVendor(s.store.Projects(), vendorID, s.adminVendorID), nil
}

// Get returns a single project, scoped to the caller's vendor.
func (s *ProjectService) Get(ctx context.Context, vendorID, projectID string) (*model.Project, error) {
	visible, err := s.List(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	for i := range visible {
		if visible[i].ID == projectID {
			return &visible[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// Vendors returns the vendor table for lookups and admin dropdowns.
func (s *ProjectService) Vendors(ctx context.Context) []model.Vendor {
	if s.store.Empty() {
		_ = s.Refresh(ctx)
	}
	return s.store.Vendors()
}

// Save recomputes the project's progress from its work items, pushes the row
// to the sheet, updates the cache, and emits a project.saved event. New
// projects (empty id) are assigned one.
func (s *ProjectService) Save(ctx context.Context, actorID string, p model.Project) (*model.Project, error) {
	if p.ID == "" {
		p.ID = "prj-" + uuid.New().String()
	}

	var fromProgress float64
	for _, existing := range s.store.Projects() {
		if existing.ID == p.ID {
			fromProgress = existing.Progress
			break
		}
	}

	p.Progress = report.RoundProgress(report.ProjectProgress(p.WorkItems))

	if err := s.sheets.SaveProject(ctx, p); err != nil {
		metrics.IncrementProjectSave("failed")
		s.logger.Error("Failed to save project to sheet",
			zap.String("project_id", p.ID),
			zap.Error(err),
		)
		return nil, err
	}
	metrics.IncrementProjectSave("success")

	s.store.UpsertProject(ctx, p)

	if s.publisher != nil {
		payload := mq.ProjectSavedPayload{
			ProjectID:    p.ID,
			ProjectName:  p.Name,
			VendorID:     p.VendorID,
			ActorID:      actorID,
			FromProgress: fromProgress,
			ToProgress:   p.Progress,
			Status:       string(p.Status),
			SavedAt:      time.Now().UTC(),
		}
		if err := s.publisher.Publish(mq.RoutingKeyProjectSaved, payload); err != nil {
			// The save already succeeded; history recording is best effort.
			s.logger.Error("Failed to publish project.saved event",
				zap.String("project_id", p.ID),
				zap.Error(err),
			)
		}
	}

	s.logger.Info("Project saved",
		zap.String("project_id", p.ID),
		zap.String("actor_id", actorID),
		zap.Float64("progress", p.Progress),
	)
	return &p, nil
}

// UploadFile proxies a document or photo to the Drive folder behind the
// sheet web app.
func (s *ProjectService) UploadFile(ctx context.Context, data []byte, filename, mimeType string) (string, error) {
	return s.sheets.UploadFile(ctx, data, filename, mimeType)
}
