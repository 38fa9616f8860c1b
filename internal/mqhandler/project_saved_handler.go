package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"apjatelpmo/internal/model"
	"apjatelpmo/internal/repository"
	"apjatelpmo/pkg/mq"
	"apjatelpmo/pkg/util"
)

type ProjectSavedHandler struct {
	historyRepo *repository.HistoryRepository
	deduper     *util.Deduper
	logger      *zap.Logger
}

func NewProjectSavedHandler(historyRepo *repository.HistoryRepository, deduper *util.Deduper, logger *zap.Logger) *ProjectSavedHandler {
	return &ProjectSavedHandler{
		historyRepo: historyRepo,
		deduper:     deduper,
		logger:      logger,
	}
}

// HandleProjectSaved records a progress transition in the history store.
// The history id is derived from the event content, so a redelivered event
// maps to the same row and the insert becomes a no-op.
func (h *ProjectSavedHandler) HandleProjectSaved(ctx context.Context, raw json.RawMessage) error {
	var p mq.ProjectSavedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("Failed to unmarshal project saved payload", zap.Error(err))
		return err
	}
	if p.ProjectID == "" {
		h.logger.Error("Project saved event without project id, dropping")
		return nil
	}

	eventKey := fmt.Sprintf("%s:%d", p.ProjectID, p.SavedAt.UnixNano())
	if h.deduper != nil && !h.deduper.AcquireOnce(ctx, "project_saved", eventKey) {
		h.logger.Debug("Duplicate project saved event, skipping",
			zap.String("project_id", p.ProjectID),
		)
		return nil
	}

	entry := &model.ProgressHistory{
		ID:           uuid.NewSHA1(uuid.NameSpaceOID, []byte(eventKey)).String(),
		ProjectID:    p.ProjectID,
		ProjectName:  p.ProjectName,
		VendorID:     p.VendorID,
		ActorID:      p.ActorID,
		FromProgress: p.FromProgress,
		ToProgress:   p.ToProgress,
		Status:       p.Status,
		RecordedAt:   p.SavedAt,
	}

	if err := h.historyRepo.Insert(ctx, entry); err != nil {
		h.logger.Error("Failed to insert progress history",
			zap.String("project_id", p.ProjectID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("Progress history recorded",
		zap.String("project_id", p.ProjectID),
		zap.Float64("from", p.FromProgress),
		zap.Float64("to", p.ToProgress),
	)
	return nil
}
