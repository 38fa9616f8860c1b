package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"apjatelpmo/internal/model"
	"apjatelpmo/pkg/metrics"
)

type HistoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewHistoryRepository(db *pgxpool.Pool, logger *zap.Logger) *HistoryRepository {
	return &HistoryRepository{db: db, logger: logger}
}

func (r *HistoryRepository) Insert(ctx context.Context, h *model.ProgressHistory) error {
	r.logger.Debug("Inserting progress history",
		zap.String("project_id", h.ProjectID),
		zap.Float64("from", h.FromProgress),
		zap.Float64("to", h.ToProgress),
	)

	start := time.Now()
	query := `
        INSERT INTO progress_history
            (id, project_id, project_name, vendor_id, actor_id, from_progress, to_progress, status, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (id) DO NOTHING
    `
	_, err := r.db.Exec(ctx, query,
		h.ID,
		h.ProjectID,
		h.ProjectName,
		h.VendorID,
		h.ActorID,
		h.FromProgress,
		h.ToProgress,
		h.Status,
		h.RecordedAt,
	)
	metrics.RecordDBQueryDuration("insert", "progress_history", time.Since(start))

	if err != nil {
		r.logger.Error("Failed to insert progress history",
			zap.Error(err),
			zap.String("project_id", h.ProjectID),
		)
		return err
	}

	r.logger.Debug("Progress history row written",
		zap.String("project_id", h.ProjectID),
		zap.Float64("to_progress", h.ToProgress),
	)
	return nil
}

func (r *HistoryRepository) ListByProject(ctx context.Context, projectID string) ([]model.ProgressHistory, error) {
	r.logger.Debug("Listing progress history", zap.String("project_id", projectID))

	start := time.Now()
	query := `
        SELECT id, project_id, project_name, vendor_id, actor_id, from_progress, to_progress, status, recorded_at
        FROM progress_history
        WHERE project_id = $1
        ORDER BY recorded_at DESC
    `
	rows, err := r.db.Query(ctx, query, projectID)
	metrics.RecordDBQueryDuration("select", "progress_history", time.Since(start))
	if err != nil {
		r.logger.Error("Failed to query progress history",
			zap.Error(err),
			zap.String("project_id", projectID),
		)
		return nil, err
	}
	defer rows.Close()

	entries := []model.ProgressHistory{}
	for rows.Next() {
		var h model.ProgressHistory
		if err := rows.Scan(
			&h.ID,
			&h.ProjectID,
			&h.ProjectName,
			&h.VendorID,
			&h.ActorID,
			&h.FromProgress,
			&h.ToProgress,
			&h.Status,
			&h.RecordedAt,
		); err != nil {
			r.logger.Error("Failed to scan history row",
				zap.Error(err),
				zap.String("project_id", projectID),
			)
			return nil, err
		}
		entries = append(entries, h)
	}
	return entries, nil
}
