// Package activity records what admins and visitors did, for the admin feed.
package activity

import (
	"context"
	"encoding/json"

	"jcw/jcw/sources/psql/dao"
	"jcw/jcw/sources/psql/models"
	"jcw/jcw/utils/logging"

	"go.uber.org/zap"
)

type Entry struct {
	Action       string
	ResourceType string
	ResourceID   string
	Description  string
	Metadata     map[string]any
}

// Recorder is nil-safe: a Recorder without a DAO only logs.
type Recorder struct {
	dao *dao.ActivityDAO
}

func NewRecorder(d *dao.ActivityDAO) *Recorder {
	return &Recorder{dao: d}
}

func (r *Recorder) Enabled() bool {
	return r != nil && r.dao != nil
}

// Record stores e. Failures are logged and swallowed; activity is never
// allowed to fail the request that produced it.
func (r *Recorder) Record(ctx context.Context, e Entry) {
	logging.AppLogger.Info("activity",
		zap.String("action", e.Action),
		zap.String("resource_type", e.ResourceType),
		zap.String("resource_id", e.ResourceID),
	)
	if !r.Enabled() {
		return
	}

	meta := "{}"
	if len(e.Metadata) > 0 {
		if raw, err := json.Marshal(e.Metadata); err == nil {
			meta = string(raw)
		}
	}
	row := &models.ActivityLog{
		ActionType:   e.Action,
		ResourceType: e.ResourceType,
		ResourceID:   e.ResourceID,
		Description:  e.Description,
		Metadata:     meta,
	}
	if err := r.dao.Create(ctx, row); err != nil {
		logging.ErrorLogger.Error("activity record failed", zap.Error(err))
	}
}

// Recent returns an empty list when no database is configured.
func (r *Recorder) Recent(ctx context.Context, resourceType string, limit int) ([]models.ActivityLog, error) {
	if !r.Enabled() {
		return []models.ActivityLog{}, nil
	}
	return r.dao.ListRecent(ctx, resourceType, limit)
}
