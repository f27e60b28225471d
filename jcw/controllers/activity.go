package controllers

import (
	"context"

	"jcw/jcw/services/activity"
	"jcw/jcw/sources/psql/models"
)

const defaultActivityLimit = 50

type ActivityController struct {
	activity *activity.Recorder
}

func NewActivityController(rec *activity.Recorder) *ActivityController {
	return &ActivityController{activity: rec}
}

func (c *ActivityController) Recent(ctx context.Context, resourceType string, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 500 {
		limit = defaultActivityLimit
	}
	return c.activity.Recent(ctx, resourceType, limit)
}
