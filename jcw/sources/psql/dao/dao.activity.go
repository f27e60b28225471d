// jcw/sources/psql/dao/dao.activity.go
package dao

import (
	"context"

	"jcw/jcw/sources/psql/models"

	"gorm.io/gorm"
)

type ActivityDAO struct {
	DB *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{DB: db}
}

func (dao *ActivityDAO) Create(ctx context.Context, entry *models.ActivityLog) error {
	return dao.DB.WithContext(ctx).Create(entry).Error
}

// ListRecent returns the newest entries first. resourceType filters when set.
func (dao *ActivityDAO) ListRecent(ctx context.Context, resourceType string, limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	q := dao.DB.WithContext(ctx).Order("created_at desc")
	if resourceType != "" {
		q = q.Where("resource_type = ?", resourceType)
	}
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (dao *ActivityDAO) CountByAction(ctx context.Context, action string) (int64, error) {
	var n int64
	err := dao.DB.WithContext(ctx).Model(&models.ActivityLog{}).Where("action_type = ?", action).Count(&n).Error
	return n, err
}
