// jcw/sources/psql/models/activity.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionView   = "view"
	ActionLogin  = "login"
	ActionAsk    = "ask"

	ResourceTemplate  = "template"
	ResourceTenant    = "tenant"
	ResourceAssistant = "assistant"
	ResourceAdmin     = "admin"
)

type ActivityLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ActionType   string    `json:"action_type" gorm:"type:varchar(32);not null;index"`
	ResourceType string    `json:"resource_type" gorm:"type:varchar(32);not null;index"`
	ResourceID   string    `json:"resource_id" gorm:"type:varchar(255);default:''"`
	Description  string    `json:"description" gorm:"type:text"`
	Metadata     string    `json:"metadata" gorm:"type:text;default:'{}'"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}

func (a *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
