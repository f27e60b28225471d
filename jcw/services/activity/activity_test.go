package activity

import (
	"context"
	"testing"

	"jcw/jcw/sources/psql"
	"jcw/jcw/sources/psql/dao"
	"jcw/jcw/sources/psql/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestRecorderWithoutDatabase(t *testing.T) {
	var nilRec *Recorder
	nilRec.Record(context.Background(), Entry{Action: models.ActionAsk})

	r := NewRecorder(nil)
	assert.False(t, r.Enabled())
	r.Record(context.Background(), Entry{Action: models.ActionAsk})
	list, err := r.Recent(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestRecorderPersistsMetadata(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, psql.Migrate(context.Background(), db))

	r := NewRecorder(dao.NewActivityDAO(db))
	r.Record(context.Background(), Entry{
		Action:       models.ActionAsk,
		ResourceType: models.ResourceAssistant,
		Description:  "how much",
		Metadata:     map[string]any{"topic": "pricing"},
	})
	r.Record(context.Background(), Entry{Action: models.ActionView, ResourceType: models.ResourceTenant, ResourceID: "acme"})

	list, err := r.Recent(context.Background(), models.ResourceAssistant, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"topic":"pricing"}`, list[0].Metadata)

	all, err := r.Recent(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
