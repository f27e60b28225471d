package controllers

import (
	"context"
	"fmt"

	"jcw/jcw/services/activity"
	"jcw/jcw/services/templates"
	"jcw/jcw/sources/psql/models"
	"jcw/jcw/utils/types"
)

// TemplatesController proxies the template admin API and records mutations.
type TemplatesController struct {
	client   *templates.Client
	activity *activity.Recorder
}

func NewTemplatesController(client *templates.Client, rec *activity.Recorder) *TemplatesController {
	return &TemplatesController{client: client, activity: rec}
}

func (c *TemplatesController) record(ctx context.Context, action, id, desc string) {
	c.activity.Record(ctx, activity.Entry{
		Action:       action,
		ResourceType: models.ResourceTemplate,
		ResourceID:   id,
		Description:  desc,
	})
}

func (c *TemplatesController) List(ctx context.Context, category string) ([]types.Template, error) {
	return c.client.List(ctx, category)
}

func (c *TemplatesController) Get(ctx context.Context, id string) (types.Template, error) {
	return c.client.Get(ctx, id)
}

func (c *TemplatesController) Code(ctx context.Context, id string) (types.TemplateCode, error) {
	return c.client.Code(ctx, id)
}

func (c *TemplatesController) Categories(ctx context.Context) ([]types.Category, error) {
	return c.client.Categories(ctx)
}

func (c *TemplatesController) Stats(ctx context.Context) (types.TemplateStats, error) {
	return c.client.Stats(ctx)
}

func (c *TemplatesController) Upload(ctx context.Context, in types.TemplateUpload) (types.Template, error) {
	tpl, err := c.client.Upload(ctx, in)
	if err != nil {
		return types.Template{}, err
	}
	c.record(ctx, models.ActionCreate, tpl.ID, fmt.Sprintf("uploaded template %q", tpl.Name))
	return tpl, nil
}

func (c *TemplatesController) Update(ctx context.Context, id string, fields map[string]any) (types.Template, error) {
	tpl, err := c.client.Update(ctx, id, fields)
	if err != nil {
		return types.Template{}, err
	}
	c.record(ctx, models.ActionUpdate, id, fmt.Sprintf("updated template %q", tpl.Name))
	return tpl, nil
}

func (c *TemplatesController) ToggleStatus(ctx context.Context, id string) (types.Template, error) {
	tpl, err := c.client.ToggleStatus(ctx, id)
	if err != nil {
		return types.Template{}, err
	}
	state := "deactivated"
	if tpl.IsActive {
		state = "activated"
	}
	c.record(ctx, models.ActionUpdate, id, fmt.Sprintf("%s template %q", state, tpl.Name))
	return tpl, nil
}

func (c *TemplatesController) Delete(ctx context.Context, id string) error {
	if err := c.client.Delete(ctx, id); err != nil {
		return err
	}
	c.record(ctx, models.ActionDelete, id, "deleted template")
	return nil
}
