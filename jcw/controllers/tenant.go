package controllers

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/url"

	"jcw/jcw/services/activity"
	"jcw/jcw/services/tenant"
	"jcw/jcw/sources/psql/models"
	"jcw/jcw/utils/types"
)

//go:embed views/*.html
var views embed.FS

var tenantView = template.Must(template.ParseFS(views, "views/tenant.html"))

// TenantView is both the JSON body of /tenant.json and the HTML view model.
type TenantView struct {
	State   tenant.State  `json:"state"`
	Error   string        `json:"error,omitempty"`
	Tenant  *types.Tenant `json:"tenant,omitempty"`
	HomeURL string        `json:"-"`
}

type TenantController struct {
	resolver *tenant.Resolver
	activity *activity.Recorder
	homeURL  string
}

func NewTenantController(resolver *tenant.Resolver, rec *activity.Recorder, homeURL string) *TenantController {
	return &TenantController{resolver: resolver, activity: rec, homeURL: homeURL}
}

func (c *TenantController) Resolve(ctx context.Context, host string, query url.Values) TenantView {
	res := c.resolver.Resolve(ctx, host, query)
	if res.State == tenant.StateWelcome {
		c.activity.Record(ctx, activity.Entry{
			Action:       models.ActionView,
			ResourceType: models.ResourceTenant,
			ResourceID:   res.Tenant.ID,
			Description:  res.Tenant.BusinessName,
		})
	}
	return TenantView{
		State:   res.State,
		Error:   res.State.Message(),
		Tenant:  res.Tenant,
		HomeURL: c.homeURL,
	}
}

func (c *TenantController) Render(w io.Writer, v TenantView) error {
	return tenantView.ExecuteTemplate(w, "tenant", v)
}
