package middlewares

import (
	"context"
	"net/http"
	"strings"

	"jcw/jcw/services/tenant"
)

const TenantSlugKey contextKey = "tenant_slug"

// TenantHeaders tags subdomain requests with the tenant slug. The bare
// platform hosts (www, localhost, 127.x) pass through untouched.
func TenantHeaders(suffixes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !tenant.IsSubdomainHost(r.Host, suffixes) {
				next.ServeHTTP(w, r)
				return
			}
			slug, _, _ := strings.Cut(r.Host, ".")
			switch slug {
			case "www", "localhost", "127":
				next.ServeHTTP(w, r)
				return
			}
			w.Header().Set("X-Tenant-Slug", slug)
			w.Header().Set("X-Tenant-Domain", r.Host)
			ctx := context.WithValue(r.Context(), TenantSlugKey, slug)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func TenantSlugFrom(ctx context.Context) string {
	slug, _ := ctx.Value(TenantSlugKey).(string)
	return slug
}
