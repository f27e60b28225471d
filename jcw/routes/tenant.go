package routes

import (
	"bytes"
	"net/http"

	"jcw/jcw/controllers"
	"jcw/jcw/services/tenant"
	"jcw/jcw/utils/logging"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func tenantStatus(s tenant.State) int {
	switch s {
	case tenant.StateWelcome:
		return http.StatusOK
	case tenant.StateInvalidSubdomain:
		return http.StatusBadRequest
	case tenant.StateNotFound:
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// TenantRoutes registers GET /tenant (HTML) and GET /tenant.json on r.
func TenantRoutes(r chi.Router, ctrl *controllers.TenantController) {
	r.Get("/tenant", func(w http.ResponseWriter, r *http.Request) {
		view := ctrl.Resolve(r.Context(), r.Host, r.URL.Query())
		var buf bytes.Buffer
		if err := ctrl.Render(&buf, view); err != nil {
			logging.ErrorLogger.Error("tenant view render failed", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(tenantStatus(view.State))
		buf.WriteTo(w)
	})

	r.Get("/tenant.json", func(w http.ResponseWriter, r *http.Request) {
		view := ctrl.Resolve(r.Context(), r.Host, r.URL.Query())
		writeJSON(w, tenantStatus(view.State), view)
	})
}
