package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"jcw/jcw/config"
	"jcw/jcw/controllers"
	"jcw/jcw/middlewares"
	"jcw/jcw/services/templates"
	httputils "jcw/jcw/utils/http"
	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxUploadSize = 10 << 20

// upstream maps a template API failure onto our response. Upstream statuses
// and messages pass through; anything else is a bad gateway.
func upstream(err error) (any, int, error) {
	if errors.Is(err, templates.ErrMissingField) {
		return nil, http.StatusBadRequest, err
	}
	var apiErr *httputils.APIError
	if errors.As(err, &apiErr) {
		return nil, apiErr.Status, fail(apiErr.Message)
	}
	logging.ErrorLogger.Error("template api unreachable", zap.Error(err))
	return nil, http.StatusBadGateway, fail("Request failed")
}

func AdminRoutes(tpl *controllers.TemplatesController, act *controllers.ActivityController, cfg config.Config) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(cfg))

		gr.Route("/templates", func(tr chi.Router) {
			tr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
				list, err := tpl.List(r.Context(), r.URL.Query().Get("category"))
				if err != nil {
					return upstream(err)
				}
				return list, http.StatusOK, nil
			}))

			tr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
				if err := r.ParseMultipartForm(maxUploadSize); err != nil {
					return nil, http.StatusBadRequest, fail("invalid multipart form")
				}
				in := types.TemplateUpload{
					Name:        r.FormValue("name"),
					Category:    r.FormValue("category"),
					Description: r.FormValue("description"),
					WebsiteType: r.FormValue("website_type"),
				}
				if f, hdr, err := r.FormFile("preview_image"); err == nil {
					defer f.Close()
					in.PreviewImage = f
					in.PreviewImageName = hdr.Filename
				}
				created, err := tpl.Upload(r.Context(), in)
				if err != nil {
					return upstream(err)
				}
				return created, http.StatusCreated, nil
			}))

			tr.Get("/categories", handleJSON(func(r *http.Request) (any, int, error) {
				cats, err := tpl.Categories(r.Context())
				if err != nil {
					return upstream(err)
				}
				return cats, http.StatusOK, nil
			}))

			tr.Get("/stats", handleJSON(func(r *http.Request) (any, int, error) {
				stats, err := tpl.Stats(r.Context())
				if err != nil {
					return upstream(err)
				}
				return stats, http.StatusOK, nil
			}))

			tr.Get("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
				t, err := tpl.Get(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					return upstream(err)
				}
				return t, http.StatusOK, nil
			}))

			tr.Patch("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
				var fields map[string]any
				if err := json.NewDecoder(r.Body).Decode(&fields); err != nil || len(fields) == 0 {
					return nil, http.StatusBadRequest, fail("invalid request body")
				}
				t, err := tpl.Update(r.Context(), chi.URLParam(r, "id"), fields)
				if err != nil {
					return upstream(err)
				}
				return t, http.StatusOK, nil
			}))

			tr.Delete("/{id}", handleJSON(func(r *http.Request) (any, int, error) {
				if err := tpl.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
					return upstream(err)
				}
				return nil, http.StatusNoContent, nil
			}))

			tr.Get("/{id}/code", handleJSON(func(r *http.Request) (any, int, error) {
				code, err := tpl.Code(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					return upstream(err)
				}
				return code, http.StatusOK, nil
			}))

			tr.Post("/{id}/toggle", handleJSON(func(r *http.Request) (any, int, error) {
				t, err := tpl.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
				if err != nil {
					return upstream(err)
				}
				return t, http.StatusOK, nil
			}))
		})

		gr.Get("/activity", handleJSON(func(r *http.Request) (any, int, error) {
			limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
			entries, err := act.Recent(r.Context(), r.URL.Query().Get("resource_type"), limit)
			if err != nil {
				logging.ErrorLogger.Error("activity list failed", zap.Error(err))
				return nil, http.StatusInternalServerError, fail("failed to load activity")
			}
			return entries, http.StatusOK, nil
		}))
	})
	return r
}
