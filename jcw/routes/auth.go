// jcw/routes/auth.go
package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"jcw/jcw/controllers"
	"jcw/jcw/utils/types"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()
	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, fail("invalid request body")
		}
		token, err := ctrl.Login(r.Context(), req.Username, req.Password)
		switch {
		case errors.Is(err, controllers.ErrInvalidCredentials):
			return nil, http.StatusUnauthorized, err
		case errors.Is(err, controllers.ErrAuthDisabled):
			return nil, http.StatusServiceUnavailable, err
		case err != nil:
			return nil, http.StatusInternalServerError, fail("login failed")
		}
		return types.LoginResponse{Token: token}, http.StatusOK, nil
	}))
	return r
}
