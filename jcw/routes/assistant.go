package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"jcw/jcw/controllers"
	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	msgRequired      = "Message is required"
	msgProcessFailed = "Failed to process request"
)

// ask maps controller errors onto the public status and message. A panic
// below it is answered like any other unexpected failure, which also keeps
// one bad websocket frame from dropping the connection.
func ask(ctx context.Context, ctrl *controllers.AssistantController, req types.AssistantRequest) (resp types.AssistantResponse, status int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.ErrorLogger.Error("AI Assistant panic", zap.Any("panic", rec), zap.Stack("stack"))
			resp, status, err = types.AssistantResponse{}, http.StatusInternalServerError, fail(msgProcessFailed)
		}
	}()

	resp, err = ctrl.Ask(ctx, req)
	switch {
	case err == nil:
		return resp, http.StatusOK, nil
	case errors.Is(err, controllers.ErrMessageRequired):
		return resp, http.StatusBadRequest, fail(msgRequired)
	default:
		logging.ErrorLogger.Error("AI Assistant error", zap.Error(err))
		return resp, http.StatusInternalServerError, fail(msgProcessFailed)
	}
}

// AssistantRoutes serves the assistant. originPatterns lists the extra hosts
// allowed to open the websocket; the request's own host is always allowed.
func AssistantRoutes(ctrl *controllers.AssistantController, originPatterns []string) chi.Router {
	r := chi.NewRouter()

	r.Group(func(gr chi.Router) {
		gr.Use(middleware.Timeout(60 * time.Second))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			var req types.AssistantRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				logging.ErrorLogger.Error("AI Assistant error", zap.Error(err))
				return nil, http.StatusInternalServerError, fail(msgProcessFailed)
			}
			resp, status, err := ask(r.Context(), ctrl, req)
			if err != nil {
				return nil, status, err
			}
			return resp, status, nil
		}))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			return ctrl.Status(), http.StatusOK, nil
		}))
	})

	// each text frame is one question; the connection stays open for more
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{OriginPatterns: originPatterns})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				if websocket.CloseStatus(err) == websocket.StatusNormalClosure {
					conn.Close(websocket.StatusNormalClosure, "")
				}
				return
			}
			if typ != websocket.MessageText {
				conn.Close(websocket.StatusUnsupportedData, "unsupported data")
				return
			}

			var req types.AssistantRequest
			if err := json.Unmarshal(data, &req); err != nil {
				if err := wsjson.Write(ctx, conn, types.ErrorResponse{Error: "invalid json"}); err != nil {
					return
				}
				continue
			}
			resp, _, err := ask(ctx, ctrl, req)
			if err != nil {
				err = wsjson.Write(ctx, conn, types.ErrorResponse{Error: err.Error()})
			} else {
				err = wsjson.Write(ctx, conn, resp)
			}
			if err != nil {
				return
			}
		}
	})
	return r
}
