package assistant

import (
	"context"
	"errors"
	"net/http"
	"time"

	httputils "jcw/jcw/utils/http"
	"jcw/jcw/utils/types"
)

// HTTPTransport posts questions to the server's /assistant endpoint.
type HTTPTransport struct {
	URL    string
	Client *http.Client
}

func NewHTTPTransport(url string) *HTTPTransport {
	return &HTTPTransport{URL: url, Client: &http.Client{Timeout: 30 * time.Second}}
}

func (t *HTTPTransport) Ask(ctx context.Context, message, page string) (string, error) {
	var out types.AssistantResponse
	req := types.AssistantRequest{Message: message, Context: page}
	if err := httputils.PostJSON(ctx, t.Client, t.URL, req, &out); err != nil {
		return "", err
	}
	if out.Response == "" {
		return "", errors.New("empty assistant response")
	}
	return out.Response, nil
}
