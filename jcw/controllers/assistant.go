package controllers

import (
	"context"
	"errors"
	"strings"

	"jcw/jcw/services/activity"
	"jcw/jcw/services/indexer"
	"jcw/jcw/services/responder"
	"jcw/jcw/sources/psql/models"
	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"go.uber.org/zap"
)

const AssistantRunning = "AI Assistant API is running"

var ErrMessageRequired = errors.New("message is required")

type AssistantController struct {
	indexer  *indexer.Indexer
	activity *activity.Recorder
}

func NewAssistantController(ix *indexer.Indexer, rec *activity.Recorder) *AssistantController {
	return &AssistantController{indexer: ix, activity: rec}
}

// Ask answers one visitor question. The message must be a non-blank string;
// anything else is ErrMessageRequired.
func (c *AssistantController) Ask(ctx context.Context, req types.AssistantRequest) (types.AssistantResponse, error) {
	defer logging.LogDuration(ctx, "assistant_ask")()

	message, ok := req.Message.(string)
	if !ok || strings.TrimSpace(message) == "" {
		return types.AssistantResponse{}, ErrMessageRequired
	}

	if err := c.indexer.EnsureFresh(ctx); err != nil {
		logging.ErrorLogger.Error("content refresh failed", zap.Error(err))
		if len(c.indexer.IndexedPaths()) == 0 {
			return types.AssistantResponse{}, err
		}
	}

	path := req.Context
	if path == "" {
		path = "/"
	}
	current := c.indexer.PageContent(path)
	rule := responder.Match(message)
	answer := responder.Respond(message, c.indexer.AggregateText(), &current)

	c.activity.Record(ctx, activity.Entry{
		Action:       models.ActionAsk,
		ResourceType: models.ResourceAssistant,
		ResourceID:   path,
		Description:  message,
		Metadata:     map[string]any{"topic": string(rule.Topic)},
	})
	return types.AssistantResponse{Response: answer}, nil
}

func (c *AssistantController) Status() types.AssistantStatus {
	return types.AssistantStatus{
		Status:       AssistantRunning,
		IndexedPages: c.indexer.IndexedPaths(),
	}
}
