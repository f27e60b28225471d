// jcw/utils/types/assistant.go
package types

import "time"

// AssistantRequest is the body of POST /assistant. Message is kept raw so a
// non-string value can be told apart from a missing one.
type AssistantRequest struct {
	Message any    `json:"message"`
	Context string `json:"context,omitempty"`
}

type AssistantResponse struct {
	Response string `json:"response"`
}

type AssistantStatus struct {
	Status       string   `json:"status"`
	IndexedPages []string `json:"indexedPages"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"is_user"`
	Timestamp time.Time `json:"timestamp"`
}
