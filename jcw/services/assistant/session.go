// Package assistant holds the client side of the chat widget: a conversation
// log plus the request state machine around a single in-flight question.
package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"jcw/jcw/utils/logging"
	"jcw/jcw/utils/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	WelcomeText = "Hi! I'm your Just Code Works assistant. I can help you choose the perfect website solution and answer any questions about our services. What can I help you with today?"
	ApologyText = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment or contact us directly for assistance."
)

var (
	ErrEmpty = errors.New("message is empty")
	ErrBusy  = errors.New("a response is still pending")
)

type State int

const (
	Idle State = iota
	AwaitingResponse
	DisplayingResponse
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingResponse:
		return "awaiting_response"
	case DisplayingResponse:
		return "displaying_response"
	case Error:
		return "error"
	}
	return "unknown"
}

// Transport delivers one question and returns the answer text.
type Transport interface {
	Ask(ctx context.Context, message, page string) (string, error)
}

type Session struct {
	transport Transport
	now       func() time.Time
	onChange  func(State)

	mu       sync.Mutex
	state    State
	page     string
	messages []types.ChatMessage
}

type Option func(*Session)

// WithPage sets the page path sent as context with each question.
func WithPage(path string) Option {
	return func(s *Session) { s.page = path }
}

// WithStateHook is called, outside the session lock, on every transition.
func WithStateHook(fn func(State)) Option {
	return func(s *Session) { s.onChange = fn }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession starts a conversation seeded with the welcome message.
func NewSession(transport Transport, opts ...Option) *Session {
	s := &Session{
		transport: transport,
		now:       time.Now,
		page:      "/",
	}
	for _, opt := range opts {
		opt(s)
	}
	s.messages = []types.ChatMessage{s.newMessage(WelcomeText, false)}
	return s
}

func (s *Session) newMessage(text string, isUser bool) types.ChatMessage {
	return types.ChatMessage{ID: uuid.NewString(), Text: text, IsUser: isUser, Timestamp: s.now()}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Messages returns a copy of the conversation so far.
func (s *Session) Messages() []types.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) SetPage(path string) {
	s.mu.Lock()
	s.page = path
	s.mu.Unlock()
}

func (s *Session) notify(st State) {
	if s.onChange != nil {
		s.onChange(st)
	}
}

// Submit sends text and appends the answer, or the apology when the transport
// fails. Blank text returns ErrEmpty and a second call while one is pending
// returns ErrBusy; neither touches the conversation. The returned message is
// the one appended for the assistant.
func (s *Session) Submit(ctx context.Context, text string) (types.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return types.ChatMessage{}, ErrEmpty
	}

	s.mu.Lock()
	if s.state == AwaitingResponse {
		s.mu.Unlock()
		return types.ChatMessage{}, ErrBusy
	}
	s.messages = append(s.messages, s.newMessage(text, true))
	s.state = AwaitingResponse
	page := s.page
	s.mu.Unlock()
	s.notify(AwaitingResponse)

	answer, err := s.transport.Ask(ctx, text, page)

	next := DisplayingResponse
	if err != nil {
		logging.ErrorLogger.Error("assistant request failed", zap.Error(err))
		answer = ApologyText
		next = Error
	}
	reply := s.newMessage(answer, false)

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.state = next
	s.mu.Unlock()
	s.notify(next)

	s.mu.Lock()
	s.state = Idle
	s.mu.Unlock()
	s.notify(Idle)

	return reply, nil
}
