// This file implements the query session state machine.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"policychat/internal/api"
)

// Fixed user-visible strings. Raw upstream detail never reaches the
// conversation log; it only goes to the diagnostics log.
const (
	// FallbackAnswer replaces an empty answer field in a well-formed response.
	FallbackAnswer = "I could not generate a response for that question."
	// ApologyMessage is the assistant entry appended for any transport failure.
	ApologyMessage = "I'm sorry, something went wrong while answering your question. Please try again."
	// ErrorBanner is the short retryable-failure notice shown outside the log.
	ErrorBanner = "The request could not be completed. Please try again."
)

// Sentinel errors returned by Submit. Both mean "no request should be sent".
var (
	ErrEmptyQuestion = errors.New("session: question is empty")
	ErrBusy          = errors.New("session: a question is already in flight")
)

// Submission is the token handed out by Submit and required by Resolve.
// It ties an in-flight request to the conversation state it was issued
// against, so responses arriving after a Clear are discarded.
type Submission struct {
	Question string

	id    string
	epoch int
}

// Options configures a Session.
type Options struct {
	Greeting    string // seeded assistant message; empty disables seeding
	HistorySize int
	Logger      *zap.Logger
	OnChange    func() // invoked after every state mutation; may be nil
	Now         func() time.Time
}

// Session owns the ordered conversation log and drives the
// submit -> pending -> resolved lifecycle for each question.
//
// A Session is owned by a single goroutine (the UI event loop) and takes no
// locks. All mutation must happen on that goroutine; the transport call
// itself runs elsewhere and reports back through Resolve.
type Session struct {
	greeting string
	history  *History
	logger   *zap.Logger
	onChange func()
	now      func() time.Time

	messages []Message
	pending  *Submission
	epoch    int
	lastErr  string
}

// New creates a Session, seeded with the configured greeting when one is set.
func New(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		greeting: opts.Greeting,
		history:  NewHistory(opts.HistorySize),
		logger:   opts.Logger,
		onChange: opts.OnChange,
		now:      opts.Now,
	}
	s.messages = s.seed()
	return s
}

// Submit validates and registers one question. On success it appends the
// user message immediately, marks the session busy, clears any previous
// error, and returns the Submission the transport result must be resolved
// with. ErrEmptyQuestion and ErrBusy submissions leave all state untouched.
func (s *Session) Submit(text string) (Submission, error) {
	question := strings.TrimSpace(text)
	if question == "" {
		return Submission{}, ErrEmptyQuestion
	}
	if s.pending != nil {
		return Submission{}, ErrBusy
	}

	s.lastErr = ""
	s.messages = append(s.messages, Message{
		Role:      RoleUser,
		Content:   question,
		CreatedAt: s.now(),
	})

	sub := Submission{
		Question: question,
		id:       uuid.NewString(),
		epoch:    s.epoch,
	}
	s.pending = &sub

	s.logger.Debug("question submitted", zap.String("submission_id", sub.id))
	s.notify()
	return sub, nil
}

// Resolve completes a submission with the transport outcome. Exactly one
// assistant message is appended per live submission, success or failure.
//
// If the conversation was cleared while the request was in flight, the
// response is dropped rather than resurrecting the cleared log; the busy
// flag the submission held is still released.
func (s *Session) Resolve(sub Submission, resp *api.QueryResponse, callErr error) {
	if sub.epoch != s.epoch {
		if s.pending != nil && s.pending.id == sub.id {
			s.pending = nil
			s.logger.Debug("stale response discarded", zap.String("submission_id", sub.id))
			s.notify()
		}
		return
	}
	if s.pending == nil || s.pending.id != sub.id {
		// Unknown or already-resolved submission.
		return
	}
	s.pending = nil

	if callErr != nil || resp == nil {
		s.messages = append(s.messages, Message{
			Role:      RoleAssistant,
			Content:   ApologyMessage,
			Sources:   []Citation{},
			CreatedAt: s.now(),
		})
		s.lastErr = ErrorBanner
		s.logger.Warn("submission failed",
			zap.String("submission_id", sub.id),
			zap.Error(callErr))
		s.notify()
		return
	}

	content := resp.Answer
	if strings.TrimSpace(content) == "" {
		content = FallbackAnswer
	}

	s.messages = append(s.messages, Message{
		Role:            RoleAssistant,
		Content:         content,
		Sources:         NormalizeSources(resp.Sources),
		ConfidenceScore: resp.ConfidenceScore,
		CreatedAt:       s.now(),
	})
	s.history.Record(sub.Question)
	s.notify()
}

// Clear replaces the log with the seeded greeting (or the empty sequence)
// and clears the error banner. It does not cancel an outstanding request:
// the busy flag stays until the in-flight response arrives, at which point
// Resolve discards it.
func (s *Session) Clear() {
	s.epoch++
	s.messages = s.seed()
	s.lastErr = ""
	s.logger.Debug("conversation cleared")
	s.notify()
}

// Messages returns a copy of the conversation log in order.
func (s *Session) Messages() []Message {
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Busy reports whether a question is in flight.
func (s *Session) Busy() bool {
	return s.pending != nil
}

// LastError returns the current retryable-failure notice, or "" when none.
func (s *Session) LastError() string {
	return s.lastErr
}

// History returns the recent successfully answered questions,
// most recent first.
func (s *Session) History() []string {
	return s.history.Items()
}

func (s *Session) seed() []Message {
	if s.greeting == "" {
		return []Message{}
	}
	return []Message{{
		Role:      RoleAssistant,
		Content:   s.greeting,
		CreatedAt: s.now(),
	}}
}

func (s *Session) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}
