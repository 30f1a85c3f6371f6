package assessment

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	assessmentTypes "github.com/Lokeshwar-goud/Psyvana/pkg/assessment/types"
)

var (
	ErrNoSelection      = errors.New("no option selected for the current question")
	ErrSessionCompleted = errors.New("assessment already completed")
	ErrSessionNotFound  = errors.New("assessment session not found")
)

const SESSION_DEFAULT_TTL = 2 * time.Hour

// Session walks a user through the ordered question list, one question at
// a time, and collects the chosen option values. A session belongs to one
// user interaction; its partial answers are discarded when it expires
// without completion.
type Session struct {
	ID            string
	UserID        string
	Questionnaire assessmentTypes.Questionnaire
	Questions     []assessmentTypes.Question

	position  int
	answers   assessmentTypes.Answers
	completed bool
	expiresAt time.Time
}

func NewSession(userID string, questionnaire assessmentTypes.Questionnaire, questions []assessmentTypes.Question) *Session {
	return &Session{
		ID:            uuid.NewString(),
		UserID:        userID,
		Questionnaire: questionnaire,
		Questions:     questions,
		answers:       assessmentTypes.Answers{},
		expiresAt:     time.Now().Add(SESSION_DEFAULT_TTL),
	}
}

// Position returns the 0-indexed position of the current question.
func (s *Session) Position() int {
	return s.position
}

func (s *Session) CurrentQuestion() (assessmentTypes.Question, bool) {
	if s.completed || s.position >= len(s.Questions) {
		return assessmentTypes.Question{}, false
	}
	return s.Questions[s.position], true
}

// SelectOption records the value for the current question, overwriting an
// earlier selection for the same question.
func (s *Session) SelectOption(value int) error {
	question, ok := s.CurrentQuestion()
	if !ok {
		return ErrSessionCompleted
	}
	s.answers[question.ID.Hex()] = value
	return nil
}

// Advance moves to the next question. It fails with ErrNoSelection while
// the current question has no recorded answer - the final question is
// validated exactly like every other one. Advancing past the final
// question puts the session into its terminal completed state.
func (s *Session) Advance() (completed bool, err error) {
	question, ok := s.CurrentQuestion()
	if !ok {
		return false, ErrSessionCompleted
	}
	if _, answered := s.answers[question.ID.Hex()]; !answered {
		return false, ErrNoSelection
	}

	s.position++
	if s.position >= len(s.Questions) {
		s.completed = true
	}
	return s.completed, nil
}

func (s *Session) Completed() bool {
	return s.completed
}

func (s *Session) Expired() bool {
	return time.Now().After(s.expiresAt)
}

// Answers returns a copy of the collected answer mapping.
func (s *Session) Answers() assessmentTypes.Answers {
	answers := make(assessmentTypes.Answers, len(s.answers))
	for questionID, value := range s.answers {
		answers[questionID] = value
	}
	return answers
}

// SessionStore keeps in-progress sessions in memory. A session is owned by
// exactly one user interaction, so no record level locking is needed; the
// store mutex only protects the map.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: map[string]*Session{},
	}
}

func (store *SessionStore) Add(session *Session) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pruneExpired()
	store.sessions[session.ID] = session
}

// Get returns the session for the given user. A session of another user is
// not visible.
func (store *SessionStore) Get(sessionID string, userID string) (*Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	session, ok := store.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	if session.Expired() {
		delete(store.sessions, sessionID)
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (store *SessionStore) Remove(sessionID string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	delete(store.sessions, sessionID)
}

func (store *SessionStore) pruneExpired() {
	for id, session := range store.sessions {
		if session.Expired() {
			delete(store.sessions, id)
		}
	}
}
