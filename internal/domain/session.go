package domain

import (
	"fmt"
	"strings"
	"sync"
)

// Phase is the stage of a reveal session.
type Phase string

// Session phases. A session moves Editing -> Loading -> Result, and back to
// Editing only through Reset. Failures never return a session to Editing.
const (
	PhaseEditing Phase = "editing"
	PhaseLoading Phase = "loading"
	PhaseResult  Phase = "result"
)

// Session holds the transient state of one interaction: the input, the
// request phase, and the revealed meaning. It is safe for concurrent use and
// admits at most one in-flight request.
type Session struct {
	mu       sync.Mutex
	name     string
	language Language
	meaning  string
	phase    Phase
	observer TransitionFunc
}

// TransitionFunc is called after every phase change, outside the session lock.
type TransitionFunc func(from, to Phase)

// NewSession creates a session in the Editing phase.
func NewSession(name string, lang Language) *Session {
	if !lang.IsValid() {
		lang = LanguageEnglish
	}
	return &Session{
		name:     name,
		language: lang,
		phase:    PhaseEditing,
	}
}

// Snapshot is a point-in-time copy of a Session.
type Snapshot struct {
	Name     string   `json:"name"`
	Language Language `json:"language"`
	Meaning  string   `json:"meaning"`
	Phase    Phase    `json:"phase"`
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Name:     s.name,
		Language: s.language,
		Meaning:  s.meaning,
		Phase:    s.phase,
	}
}

// Observe registers fn to receive phase changes. A nil fn removes the observer.
func (s *Session) Observe(fn TransitionFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer = fn
}

// notify reports a transition; callers must not hold the lock.
func (s *Session) notify(fn TransitionFunc, from, to Phase) {
	if fn != nil && from != to {
		fn(from, to)
	}
}

// BeginLoading moves the session into Loading and clears the previous result.
// It fails without changing state when the trimmed name is empty or a request
// is already in flight. The returned snapshot is the input to reveal.
func (s *Session) BeginLoading() (Snapshot, error) {
	s.mu.Lock()

	if strings.TrimSpace(s.name) == "" {
		s.mu.Unlock()
		return Snapshot{}, NewValidationError("name", "is required", ErrEmptyName)
	}
	if s.phase == PhaseLoading {
		s.mu.Unlock()
		return Snapshot{}, ErrAlreadyLoading
	}

	from, fn := s.phase, s.observer
	s.phase = PhaseLoading
	s.meaning = ""
	snap := Snapshot{
		Name:     s.name,
		Language: s.language,
		Phase:    s.phase,
	}
	s.mu.Unlock()

	s.notify(fn, from, PhaseLoading)
	return snap, nil
}

// Complete stores the meaning and moves the session from Loading to Result.
func (s *Session) Complete(meaning string) error {
	s.mu.Lock()

	if s.phase != PhaseLoading {
		phase := s.phase
		s.mu.Unlock()
		return fmt.Errorf("%w: complete from %s", ErrInvalidTransition, phase)
	}
	fn := s.observer
	s.meaning = meaning
	s.phase = PhaseResult
	s.mu.Unlock()

	s.notify(fn, PhaseLoading, PhaseResult)
	return nil
}

// Reset clears the name, the meaning and all flags, returning to Editing from
// any phase. The selected language is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	from, fn := s.phase, s.observer
	s.name = ""
	s.meaning = ""
	s.phase = PhaseEditing
	s.mu.Unlock()

	s.notify(fn, from, PhaseEditing)
}

// SharePayload is what a share target receives for a revealed meaning.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// ShareTitle is the title used for every shared meaning.
const ShareTitle = "My Name Magic"

// SharePayload builds the payload for the current result. url may be empty.
func (s *Session) SharePayload(url string) (SharePayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseResult {
		return SharePayload{}, ErrNothingToShare
	}
	return NewSharePayload(s.name, s.meaning, url), nil
}

// NewSharePayload builds a share payload for name and meaning.
func NewSharePayload(name, meaning, url string) SharePayload {
	return SharePayload{
		Title: ShareTitle,
		Text:  fmt.Sprintf("%s is a %s", name, meaning),
		URL:   url,
	}
}
