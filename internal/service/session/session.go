// Package session keeps each visitor's in-progress form between requests.
package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"bestchungsan/internal/form"
	"bestchungsan/internal/model"
	"bestchungsan/internal/report"
)

var (
	ErrNoConsent = errors.New("privacy consent is required")
	ErrInFlight  = errors.New("a submission is already being sent")
)

// Session is one visitor's form and its result state.
type Session struct {
	ID string

	mu       sync.Mutex
	holder   *form.Holder
	reporter *report.Reporter
	alert    string
}

func newSession(id string) *Session {
	h := form.NewHolder()
	return &Session{ID: id, holder: h, reporter: report.NewReporter(h)}
}

// View is a consistent copy of the session for rendering. Alert is the
// pending one-shot flash; View leaves it in place, TakeAlert clears it.
type View struct {
	Submission model.Submission
	State      report.State
	Message    string
	Alert      string
	Submitting bool
}

func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View{
		Submission: s.holder.Snapshot(),
		State:      s.reporter.State(),
		Message:    s.reporter.Message(),
		Alert:      s.alert,
		Submitting: s.reporter.InFlight(),
	}
}

// TakeAlert returns the pending alert and clears it.
func (s *Session) TakeAlert() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert := s.alert
	s.alert = ""
	return alert
}

// Update runs fn against the form under the session lock.
func (s *Session) Update(fn func(h *form.Holder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.holder)
}

// Begin passes the consent gate and marks a delivery as in flight. The
// returned snapshot is what must be delivered. Without consent the result
// state is left untouched and an alert is set instead.
func (s *Session) Begin() (model.Submission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reporter.InFlight() {
		return model.Submission{}, ErrInFlight
	}
	sub := s.holder.Snapshot()
	if !form.CanSubmit(sub) {
		s.alert = report.MessageConsent
		return model.Submission{}, ErrNoConsent
	}
	s.alert = ""
	if err := s.reporter.Apply(report.Attempt); err != nil {
		return model.Submission{}, err
	}
	return sub, nil
}

// Finish settles the delivery started by Begin.
func (s *Session) Finish(deliveryErr error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if deliveryErr != nil {
		return s.reporter.Apply(report.Failed)
	}
	return s.reporter.Apply(report.Delivered)
}

// Store holds sessions in memory; idle sessions expire.
type Store struct {
	cache *gocache.Cache
}

func NewStore(expiration, cleanupInterval time.Duration) *Store {
	return &Store{cache: gocache.New(expiration, cleanupInterval)}
}

// Get returns the session and refreshes its expiration.
func (st *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	x, found := st.cache.Get(id)
	if !found {
		return nil, false
	}
	sess, ok := x.(*Session)
	if !ok {
		return nil, false
	}
	st.cache.Set(id, sess, gocache.DefaultExpiration)
	return sess, true
}

// Create starts an empty session under a fresh id.
func (st *Store) Create() *Session {
	sess := newSession(uuid.NewString())
	st.cache.Set(sess.ID, sess, gocache.DefaultExpiration)
	return sess
}

// GetOrCreate returns the session for id or a new one.
func (st *Store) GetOrCreate(id string) *Session {
	if sess, ok := st.Get(id); ok {
		return sess
	}
	return st.Create()
}

func (st *Store) Len() int {
	return st.cache.ItemCount()
}
