// Package autosave debounces draft saves for a document being edited.
// Each burst of edits collapses into one save issued after a quiet
// period; completions are sequence-numbered so a slow save can never
// overwrite state produced by a newer one.
package autosave

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/inkwell-app/inkwell-server/internal/client/api"
)

// Status describes the saver's externally visible state.
type Status string

const (
	StatusIdle         Status = "idle"
	StatusSaving       Status = "saving"
	StatusSaved        Status = "saved"
	StatusError        Status = "error"
	StatusUnauthorized Status = "unauthorized"
)

// Document is the editable state the saver snapshots on each change.
type Document struct {
	ID      string
	Title   string
	Content string
	Tags    []string
}

func (d Document) empty() bool {
	return strings.TrimSpace(d.Title) == "" && strings.TrimSpace(d.Content) == ""
}

// SaveFunc persists a draft and returns the stored blog.
type SaveFunc func(ctx context.Context, in api.SaveBlogInput) (api.Blog, error)

// Option configures a Saver.
type Option func(*Saver)

// WithDelay overrides the quiet period before a save fires.
func WithDelay(d time.Duration) Option {
	return func(s *Saver) { s.delay = d }
}

// WithRedirectDelay overrides how long an unauthorized status is shown
// before the redirect callback runs.
func WithRedirectDelay(d time.Duration) Option {
	return func(s *Saver) { s.redirectDelay = d }
}

// WithStatusFunc registers a callback invoked on every status change.
func WithStatusFunc(fn func(Status)) Option {
	return func(s *Saver) { s.onStatus = fn }
}

// WithRedirectFunc registers a callback invoked after an unauthorized
// save, once the redirect delay elapses.
func WithRedirectFunc(fn func()) Option {
	return func(s *Saver) { s.onRedirect = fn }
}

// Saver debounces saves for one document.
type Saver struct {
	mu            sync.Mutex
	save          SaveFunc
	delay         time.Duration
	redirectDelay time.Duration
	onStatus      func(Status)
	onRedirect    func()

	timer   *time.Timer
	pending Document
	docID   string
	seq     uint64
	applied uint64
	stopped bool
}

// New creates a Saver that persists drafts through save. The default
// quiet period is 5 seconds.
func New(save SaveFunc, opts ...Option) *Saver {
	s := &Saver{
		save:          save,
		delay:         5 * time.Second,
		redirectDelay: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify records the latest document state and reschedules the save.
// A document with both title and content empty cancels any pending
// save instead of scheduling one; an in-flight save is never
// cancelled.
func (s *Saver) Notify(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if doc.empty() {
		return
	}

	s.pending = doc
	s.seq++
	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() { s.fire(seq) })
}

// Stop cancels any pending save. In-flight saves run to completion but
// their results are dropped.
func (s *Saver) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// DocumentID returns the identifier adopted from the first successful
// save, or the one supplied by the editor.
func (s *Saver) DocumentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.docID
}

func (s *Saver) fire(seq uint64) {
	s.mu.Lock()
	if s.stopped || seq != s.seq {
		s.mu.Unlock()
		return
	}
	doc := s.pending
	if doc.ID == "" {
		doc.ID = s.docID
	}
	s.mu.Unlock()

	s.notifyStatus(StatusSaving)

	blog, err := s.save(context.Background(), api.SaveBlogInput{
		ID:      doc.ID,
		Title:   doc.Title,
		Content: doc.Content,
		Tags:    doc.Tags,
	})
	s.complete(seq, blog, err)
}

func (s *Saver) complete(seq uint64, blog api.Blog, err error) {
	s.mu.Lock()
	if s.stopped || seq < s.applied {
		s.mu.Unlock()
		return
	}
	s.applied = seq

	if err == nil && s.docID == "" {
		s.docID = blog.ID
	}
	s.mu.Unlock()

	if err == nil {
		s.notifyStatus(StatusSaved)
		return
	}

	var statusErr *api.StatusError
	if errors.As(err, &statusErr) && statusErr.Code == http.StatusUnauthorized {
		s.notifyStatus(StatusUnauthorized)
		if s.onRedirect != nil {
			time.AfterFunc(s.redirectDelay, s.onRedirect)
		}
		return
	}

	s.notifyStatus(StatusError)
}

func (s *Saver) notifyStatus(status Status) {
	if s.onStatus != nil {
		s.onStatus(status)
	}
}
