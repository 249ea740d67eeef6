// Package session owns one dream entry from the moment the form opens until
// it is committed or dismissed.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/dreams/pkg/document"
	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/store"
)

// State is a step of the entry lifecycle.
type State int

const (
	Idle State = iota
	Composing
	Committing
	Created
	Updated
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Composing:
		return "composing"
	case Committing:
		return "committing"
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Closed:
		return "closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	// NoticeCreated is shown after a new document was written.
	NoticeCreated = "Dream entry created!"
	// NoticeUpdated is shown after an existing document was replaced.
	NoticeUpdated = "Dream entry updated!"
)

// ErrInvalidState is returned when an operation does not fit the current state.
var ErrInvalidState = errors.New("session: invalid state")

// Notifier shows a short message to the user. It must not block.
type Notifier interface {
	Notify(msg string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(msg string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(msg string) { f(msg) }

// Options tune a session.
type Options struct {
	// Extension is the document suffix, "md" when empty.
	Extension string
	// Now stamps the document; time.Now when nil.
	Now func() time.Time
}

// Result describes a successful commit.
type Result struct {
	Artifact store.Artifact
	Document document.Document
	// Created is false when an existing document was overwritten.
	Created bool
}

// Session is a single composing session. It is not safe for concurrent use;
// the caller owns it for its whole life.
type Session struct {
	ID string

	vault  store.Vault
	notify Notifier
	ext    string
	now    func() time.Time

	state State
	form  *form.State
	rows  *form.Rows
}

// New constructs an idle session. notifier may be nil.
func New(v store.Vault, notifier Notifier, opts Options) *Session {
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	if opts.Extension == "" {
		opts.Extension = "md"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Session{
		ID:     uuid.NewString(),
		vault:  v,
		notify: notifier,
		ext:    opts.Extension,
		now:    opts.Now,
	}
}

// State reports the current lifecycle step.
func (s *Session) State() State {
	return s.state
}

// Open starts composing and hands out the session's form state and rows.
func (s *Session) Open() (*form.State, *form.Rows, error) {
	if s.state != Idle {
		return nil, nil, fmt.Errorf("%w: open while %s", ErrInvalidState, s.state)
	}
	s.form = form.New()
	s.rows = form.NewRows()
	s.state = Composing
	logging.Debugf("session %s: composing", s.ID)
	return s.form, s.rows, nil
}

// Form returns the state being composed, nil outside Composing.
func (s *Session) Form() *form.State {
	return s.form
}

// Rows returns the list rows issued so far, nil outside Composing.
func (s *Session) Rows() *form.Rows {
	return s.rows
}

// Preview renders the document the session would write right now.
func (s *Session) Preview() (document.Document, error) {
	if s.state != Composing {
		return document.Document{}, fmt.Errorf("%w: preview while %s", ErrInvalidState, s.state)
	}
	return document.Serialize(s.form.Snapshot(), s.now()), nil
}

// Commit serializes the form and writes it to the vault: created when the
// file name is new, overwritten otherwise. On success the session closes.
// When storage fails no notice is shown and the session stays in Composing
// so the caller can retry or cancel.
func (s *Session) Commit(ctx context.Context) (Result, error) {
	if s.state != Composing {
		return Result{}, fmt.Errorf("%w: commit while %s", ErrInvalidState, s.state)
	}
	s.state = Committing

	doc := document.Serialize(s.form.Snapshot(), s.now())
	name := doc.FileName(s.ext)
	content := doc.Bytes()

	res, err := s.write(ctx, name, content)
	if err != nil {
		s.state = Composing
		logging.Errorf("session %s: commit %s: %v", s.ID, name, err)
		return Result{}, fmt.Errorf("session: commit %s: %w", name, err)
	}
	res.Document = doc

	if res.Created {
		s.state = Created
		s.notify.Notify(NoticeCreated)
	} else {
		s.state = Updated
		s.notify.Notify(NoticeUpdated)
	}
	logging.Debugf("session %s: %s %s", s.ID, s.state, name)
	s.close()
	return res, nil
}

func (s *Session) write(ctx context.Context, name string, content []byte) (Result, error) {
	exists, err := s.vault.Exists(ctx, name)
	if err != nil {
		return Result{}, err
	}
	if !exists {
		a, err := s.vault.Create(ctx, name, content)
		if err == nil {
			return Result{Artifact: a, Created: true}, nil
		}
		// Another writer created the entry since Exists; update it instead.
		if !errors.Is(err, store.ErrExists) {
			return Result{}, err
		}
		logging.Debugf("session %s: %s appeared before create, overwriting", s.ID, name)
	}
	a := store.Artifact{Name: name}
	if err := s.vault.Overwrite(ctx, a, content); err != nil {
		return Result{}, err
	}
	return Result{Artifact: a}, nil
}

// Cancel dismisses the session without writing anything.
func (s *Session) Cancel() {
	if s.state == Closed {
		return
	}
	logging.Debugf("session %s: cancelled while %s", s.ID, s.state)
	s.close()
}

func (s *Session) close() {
	s.form = nil
	s.rows = nil
	s.state = Closed
}
