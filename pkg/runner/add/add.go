// Package add composes and stores a new dream entry.
package add

import (
	"context"
	"errors"
	"io"
	"time"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/printers"
	"tableflip.dev/dreams/pkg/session"
	"tableflip.dev/dreams/pkg/snake"
	"tableflip.dev/dreams/pkg/store"
	"tableflip.dev/dreams/pkg/tui/entryform"
)

// Mode selects how the entry is composed.
type Mode int

const (
	// ModeForm opens the full-screen entry form.
	ModeForm Mode = iota
	// ModePrompt asks for one field at a time.
	ModePrompt
	// ModeFlags commits whatever the prefill produced.
	ModeFlags
)

// FormRunner shows the entry form for a composing session.
type FormRunner func(ctx context.Context, sess *session.Session) (*entryform.Model, error)

type Add struct {
	Vault     store.Vault
	Extension string
	Mode      Mode

	// Prefill seeds the form before it is composed, e.g. from flags.
	Prefill func(*form.State, *form.Rows) error
	// Asker drives ModePrompt.
	Asker snake.Asker
	// RunForm drives ModeForm; entryform.Run when nil.
	RunForm FormRunner

	Out io.Writer
	Now func() time.Time
}

func (n *Add) Do(ctx context.Context) error {
	if n.Vault == nil {
		return errors.New("no vault to write to")
	}
	pp := printers.PrettyPrint{Out: n.Out}

	// The form owns the terminal while it runs, so notices are held and
	// printed once it is gone.
	var notices []string
	sess := session.New(n.Vault, session.NotifierFunc(func(msg string) {
		notices = append(notices, msg)
	}), session.Options{Extension: n.Extension, Now: n.Now})

	f, rows, err := sess.Open()
	if err != nil {
		return err
	}
	if n.Prefill != nil {
		if err := n.Prefill(f, rows); err != nil {
			sess.Cancel()
			return err
		}
	}

	res, ok, err := n.compose(ctx, sess, f, rows)
	if err != nil {
		sess.Cancel()
		return err
	}
	if !ok {
		pp.Discarded()
		return nil
	}

	for _, msg := range notices {
		pp.Notify(msg)
	}
	loc := res.Artifact.Path
	if loc == "" {
		loc = res.Artifact.Name
	}
	pp.Location(loc)
	return nil
}

// compose returns false when the user dismissed the entry.
func (n *Add) compose(ctx context.Context, sess *session.Session, f *form.State, rows *form.Rows) (session.Result, bool, error) {
	switch n.Mode {
	case ModeForm:
		run := n.RunForm
		if run == nil {
			run = func(ctx context.Context, sess *session.Session) (*entryform.Model, error) {
				return entryform.Run(ctx, sess)
			}
		}
		m, err := run(ctx, sess)
		if err != nil {
			return session.Result{}, false, err
		}
		res, ok := m.Result()
		return res, ok, nil
	case ModePrompt:
		if n.Asker == nil {
			return session.Result{}, false, errors.New("no prompt available")
		}
		if err := snake.Compose(n.Asker, f, rows); err != nil {
			if errors.Is(err, snake.ErrAborted) {
				sess.Cancel()
				return session.Result{}, false, nil
			}
			return session.Result{}, false, err
		}
	}

	res, err := sess.Commit(ctx)
	if err != nil {
		return session.Result{}, false, err
	}
	return res, true, nil
}
