// Package mcp provides the Model Context Protocol server integration for dreams.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/dreams/pkg/document"
	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/schema"
	"tableflip.dev/dreams/pkg/session"
	"tableflip.dev/dreams/pkg/store"
)

// Service coordinates vault-backed operations that are shared by the MCP server.
type Service struct {
	Vault     store.Vault
	Extension string
	// Now is used to stamp new entries; time.Now when nil.
	Now func() time.Time
}

// ErrEntryNotFound is returned when no document exists for a title.
var ErrEntryNotFound = errors.New("entry not found")

// CreateEntryOptions carries raw field values as received from a client.
// Values is keyed by scalar field id; list fields use Emotions and People.
type CreateEntryOptions struct {
	Content  string
	Values   map[schema.ID]string
	Emotions []string
	People   []string
}

// EntryDTO is a transport-friendly projection of a committed entry.
type EntryDTO struct {
	Name     string `json:"name"`
	Path     string `json:"path,omitempty"`
	Created  bool   `json:"created"`
	Notice   string `json:"notice"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Document string `json:"document"`
}

// FieldDTO describes one schema field to clients.
type FieldDTO struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Kind    string   `json:"kind"`
	Options []string `json:"options,omitempty"`
	Min     *int     `json:"min,omitempty"`
	Max     *int     `json:"max,omitempty"`
	Item    string   `json:"item,omitempty"`
}

// NewService constructs a Service writing documents with the given extension.
func NewService(v store.Vault, ext string) *Service {
	return &Service{Vault: v, Extension: ext}
}

// CreateEntry runs one complete session: the values are applied to a fresh
// form, which is then committed to the vault.
func (s *Service) CreateEntry(ctx context.Context, opts CreateEntryOptions) (EntryDTO, error) {
	if s.Vault == nil {
		return EntryDTO{}, errors.New("vault unavailable")
	}

	var notice string
	sess := session.New(s.Vault, session.NotifierFunc(func(msg string) {
		notice = msg
	}), session.Options{Extension: s.Extension, Now: s.Now})

	f, rows, err := sess.Open()
	if err != nil {
		return EntryDTO{}, err
	}
	if err := apply(f, rows, opts); err != nil {
		sess.Cancel()
		return EntryDTO{}, err
	}

	res, err := sess.Commit(ctx)
	if err != nil {
		sess.Cancel()
		return EntryDTO{}, err
	}

	return EntryDTO{
		Name:     res.Artifact.Name,
		Path:     res.Artifact.Path,
		Created:  res.Created,
		Notice:   notice,
		Title:    res.Document.Title,
		Date:     res.Document.Date,
		Document: res.Document.String(),
	}, nil
}

func apply(f *form.State, rows *form.Rows, opts CreateEntryOptions) error {
	if opts.Content != "" {
		f.SetContent(opts.Content)
	}
	for id := range opts.Values {
		if _, ok := schema.Lookup(id); !ok || id == schema.Content {
			return fmt.Errorf("%w: %s", form.ErrUnknownField, id)
		}
	}
	// schema order keeps error reporting stable
	for _, fd := range schema.Fields() {
		raw, ok := opts.Values[fd.ID]
		if !ok {
			continue
		}
		if err := f.SetScalar(fd.ID, raw); err != nil {
			return fmt.Errorf("%s: %w", fd.ID, err)
		}
	}
	for _, v := range opts.Emotions {
		if err := rows.Add(schema.Emotions).Write(f, v); err != nil {
			return err
		}
	}
	for _, v := range opts.People {
		if err := rows.Add(schema.People).Write(f, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadEntry loads the document stored for title.
func (s *Service) ReadEntry(ctx context.Context, title string) (document.Document, error) {
	if s.Vault == nil {
		return document.Document{}, errors.New("vault unavailable")
	}
	name := document.Document{Title: title}.FileName(s.ext())
	b, err := s.Vault.Read(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return document.Document{}, fmt.Errorf("%w: %s", ErrEntryNotFound, title)
	}
	if err != nil {
		return document.Document{}, err
	}
	return document.Parse(b)
}

// Fields describes the schema, content first.
func (s *Service) Fields() []FieldDTO {
	all := append([]schema.FieldDescriptor{schema.ContentField}, schema.Fields()...)
	out := make([]FieldDTO, 0, len(all))
	for _, f := range all {
		dto := FieldDTO{ID: string(f.ID), Label: f.Label, Kind: f.Kind.String()}
		switch k := f.Kind.(type) {
		case schema.Number:
			dto.Kind = "number"
			lo, hi := k.Min, k.Max
			dto.Min, dto.Max = &lo, &hi
		case schema.Choice:
			dto.Options = k.Options
		case schema.List:
			dto.Item = k.Item
		}
		out = append(out, dto)
	}
	return out
}

func (s *Service) ext() string {
	if s.Extension == "" {
		return "md"
	}
	return s.Extension
}
