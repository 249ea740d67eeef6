// Package form holds the values a user enters while composing one entry.
package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/schema"
)

var (
	// ErrUnknownField is returned for ids that are not in the schema.
	ErrUnknownField = errors.New("unknown field")
	// ErrKindMismatch is returned when a typed setter is used on a field of
	// another kind.
	ErrKindMismatch = errors.New("field kind mismatch")
	// ErrInvalidValue is returned when raw input cannot be coerced.
	ErrInvalidValue = errors.New("invalid value")
)

// State is the per-session accumulation of user input. A nil pointer means
// the widget never reported a value.
type State struct {
	Content *string
	Title   *string
	Dream   *string
	Context *string

	Rating       *int
	DreamLength  *int
	SleepQuality *int
	Vividness    *int

	InDream       *bool
	Mood          *bool
	LinkedContext *bool
	Recurring     *bool
	Lucid         *bool
	Control       *bool

	Emotions []string
	People   []string
}

// New returns an empty state.
func New() *State {
	return &State{Emotions: []string{}, People: []string{}}
}

func (s *State) text(id schema.ID) **string {
	switch id {
	case schema.Content:
		return &s.Content
	case schema.Title:
		return &s.Title
	case schema.Context:
		return &s.Context
	case schema.Dream:
		return &s.Dream
	}
	return nil
}

func (s *State) number(id schema.ID) **int {
	switch id {
	case schema.Rating:
		return &s.Rating
	case schema.DreamLength:
		return &s.DreamLength
	case schema.SleepQuality:
		return &s.SleepQuality
	case schema.Vividness:
		return &s.Vividness
	}
	return nil
}

func (s *State) flag(id schema.ID) **bool {
	switch id {
	case schema.InDream:
		return &s.InDream
	case schema.Mood:
		return &s.Mood
	case schema.LinkedContext:
		return &s.LinkedContext
	case schema.Recurring:
		return &s.Recurring
	case schema.Lucid:
		return &s.Lucid
	case schema.Control:
		return &s.Control
	}
	return nil
}

func (s *State) list(id schema.ID) *[]string {
	switch id {
	case schema.Emotions:
		return &s.Emotions
	case schema.People:
		return &s.People
	}
	return nil
}

func descriptor(id schema.ID) (schema.FieldDescriptor, error) {
	f, ok := schema.Lookup(id)
	if !ok {
		return f, fmt.Errorf("form: %q: %w", id, ErrUnknownField)
	}
	return f, nil
}

// SetContent stores the entry body.
func (s *State) SetContent(v string) {
	s.Content = &v
}

// SetText stores a Text or FreeText value.
func (s *State) SetText(id schema.ID, v string) error {
	f, err := descriptor(id)
	if err != nil {
		return err
	}
	switch f.Kind.(type) {
	case schema.FreeText:
		*s.text(id) = &v
		return nil
	case schema.Text:
		if err := singleLine(id, v); err != nil {
			return err
		}
		*s.text(id) = &v
		return nil
	}
	return fmt.Errorf("form: %s is %s: %w", id, f.Kind, ErrKindMismatch)
}

// singleLine rejects line breaks, which would split a metadata line.
func singleLine(id schema.ID, v string) error {
	if strings.ContainsAny(v, "\r\n") {
		return fmt.Errorf("form: %s: line breaks are not allowed: %w", id, ErrInvalidValue)
	}
	return nil
}

// SetChoice stores one of the options of a Choice field.
func (s *State) SetChoice(id schema.ID, v string) error {
	f, err := descriptor(id)
	if err != nil {
		return err
	}
	c, ok := f.Kind.(schema.Choice)
	if !ok {
		return fmt.Errorf("form: %s is %s: %w", id, f.Kind, ErrKindMismatch)
	}
	if !c.Has(v) {
		return fmt.Errorf("form: %s: %q is not one of %s: %w", id, v, strings.Join(c.Options, ", "), ErrInvalidValue)
	}
	*s.text(id) = &v
	return nil
}

// SetNumber stores an integer inside the field's range.
func (s *State) SetNumber(id schema.ID, v int) error {
	f, err := descriptor(id)
	if err != nil {
		return err
	}
	n, ok := f.Kind.(schema.Number)
	if !ok {
		return fmt.Errorf("form: %s is %s: %w", id, f.Kind, ErrKindMismatch)
	}
	if !n.Contains(v) {
		return fmt.Errorf("form: %s: %d outside %d-%d: %w", id, v, n.Min, n.Max, ErrInvalidValue)
	}
	*s.number(id) = &v
	return nil
}

// SetCheckbox records a toggle.
func (s *State) SetCheckbox(id schema.ID, v bool) error {
	f, err := descriptor(id)
	if err != nil {
		return err
	}
	if _, ok := f.Kind.(schema.Checkbox); !ok {
		return fmt.Errorf("form: %s is %s: %w", id, f.Kind, ErrKindMismatch)
	}
	*s.flag(id) = &v
	return nil
}

// SetScalar coerces raw widget input according to the field's kind and
// stores it. List fields are written through AppendOrUpdate instead.
func (s *State) SetScalar(id schema.ID, raw string) error {
	f, err := descriptor(id)
	if err != nil {
		return err
	}
	switch k := f.Kind.(type) {
	case schema.Text, schema.FreeText:
		return s.SetText(id, raw)
	case schema.Choice:
		return s.SetChoice(id, raw)
	case schema.Number:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("form: %s: %q is not a number in %s: %w", id, raw, k, ErrInvalidValue)
		}
		return s.SetNumber(id, v)
	case schema.Checkbox:
		v, err := ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("form: %s: %q is not a boolean: %w", id, raw, ErrInvalidValue)
		}
		return s.SetCheckbox(id, v)
	case schema.List:
		return fmt.Errorf("form: %s is %s: %w", id, f.Kind, ErrKindMismatch)
	default:
		logging.Warnf("field %s has unsupported kind %T, value dropped", id, k)
		return fmt.Errorf("form: %s: %w", id, ErrKindMismatch)
	}
}

// AppendOrUpdate writes value at index of the list field key. An index
// inside the list overwrites; any other index appends exactly one element.
func (s *State) AppendOrUpdate(key schema.ID, index int, value string) error {
	l := s.list(key)
	if l == nil {
		return fmt.Errorf("form: %q is not a list field: %w", key, ErrKindMismatch)
	}
	if index < 0 {
		return fmt.Errorf("form: %s: negative index %d: %w", key, index, ErrInvalidValue)
	}
	if err := singleLine(key, value); err != nil {
		return err
	}
	if index < len(*l) {
		(*l)[index] = value
		return nil
	}
	*l = append(*l, value)
	return nil
}

// List returns the current values of a list field.
func (s *State) List(key schema.ID) []string {
	if l := s.list(key); l != nil {
		return *l
	}
	return nil
}

// Snapshot returns a deep copy that later edits cannot reach.
func (s *State) Snapshot() State {
	out := State{
		Content:       cloneString(s.Content),
		Title:         cloneString(s.Title),
		Dream:         cloneString(s.Dream),
		Context:       cloneString(s.Context),
		Rating:        cloneInt(s.Rating),
		DreamLength:   cloneInt(s.DreamLength),
		SleepQuality:  cloneInt(s.SleepQuality),
		Vividness:     cloneInt(s.Vividness),
		InDream:       cloneBool(s.InDream),
		Mood:          cloneBool(s.Mood),
		LinkedContext: cloneBool(s.LinkedContext),
		Recurring:     cloneBool(s.Recurring),
		Lucid:         cloneBool(s.Lucid),
		Control:       cloneBool(s.Control),
		Emotions:      append([]string{}, s.Emotions...),
		People:        append([]string{}, s.People...),
	}
	return out
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// ParseBool is strconv.ParseBool with the addition of Yes/No parsing.
func ParseBool(str string) (bool, error) {
	switch str {
	case "1", "t", "T", "true", "TRUE", "True", "y", "Y", "yes", "YES", "Yes":
		return true, nil
	case "0", "f", "F", "false", "FALSE", "False", "n", "N", "no", "NO", "No":
		return false, nil
	}
	return false, &strconv.NumError{Func: "ParseBool", Num: str, Err: strconv.ErrSyntax}
}
