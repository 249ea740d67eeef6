// Package snake walks a user through the entry schema one prompt at a time.
package snake

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/logging"
	"tableflip.dev/dreams/pkg/schema"
)

// ErrAborted is returned when the user interrupts the prompts.
var ErrAborted = errors.New("snake: aborted")

const skip = "(skip)"

// Asker is the prompt surface Compose drives.
type Asker interface {
	// Text asks for a line; empty means no answer.
	Text(label, placeholder string) (string, error)
	// Select asks for one of items and returns its index.
	Select(label string, items []string) (int, error)
	// Bool asks a yes/no question; nil means the user left it untouched.
	Bool(label string) (*bool, error)
}

// Compose fills f by prompting for the content and then every schema field
// in display order. Unanswered fields stay unset.
func Compose(a Asker, f *form.State, rows *form.Rows) error {
	all := append([]schema.FieldDescriptor{schema.ContentField}, schema.Fields()...)
	for _, field := range all {
		if err := ask(a, f, rows, field); err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return ErrAborted
			}
			return err
		}
	}
	return nil
}

func ask(a Asker, f *form.State, rows *form.Rows, field schema.FieldDescriptor) error {
	switch k := field.Kind.(type) {
	case schema.FreeText:
		v, err := a.Text(field.Label, k.Placeholder)
		if err != nil {
			return err
		}
		if v != "" {
			return f.SetText(field.ID, v)
		}
	case schema.Text:
		v, err := a.Text(field.Label, k.Placeholder)
		if err != nil {
			return err
		}
		if v != "" {
			return f.SetText(field.ID, v)
		}
	case schema.Choice:
		return selectOne(a, f, field, k.Options)
	case schema.Number:
		return selectOne(a, f, field, k.Options())
	case schema.Checkbox:
		v, err := a.Bool(field.Label)
		if err != nil {
			return err
		}
		if v != nil {
			return f.SetCheckbox(field.ID, *v)
		}
	case schema.List:
		return askList(a, f, rows, field, k)
	default:
		logging.Warnf("field %s: unsupported kind %T, skipped", field.ID, k)
	}
	return nil
}

func selectOne(a Asker, f *form.State, field schema.FieldDescriptor, options []string) error {
	items := append([]string{skip}, options...)
	i, err := a.Select(field.Label, items)
	if err != nil {
		return err
	}
	if i <= 0 || i >= len(items) {
		return nil
	}
	return f.SetScalar(field.ID, items[i])
}

// askList adds one row per answer until an empty answer ends the list.
func askList(a Asker, f *form.State, rows *form.Rows, field schema.FieldDescriptor, k schema.List) error {
	for {
		label := fmt.Sprintf("%s %s", k.Item, strconv.Itoa(rows.Count(field.ID)+1))
		v, err := a.Text(label, "Enter value, empty to finish")
		if err != nil {
			return err
		}
		if v == "" {
			return nil
		}
		if err := rows.Add(field.ID).Write(f, v); err != nil {
			return err
		}
	}
}
