package options

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/dreams/pkg/form"
)

func parse(t *testing.T, args ...string) (*cobra.Command, *AddOptions) {
	t.Helper()
	cmd := &cobra.Command{Use: "new"}
	o := &AddOptions{}
	AddEntryArgs(cmd, o)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cmd, o
}

func TestApplyChangedFlagsOnly(t *testing.T) {
	cmd, o := parse(t,
		"--title", "Flight",
		"--type", "Dream",
		"--rating", "8",
		"--lucid",
		"--mood=false",
		"--emotion", "joy",
		"--emotion", "awe, mostly",
		"--content", "over the sea",
	)
	if !o.Changed(cmd.Flags()) {
		t.Fatalf("expected changed flags")
	}

	s, rows := form.New(), form.NewRows()
	if err := o.Apply(cmd.Flags(), s, rows); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if *s.Title != "Flight" || *s.Dream != "Dream" || *s.Rating != 8 || *s.Content != "over the sea" {
		t.Fatalf("unexpected state %+v", s)
	}
	if s.Lucid == nil || !*s.Lucid || s.Mood == nil || *s.Mood {
		t.Fatalf("checkboxes not applied: lucid %v mood %v", s.Lucid, s.Mood)
	}
	if s.Recurring != nil || s.Vividness != nil || s.Context != nil {
		t.Fatalf("untouched flags must stay unset")
	}
	if want := []string{"joy", "awe, mostly"}; !reflect.DeepEqual(s.Emotions, want) {
		t.Fatalf("expected %v, got %v", want, s.Emotions)
	}
	if rows.Count("emotions") != 2 {
		t.Fatalf("expected two emotion rows, got %d", rows.Count("emotions"))
	}
}

func TestApplyRejectsOutOfRange(t *testing.T) {
	cmd, o := parse(t, "--vividness", "0")
	err := o.Apply(cmd.Flags(), form.New(), form.NewRows())
	if !errors.Is(err, form.ErrInvalidValue) {
		t.Fatalf("expected ErrInvalidValue, got %v", err)
	}
}

func TestApplyRejectsLineBreaks(t *testing.T) {
	for _, args := range [][]string{
		{"--title", "Flight\nover sea"},
		{"--person", "Sam\r\nKim"},
	} {
		cmd, o := parse(t, args...)
		err := o.Apply(cmd.Flags(), form.New(), form.NewRows())
		if !errors.Is(err, form.ErrInvalidValue) {
			t.Errorf("%v: expected ErrInvalidValue, got %v", args, err)
		}
	}
}

func TestNoFieldFlags(t *testing.T) {
	cmd, o := parse(t, "--no-form")
	if o.Changed(cmd.Flags()) {
		t.Fatalf("--no-form is not a field flag")
	}
	if !o.NoForm {
		t.Fatalf("expected --no-form to be set")
	}
}
