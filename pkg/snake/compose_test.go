package snake

import (
	"errors"
	"reflect"
	"testing"

	"github.com/manifoldco/promptui"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/schema"
)

// scripted answers prompts by label order.
type scripted struct {
	texts   []string
	selects []int
	bools   []*bool
	labels  []string
	failAt  int
}

func (s *scripted) next(label string) error {
	s.labels = append(s.labels, label)
	if s.failAt > 0 && len(s.labels) == s.failAt {
		return promptui.ErrInterrupt
	}
	return nil
}

func (s *scripted) Text(label, _ string) (string, error) {
	if err := s.next(label); err != nil {
		return "", err
	}
	if len(s.texts) == 0 {
		return "", nil
	}
	v := s.texts[0]
	s.texts = s.texts[1:]
	return v, nil
}

func (s *scripted) Select(label string, _ []string) (int, error) {
	if err := s.next(label); err != nil {
		return 0, err
	}
	if len(s.selects) == 0 {
		return 0, nil
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	return v, nil
}

func (s *scripted) Bool(label string) (*bool, error) {
	if err := s.next(label); err != nil {
		return nil, err
	}
	if len(s.bools) == 0 {
		return nil, nil
	}
	v := s.bools[0]
	s.bools = s.bools[1:]
	return v, nil
}

func ptr(b bool) *bool { return &b }

func TestComposeFillsState(t *testing.T) {
	a := &scripted{
		// content, title, emotions..., context, people...
		texts: []string{
			"woke up falling", "Falling",
			"fear", "relief", "",
			"work",
			"Alice", "",
		},
		// dream, rating, length, sleep quality, vividness
		selects: []int{2, 8, 0, 3, 10},
		// inDream, mood, linkedContext, recurring, lucid, control
		bools: []*bool{ptr(true), nil, ptr(false), nil, ptr(true), nil},
	}
	f := form.New()
	rows := form.NewRows()
	if err := Compose(a, f, rows); err != nil {
		t.Fatalf("compose: %v", err)
	}

	if *f.Content != "woke up falling" || *f.Title != "Falling" || *f.Context != "work" {
		t.Fatalf("unexpected text values %+v", f)
	}
	if *f.Dream != "Nightmare" || *f.Rating != 8 || f.DreamLength != nil || *f.SleepQuality != 3 || *f.Vividness != 10 {
		t.Fatalf("unexpected selections %+v", f)
	}
	if !*f.InDream || f.Mood != nil || *f.LinkedContext || f.Recurring != nil || !*f.Lucid || f.Control != nil {
		t.Fatalf("unexpected toggles %+v", f)
	}
	if !reflect.DeepEqual(f.Emotions, []string{"fear", "relief"}) || !reflect.DeepEqual(f.People, []string{"Alice"}) {
		t.Fatalf("unexpected lists %v %v", f.Emotions, f.People)
	}
	if rows.Count(schema.Emotions) != 2 || rows.Count(schema.People) != 1 {
		t.Fatalf("unexpected row counts")
	}
	if a.labels[0] != "Content" || a.labels[7] != "Emotion 1" || a.labels[9] != "Emotion 3" {
		t.Fatalf("unexpected prompt order %v", a.labels)
	}
}

func TestComposeInterrupted(t *testing.T) {
	a := &scripted{failAt: 3}
	if err := Compose(a, form.New(), form.NewRows()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}
