package form

import (
	"reflect"
	"testing"

	"tableflip.dev/dreams/pkg/schema"
)

func TestRowsIssueIncreasingIndexes(t *testing.T) {
	r := NewRows()
	s := New()
	values := []string{"joy", "fear", "awe", "calm"}
	for _, v := range values {
		b := r.Add(schema.Emotions)
		if err := b.Write(s, v); err != nil {
			t.Fatal(err)
		}
	}
	if !reflect.DeepEqual(s.Emotions, values) {
		t.Fatalf("expected %v, got %v", values, s.Emotions)
	}
	if r.Count(schema.Emotions) != len(values) || r.Count(schema.People) != 0 {
		t.Fatalf("unexpected counts")
	}
	for i, b := range r.Bindings(schema.Emotions) {
		if b.Index != i || b.Key != schema.Emotions {
			t.Fatalf("row %d has binding %+v", i, b)
		}
	}
}

func TestRowsOverwriteInPlace(t *testing.T) {
	r := NewRows()
	s := New()
	first := r.Add(schema.People)
	second := r.Add(schema.People)

	_ = first.Write(s, "A")
	_ = second.Write(s, "Bob")
	_ = first.Write(s, "Al")
	_ = first.Write(s, "Alicia")

	if want := []string{"Alicia", "Bob"}; !reflect.DeepEqual(s.People, want) {
		t.Fatalf("expected %v, got %v", want, s.People)
	}
}
