package schema

import (
	"reflect"
	"testing"
)

func TestFieldsDeclaresFifteenUniqueFields(t *testing.T) {
	fs := Fields()
	if len(fs) != 15 {
		t.Fatalf("expected 15 fields, got %d", len(fs))
	}
	seen := map[ID]bool{}
	for _, f := range fs {
		if seen[f.ID] {
			t.Fatalf("duplicate field id %q", f.ID)
		}
		seen[f.ID] = true
		if f.ID == Content {
			t.Fatalf("content must not be part of the declarative list")
		}
	}
}

func TestFieldsReturnsCopy(t *testing.T) {
	fs := Fields()
	fs[0].Label = "changed"
	if Fields()[0].Label != "Title" {
		t.Fatalf("schema was mutated through Fields()")
	}
}

func TestNumberFieldsCarryRange(t *testing.T) {
	for _, f := range Fields() {
		n, ok := f.Kind.(Number)
		if !ok {
			continue
		}
		if n.Min != 1 || n.Max != 10 {
			t.Fatalf("%s: unexpected range %d-%d", f.ID, n.Min, n.Max)
		}
		opts := n.Options()
		if len(opts) != 10 || opts[0] != "1" || opts[9] != "10" {
			t.Fatalf("%s: unexpected options %v", f.ID, opts)
		}
	}
}

func TestLookup(t *testing.T) {
	f, ok := Lookup(People)
	if !ok {
		t.Fatalf("people not found")
	}
	if !reflect.DeepEqual(f.Kind, List{Item: "Person"}) {
		t.Fatalf("unexpected kind %#v", f.Kind)
	}
	if _, ok := Lookup(Content); !ok {
		t.Fatalf("content not found")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatalf("expected unknown id to miss")
	}
}

func TestChoiceHas(t *testing.T) {
	f, _ := Lookup(Dream)
	c := f.Kind.(Choice)
	if !c.Has("Nightmare") || c.Has("nightmare") {
		t.Fatalf("choice matching is exact")
	}
}
