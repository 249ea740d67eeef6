package mcp

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/schema"
	"tableflip.dev/dreams/pkg/store"
)

type memoryVault struct {
	docs map[string][]byte
}

func newMemoryVault() *memoryVault {
	return &memoryVault{docs: make(map[string][]byte)}
}

func (m *memoryVault) Exists(_ context.Context, name string) (bool, error) {
	_, ok := m.docs[name]
	return ok, nil
}

func (m *memoryVault) Create(_ context.Context, name string, content []byte) (store.Artifact, error) {
	if _, ok := m.docs[name]; ok {
		return store.Artifact{}, store.ErrExists
	}
	m.docs[name] = append([]byte{}, content...)
	return store.Artifact{Name: name, Path: "/vault/" + name}, nil
}

func (m *memoryVault) Overwrite(_ context.Context, a store.Artifact, content []byte) error {
	if _, ok := m.docs[a.Name]; !ok {
		return store.ErrNotFound
	}
	m.docs[a.Name] = append([]byte{}, content...)
	return nil
}

func (m *memoryVault) Read(_ context.Context, name string) ([]byte, error) {
	b, ok := m.docs[name]
	if !ok {
		return nil, store.ErrNotFound
	}
	return b, nil
}

func newTestService() (*Service, *memoryVault) {
	v := newMemoryVault()
	svc := NewService(v, "md")
	svc.Now = func() time.Time {
		return time.Date(2024, time.March, 9, 6, 30, 0, 0, time.UTC)
	}
	return svc, v
}

func TestServiceCreateEntryDefaults(t *testing.T) {
	svc, v := newTestService()

	dto, err := svc.CreateEntry(context.Background(), CreateEntryOptions{})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}
	if dto.Name != "2024-03-09.md" || !dto.Created || dto.Notice != "Dream entry created!" {
		t.Fatalf("unexpected entry %+v", dto)
	}
	doc := string(v.docs["2024-03-09.md"])
	for _, want := range []string{"Title: 2024-03-09\n", "Context: false\n", "Emotions:\n  - \n", "\nDream not written down\n"} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in document:\n%s", want, doc)
		}
	}
}

func TestServiceCreateEntryValues(t *testing.T) {
	svc, v := newTestService()

	dto, err := svc.CreateEntry(context.Background(), CreateEntryOptions{
		Content: "A house with too many doors.",
		Values: map[schema.ID]string{
			schema.Title:     "Doors",
			schema.Dream:     "Nightmare",
			schema.Rating:    "4",
			schema.Recurring: "true",
		},
		Emotions: []string{"fear", "", "relief: later"},
		People:   []string{"Grandma"},
	})
	if err != nil {
		t.Fatalf("CreateEntry returned error: %v", err)
	}
	if dto.Title != "Doors" || dto.Path != "/vault/Doors.md" {
		t.Fatalf("unexpected entry %+v", dto)
	}

	doc := string(v.docs["Doors.md"])
	for _, want := range []string{
		`Type: "[[Nightmare]]"` + "\n",
		"Rating: 4\n",
		"Recurring Dream?: true\n",
		"Emotions:\n  - \"[[fear]]\"\n  - \"[[relief\\: later]]\"\nCorresponds",
		"People:\n  - \"[[Grandma]]\"\n",
		"\nA house with too many doors.\n",
	} {
		if !strings.Contains(doc, want) {
			t.Fatalf("expected %q in document:\n%s", want, doc)
		}
	}
}

func TestServiceCreateEntryOverwrites(t *testing.T) {
	svc, v := newTestService()
	ctx := context.Background()
	opts := CreateEntryOptions{Values: map[schema.ID]string{schema.Title: "Again"}}

	if _, err := svc.CreateEntry(ctx, opts); err != nil {
		t.Fatalf("first CreateEntry: %v", err)
	}
	opts.Content = "second take"
	dto, err := svc.CreateEntry(ctx, opts)
	if err != nil {
		t.Fatalf("second CreateEntry: %v", err)
	}
	if dto.Created || dto.Notice != "Dream entry updated!" {
		t.Fatalf("expected update, got %+v", dto)
	}
	if !strings.HasSuffix(string(v.docs["Again.md"]), "\nsecond take\n") {
		t.Fatalf("last write must win:\n%s", v.docs["Again.md"])
	}
}

func TestServiceCreateEntryRejectsBadValues(t *testing.T) {
	svc, v := newTestService()
	ctx := context.Background()

	cases := []struct {
		name   string
		values map[schema.ID]string
		want   error
	}{
		{"out of range", map[schema.ID]string{schema.Vividness: "11"}, form.ErrInvalidValue},
		{"not an option", map[schema.ID]string{schema.Dream: "Daydream"}, form.ErrInvalidValue},
		{"unknown field", map[schema.ID]string{"weather": "rain"}, form.ErrUnknownField},
		{"content as value", map[schema.ID]string{schema.Content: "x"}, form.ErrUnknownField},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, CreateEntryOptions{Values: tc.values})
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
	if len(v.docs) != 0 {
		t.Fatalf("rejected entries must not be written: %v", v.docs)
	}
}

func TestServiceReadEntry(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.ReadEntry(ctx, "missing"); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}

	_, err := svc.CreateEntry(ctx, CreateEntryOptions{
		Content: "body",
		Values:  map[schema.ID]string{schema.Title: "Kept"},
		People:  []string{"Sam"},
	})
	if err != nil {
		t.Fatalf("CreateEntry: %v", err)
	}
	doc, err := svc.ReadEntry(ctx, "Kept")
	if err != nil {
		t.Fatalf("ReadEntry: %v", err)
	}
	if doc.Title != "Kept" || doc.Content != "body" || !reflect.DeepEqual(doc.People, []string{"Sam"}) {
		t.Fatalf("unexpected document %#v", doc)
	}
}

func TestServiceFields(t *testing.T) {
	svc, _ := newTestService()
	fields := svc.Fields()
	if len(fields) != 16 || fields[0].ID != "content" {
		t.Fatalf("expected content plus 15 fields, got %d", len(fields))
	}
	for _, f := range fields {
		if f.ID == "rating" && (f.Kind != "number" || *f.Min != 1 || *f.Max != 10) {
			t.Fatalf("unexpected rating descriptor %+v", f)
		}
		if f.ID == "people" && f.Item != "Person" {
			t.Fatalf("unexpected people descriptor %+v", f)
		}
	}
}
