package show

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/dreams/pkg/document"
	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/schema"
	"tableflip.dev/dreams/pkg/store"
)

type testConfig struct {
	path string
}

func (t testConfig) VaultPath() string { return t.path }
func (t testConfig) Extension() string { return "md" }

func seed(t *testing.T) store.Vault {
	t.Helper()
	color.NoColor = true
	v, err := store.Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load vault: %v", err)
	}
	s := form.New()
	s.SetContent("The tide came in through the window.")
	if err := s.SetScalar(schema.Title, "Tide/Window"); err != nil {
		t.Fatal(err)
	}
	if err := s.AppendOrUpdate(schema.People, 0, "Dr: Lee"); err != nil {
		t.Fatal(err)
	}
	d := document.Serialize(*s, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC))
	if _, err := v.Create(context.Background(), d.FileName("md"), d.Bytes()); err != nil {
		t.Fatalf("create: %v", err)
	}
	return v
}

func TestShowPrettyPrints(t *testing.T) {
	v := seed(t)
	var out bytes.Buffer
	n := &Show{Title: "Tide/Window", Vault: v, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	got := out.String()
	for _, want := range []string{"Tide/Window", "2024-05-01", "Dr: Lee", "The tide came in through the window."} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output:\n%s", want, got)
		}
	}
}

func TestShowRaw(t *testing.T) {
	v := seed(t)
	var out bytes.Buffer
	n := &Show{Title: "Tide/Window", Raw: true, Vault: v, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.HasPrefix(out.String(), "---\nTitle: Tide/Window\n") || !strings.Contains(out.String(), `"[[Dr\: Lee]]"`) {
		t.Fatalf("expected stored text, got:\n%s", out.String())
	}
}

func TestShowMissing(t *testing.T) {
	v := seed(t)
	n := &Show{Title: "nope", Vault: v, Out: &bytes.Buffer{}}
	if err := n.Do(context.Background()); err == nil || !strings.Contains(err.Error(), `"nope"`) {
		t.Fatalf("expected missing entry error, got %v", err)
	}
}

func TestShowMarkdown(t *testing.T) {
	v := seed(t)
	var out bytes.Buffer
	n := &Show{Title: "Tide/Window", Markdown: true, Vault: v, Out: &out}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if !strings.Contains(out.String(), "The tide came in through the window.") {
		t.Fatalf("expected rendered body:\n%s", out.String())
	}
}
