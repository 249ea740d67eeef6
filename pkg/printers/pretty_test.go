package printers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/dreams/pkg/document"
	"tableflip.dev/dreams/pkg/schema"
)

func init() {
	color.NoColor = true
}

func TestNotify(t *testing.T) {
	buf := &bytes.Buffer{}
	pp := PrettyPrint{Out: buf}
	pp.Notify("Dream entry created!")
	if got := buf.String(); got != "✓ Dream entry created!\n" {
		t.Fatalf("unexpected toast %q", got)
	}
}

func TestDocumentUnescapesLinks(t *testing.T) {
	buf := &bytes.Buffer{}
	pp := PrettyPrint{Out: buf}
	pp.Document(document.Document{
		Title:   "Flight",
		Date:    "2024-03-09",
		People:  []string{`Dr\: Who`, "Amy"},
		Content: "over the sea",
	})
	out := buf.String()
	for _, want := range []string{"Flight\n", "Dr: Who, Amy", "Emotions", "none", "over the sea"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestFieldsTableListsEveryField(t *testing.T) {
	buf := &bytes.Buffer{}
	pp := PrettyPrint{Out: buf}
	pp.Fields(schema.Fields())
	out := buf.String()
	for _, want := range []string{"content", "freetext", "vividness", "number[1-10]", "list of Person", "choice (2 options)"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table:\n%s", want, out)
		}
	}
}

func TestDocumentBodyWraps(t *testing.T) {
	buf := &bytes.Buffer{}
	pp := PrettyPrint{Out: buf, Width: 20}
	pp.Document(document.Document{
		Title:   "Long",
		Content: "the corridor kept folding back on itself until morning",
	})
	out := buf.String()
	if !strings.Contains(out, "the corridor kept\nfolding back on\n") {
		t.Fatalf("expected wrapped body:\n%s", out)
	}
}

func TestDocumentBodyMarkdown(t *testing.T) {
	buf := &bytes.Buffer{}
	pp := PrettyPrint{Out: buf, Markdown: true}
	pp.Document(document.Document{
		Title:   "Rendered",
		Content: "Some **bold** water.",
	})
	out := buf.String()
	if !strings.Contains(out, "bold") || !strings.Contains(out, "water.") {
		t.Fatalf("expected rendered markdown:\n%s", out)
	}
}
