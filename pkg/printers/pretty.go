// Package printers renders documents and notices for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/dreams/pkg/document"
)

// PrettyPrint writes coloured output. It doubles as the session notifier.
type PrettyPrint struct {
	Out io.Writer
	// Markdown renders document bodies with glamour instead of plain wrapping.
	Markdown bool
	// Width wraps document bodies, 80 when zero.
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

// Notify prints a one-line toast.
func (pp *PrettyPrint) Notify(msg string) {
	c := color.New(color.FgGreen, color.Bold)
	_, _ = c.Fprintf(pp.out(), "✓ %s\n", msg)
}

// Location prints where a document was written.
func (pp *PrettyPrint) Location(path string) {
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "  %s\n", path)
}

// Document prints the metadata as an aligned list followed by the body.
func (pp *PrettyPrint) Document(d document.Document) {
	w := pp.out()
	key := color.New(color.FgCyan)
	faint := color.New(color.Faint, color.Italic)
	link := color.New(color.FgHiYellow)

	pp.Title(d.Title)
	row := func(k, v string) {
		_, _ = key.Fprintf(w, "%-26s", k)
		if v == "" {
			_, _ = faint.Fprintln(w, "-")
			return
		}
		_, _ = fmt.Fprintln(w, v)
	}
	links := func(k string, vs []string) {
		_, _ = key.Fprintf(w, "%-26s", k)
		if len(vs) == 0 {
			_, _ = faint.Fprintln(w, "none")
			return
		}
		out := make([]string, len(vs))
		for i, v := range vs {
			out[i] = link.Sprint(document.UnescapeListValue(v))
		}
		_, _ = fmt.Fprintln(w, strings.Join(out, ", "))
	}

	row(document.KeyDate, d.Date)
	row(document.KeyType, d.Type)
	row(document.KeyRating, d.Rating)
	row(document.KeyDreamLength, d.DreamLength)
	row(document.KeySleepQuality, d.SleepQuality)
	row(document.KeyVividness, d.Vividness)
	row(document.KeyInDream, d.InDream)
	row(document.KeyMood, d.Mood)
	row(document.KeyContext, d.Context)
	row(document.KeyRecurring, d.Recurring)
	row(document.KeyLucid, d.Lucid)
	row(document.KeyControl, d.Control)
	links(document.KeyEmotions, d.Emotions)
	links(document.KeyPeople, d.People)

	_, _ = fmt.Fprintln(w, "")
	_, _ = fmt.Fprintln(w, pp.body(d.Content))
}

// Discarded tells the user nothing was written.
func (pp *PrettyPrint) Discarded() {
	f := color.New(color.Faint)
	_, _ = f.Fprintln(pp.out(), "Entry discarded.")
}

// Raw prints b unchanged.
func (pp *PrettyPrint) Raw(b []byte) {
	_, _ = pp.out().Write(b)
}
