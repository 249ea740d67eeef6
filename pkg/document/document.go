// Package document turns a finished form into the text written to the vault.
package document

import (
	"strconv"
	"strings"
	"time"

	"tableflip.dev/dreams/pkg/form"
)

const (
	// DateLayout is used for the Date key and the default title.
	DateLayout = "2006-01-02"
	// NoContent replaces an empty body.
	NoContent = "Dream not written down"
)

// Document is the immutable result of serializing a form. Every field holds
// the exact text emitted for it, after defaulting and escaping.
type Document struct {
	Title        string
	Date         string
	Type         string
	Rating       string
	DreamLength  string
	SleepQuality string
	InDream      string
	Emotions     []string
	Mood         string
	Context      string
	Recurring    string
	People       []string
	Lucid        string
	Control      string
	Vividness    string

	Content string
}

// Serialize applies the defaulting and escaping rules to s. The result only
// depends on s and the UTC calendar date of now.
func Serialize(s form.State, now time.Time) Document {
	today := now.UTC().Format(DateLayout)
	return Document{
		Title:        stringOr(s.Title, today),
		Date:         today,
		Type:         stringOr(s.Dream, ""),
		Rating:       intOr(s.Rating),
		DreamLength:  intOr(s.DreamLength),
		SleepQuality: intOr(s.SleepQuality),
		InDream:      boolOr(s.InDream),
		Emotions:     listValues(s.Emotions),
		Mood:         boolOr(s.Mood),
		Context:      stringOr(s.Context, "false"),
		Recurring:    boolOr(s.Recurring),
		People:       listValues(s.People),
		Lucid:        boolOr(s.Lucid),
		Control:      boolOr(s.Control),
		Vividness:    intOr(s.Vividness),
		Content:      stringOr(s.Content, NoContent),
	}
}

func stringOr(p *string, def string) string {
	if p == nil || *p == "" {
		return def
	}
	return *p
}

func intOr(p *int) string {
	if p == nil || *p == 0 {
		return ""
	}
	return strconv.Itoa(*p)
}

// boolOr maps an untouched checkbox to "false".
func boolOr(p *bool) string {
	if p == nil {
		return "false"
	}
	return strconv.FormatBool(*p)
}

func listValues(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = EscapeListValue(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// EscapeListValue protects the metadata block's key: value syntax by
// escaping every colon.
func EscapeListValue(v string) string {
	return strings.ReplaceAll(v, ":", `\:`)
}

// UnescapeListValue reverses EscapeListValue.
func UnescapeListValue(v string) string {
	return strings.ReplaceAll(v, `\:`, ":")
}

var fileNameReplacer = strings.NewReplacer("/", "-", `\`, "-", "\x00", "")

// FileName derives the vault file name from the title.
func (d Document) FileName(ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	return fileNameReplacer.Replace(d.Title) + "." + ext
}
