package document

import (
	"errors"
	"fmt"
	"strings"
)

const fence = "---"

// Metadata keys in emission order.
const (
	KeyTitle        = "Title"
	KeyDate         = "Date"
	KeyType         = "Type"
	KeyRating       = "Rating"
	KeyDreamLength  = "Dream Length"
	KeySleepQuality = "Sleep Quality"
	KeyInDream      = "Personally In The Dream?"
	KeyEmotions     = "Emotions"
	KeyMood         = "Corresponds to Mood?"
	KeyContext      = "Context"
	KeyRecurring    = "Recurring Dream?"
	KeyPeople       = "People"
	KeyLucid        = "Lucid Dream"
	KeyControl      = "Can Control Dream"
	KeyVividness    = "Vividness"
)

// ErrMalformed is returned by Parse for text without a metadata block.
var ErrMalformed = errors.New("document: malformed metadata block")

// String renders the document.
func (d Document) String() string {
	b := &strings.Builder{}
	b.WriteString(fence + "\n")
	scalar(b, KeyTitle, d.Title)
	scalar(b, KeyDate, d.Date)
	scalar(b, KeyType, link(d.Type))
	scalar(b, KeyRating, d.Rating)
	scalar(b, KeyDreamLength, d.DreamLength)
	scalar(b, KeySleepQuality, d.SleepQuality)
	scalar(b, KeyInDream, d.InDream)
	list(b, KeyEmotions, d.Emotions)
	scalar(b, KeyMood, d.Mood)
	scalar(b, KeyContext, d.Context)
	scalar(b, KeyRecurring, d.Recurring)
	list(b, KeyPeople, d.People)
	scalar(b, KeyLucid, d.Lucid)
	scalar(b, KeyControl, d.Control)
	scalar(b, KeyVividness, d.Vividness)
	b.WriteString(fence + "\n\n")
	b.WriteString(d.Content)
	b.WriteString("\n")
	return b.String()
}

// Bytes renders the document for storage.
func (d Document) Bytes() []byte {
	return []byte(d.String())
}

func scalar(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s: %s\n", key, value)
}

// list always writes at least one item line; an empty list leaves a bare
// "  - " placeholder.
func list(b *strings.Builder, key string, values []string) {
	fmt.Fprintf(b, "%s:\n", key)
	items := make([]string, len(values))
	for i, v := range values {
		items[i] = link(v)
	}
	b.WriteString("  - " + strings.Join(items, "\n  - ") + "\n")
}

func link(v string) string {
	return `"[[` + v + `]]"`
}

func unlink(v string) string {
	v = strings.TrimPrefix(v, `"[[`)
	return strings.TrimSuffix(v, `]]"`)
}

// Parse reads text produced by String back into a Document. List values
// stay escaped, matching what Serialize produces. Unknown keys and their
// list items are ignored.
func Parse(data []byte) (Document, error) {
	text := string(data)
	if !strings.HasPrefix(text, fence+"\n") {
		return Document{}, ErrMalformed
	}
	header, body, ok := strings.Cut(text[len(fence)+1:], "\n"+fence+"\n")
	if !ok {
		return Document{}, ErrMalformed
	}

	d := Document{Emotions: []string{}, People: []string{}}
	var current *[]string
	skipping := false
	for _, line := range strings.Split(header, "\n") {
		if item, isItem := strings.CutPrefix(line, "  - "); isItem {
			if skipping {
				continue
			}
			if current == nil {
				return Document{}, fmt.Errorf("%w: list item outside a list: %q", ErrMalformed, line)
			}
			if item != "" {
				*current = append(*current, unlink(item))
			}
			continue
		}
		if line == "  -" {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			return Document{}, fmt.Errorf("%w: %q", ErrMalformed, line)
		}
		value = strings.TrimPrefix(value, " ")
		current = nil
		skipping = false
		switch key {
		case KeyTitle:
			d.Title = value
		case KeyDate:
			d.Date = value
		case KeyType:
			d.Type = unlink(value)
		case KeyRating:
			d.Rating = value
		case KeyDreamLength:
			d.DreamLength = value
		case KeySleepQuality:
			d.SleepQuality = value
		case KeyInDream:
			d.InDream = value
		case KeyEmotions:
			current = &d.Emotions
		case KeyMood:
			d.Mood = value
		case KeyContext:
			d.Context = value
		case KeyRecurring:
			d.Recurring = value
		case KeyPeople:
			current = &d.People
		case KeyLucid:
			d.Lucid = value
		case KeyControl:
			d.Control = value
		case KeyVividness:
			d.Vividness = value
		default:
			// Keys added by hand or by other tools are left alone.
			skipping = true
		}
	}

	body = strings.TrimPrefix(body, "\n")
	d.Content = strings.TrimSuffix(body, "\n")
	return d, nil
}
