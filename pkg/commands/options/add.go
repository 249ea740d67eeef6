package options

import (
	"fmt"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tableflip.dev/dreams/pkg/form"
	"tableflip.dev/dreams/pkg/schema"
)

// AddOptions holds the field flags of the new entry command. The flag set
// is the source of truth; only flags the user changed are applied.
type AddOptions struct {
	Title        string
	Type         string
	Context      string
	Content      string
	Rating       int
	Length       int
	SleepQuality int
	Vividness    int

	InDream       bool
	Mood          bool
	LinkedContext bool
	Recurring     bool
	Lucid         bool
	Control       bool

	Emotions []string
	People   []string

	NoForm bool
}

// scalarFlags maps flag names to the fields they set.
var scalarFlags = []struct {
	name string
	id   schema.ID
}{
	{"title", schema.Title},
	{"type", schema.Dream},
	{"rating", schema.Rating},
	{"length", schema.DreamLength},
	{"sleep-quality", schema.SleepQuality},
	{"in-dream", schema.InDream},
	{"mood", schema.Mood},
	{"linked-context", schema.LinkedContext},
	{"context", schema.Context},
	{"recurring", schema.Recurring},
	{"lucid", schema.Lucid},
	{"control", schema.Control},
	{"vividness", schema.Vividness},
}

func AddEntryArgs(cmd *cobra.Command, o *AddOptions) {
	f := cmd.Flags()
	f.StringVar(&o.Title, "title", "",
		"Title of the entry, defaults to today's date.")
	f.StringVar(&o.Type, "type", "",
		`Dream or Nightmare.`)
	f.IntVar(&o.Rating, "rating", 0,
		"Dream rating, 1 to 10.")
	f.IntVar(&o.Length, "length", 0,
		"Dream length, 1 to 10.")
	f.IntVar(&o.SleepQuality, "sleep-quality", 0,
		"Sleep quality, 1 to 10.")
	f.IntVar(&o.Vividness, "vividness", 0,
		"Vividness, 1 to 10.")
	f.BoolVar(&o.InDream, "in-dream", false,
		"You were personally in the dream.")
	f.BoolVar(&o.Mood, "mood", false,
		"The dream corresponds to your mood.")
	f.BoolVar(&o.LinkedContext, "linked-context", false,
		"The dream is linked to a context.")
	f.StringVar(&o.Context, "context", "",
		"Context the dream relates to.")
	f.BoolVar(&o.Recurring, "recurring", false,
		"The dream is recurring.")
	f.BoolVar(&o.Lucid, "lucid", false,
		"The dream was lucid.")
	f.BoolVar(&o.Control, "control", false,
		"You could control the dream.")
	f.StringArrayVar(&o.Emotions, "emotion", nil,
		base.Wrap80("An emotion felt in the dream, repeat the flag for more than one."))
	f.StringArrayVar(&o.People, "person", nil,
		base.Wrap80("A person who appeared in the dream, repeat the flag for more than one."))
	f.StringVar(&o.Content, "content", "",
		"The dream itself.")
	f.BoolVar(&o.NoForm, "no-form", false,
		base.Wrap80("Write the entry from flags only, without opening the form."))
}

// Changed reports whether any field flag was given.
func (o *AddOptions) Changed(flags *pflag.FlagSet) bool {
	for _, sf := range scalarFlags {
		if flags.Changed(sf.name) {
			return true
		}
	}
	return flags.Changed("content") || flags.Changed("emotion") || flags.Changed("person")
}

// Apply writes the changed flags into the form. Values are checked by the
// form, so an out of range number is reported here.
func (o *AddOptions) Apply(flags *pflag.FlagSet, s *form.State, rows *form.Rows) error {
	if flags.Changed("content") {
		s.SetContent(o.Content)
	}
	for _, sf := range scalarFlags {
		if !flags.Changed(sf.name) {
			continue
		}
		raw := flags.Lookup(sf.name).Value.String()
		if err := s.SetScalar(sf.id, raw); err != nil {
			return fmt.Errorf("--%s: %w", sf.name, err)
		}
	}
	for _, v := range o.Emotions {
		if err := rows.Add(schema.Emotions).Write(s, v); err != nil {
			return fmt.Errorf("--emotion: %w", err)
		}
	}
	for _, v := range o.People {
		if err := rows.Add(schema.People).Write(s, v); err != nil {
			return fmt.Errorf("--person: %w", err)
		}
	}
	return nil
}
