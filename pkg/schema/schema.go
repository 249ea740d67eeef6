// Package schema declares the fields of a dream journal entry.
package schema

// ID identifies a field. IDs are unique across the schema.
type ID string

const (
	Content       ID = "content"
	Title         ID = "title"
	Dream         ID = "dream"
	Rating        ID = "rating"
	DreamLength   ID = "dreamLength"
	SleepQuality  ID = "sleepQuality"
	InDream       ID = "inDream"
	Emotions      ID = "emotions"
	Mood          ID = "mood"
	LinkedContext ID = "linkedContext"
	Context       ID = "context"
	Recurring     ID = "recurring"
	People        ID = "people"
	Lucid         ID = "lucid"
	Control       ID = "control"
	Vividness     ID = "vividness"
)

// FieldDescriptor is the static declaration of one form input.
type FieldDescriptor struct {
	ID    ID
	Label string
	Kind  Kind
}

var scale = Number{Min: 1, Max: 10}

// ContentField is the body of the entry. It is always shown first and is
// not part of Fields.
var ContentField = FieldDescriptor{
	ID:    Content,
	Label: "Content",
	Kind:  FreeText{Placeholder: "Add the contents of your dream"},
}

var fields = []FieldDescriptor{
	{ID: Title, Label: "Title", Kind: Text{Placeholder: "Add an optional title"}},
	{ID: Dream, Label: "Dream or nightmare?", Kind: Choice{Options: []string{"Dream", "Nightmare"}}},
	{ID: Rating, Label: "Dream Rating", Kind: scale},
	{ID: DreamLength, Label: "Dream Length", Kind: scale},
	{ID: SleepQuality, Label: "Sleep Quality", Kind: scale},
	{ID: InDream, Label: "Personally in the dream?", Kind: Checkbox{}},
	{ID: Emotions, Label: "Emotions", Kind: List{Item: "Emotion"}},
	{ID: Mood, Label: "Corresponds to mood?", Kind: Checkbox{}},
	{ID: LinkedContext, Label: "Linked to a context?", Kind: Checkbox{}},
	{ID: Context, Label: "Context", Kind: Text{Placeholder: "Add context if applicable"}},
	{ID: Recurring, Label: "Recurring Dream?", Kind: Checkbox{}},
	{ID: People, Label: "People", Kind: List{Item: "Person"}},
	{ID: Lucid, Label: "Lucid dream?", Kind: Checkbox{}},
	{ID: Control, Label: "Can control dream?", Kind: Checkbox{}},
	{ID: Vividness, Label: "Vividness", Kind: scale},
}

// Fields returns the entry schema in display order. The returned slice is a
// copy; callers may not change the schema.
func Fields() []FieldDescriptor {
	out := make([]FieldDescriptor, len(fields))
	copy(out, fields)
	return out
}

// Lookup finds the descriptor for id, including the content field.
func Lookup(id ID) (FieldDescriptor, bool) {
	if id == Content {
		return ContentField, true
	}
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}
