package schema

import "strconv"

// Kind selects the input widget for a field. The set of kinds is closed;
// callers switch over the concrete types below.
type Kind interface {
	kind()
	String() string
}

// Text is a single-line free string.
type Text struct {
	Placeholder string
}

// FreeText is a multi-line body.
type FreeText struct {
	Placeholder string
}

// Number is an integer picked from the inclusive range [Min, Max].
type Number struct {
	Min int
	Max int
}

// Checkbox is a toggle. It reports nothing until it is toggled once.
type Checkbox struct{}

// Choice is one of a fixed set of options.
type Choice struct {
	Options []string
}

// List is a variable-length sequence of strings grown one row at a time.
type List struct {
	// Item labels a single row, e.g. "Person".
	Item string
}

func (Text) kind()     {}
func (FreeText) kind() {}
func (Number) kind()   {}
func (Checkbox) kind() {}
func (Choice) kind()   {}
func (List) kind()     {}

func (Text) String() string     { return "text" }
func (FreeText) String() string { return "freetext" }
func (Checkbox) String() string { return "checkbox" }
func (Choice) String() string   { return "choice" }
func (List) String() string     { return "list" }

func (n Number) String() string {
	return "number[" + strconv.Itoa(n.Min) + "-" + strconv.Itoa(n.Max) + "]"
}

// Contains reports whether v is inside the range.
func (n Number) Contains(v int) bool {
	return v >= n.Min && v <= n.Max
}

// Options returns the dropdown domain, Min through Max.
func (n Number) Options() []string {
	if n.Max < n.Min {
		return nil
	}
	opts := make([]string, 0, n.Max-n.Min+1)
	for i := n.Min; i <= n.Max; i++ {
		opts = append(opts, strconv.Itoa(i))
	}
	return opts
}

// Has reports whether opt is one of the choices.
func (c Choice) Has(opt string) bool {
	for _, o := range c.Options {
		if o == opt {
			return true
		}
	}
	return false
}
