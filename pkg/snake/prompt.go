package snake

import (
	"io"

	"github.com/manifoldco/promptui"

	"tableflip.dev/dreams/pkg/form"
)

// Prompter is the promptui-backed Asker.
type Prompter struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

var textTemplates = &promptui.PromptTemplates{
	Prompt:  "{{ . }}: ",
	Valid:   "{{ . | green }}: ",
	Invalid: "{{ . | red }}: ",
	Success: "{{ . | bold }}: ",
}

// Text implements Asker.
func (p *Prompter) Text(label, placeholder string) (string, error) {
	prompt := promptui.Prompt{
		Label:     label,
		Templates: textTemplates,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	if placeholder != "" {
		prompt.Label = label + " (" + placeholder + ")"
	}
	return prompt.Run()
}

// Select implements Asker.
func (p *Prompter) Select(label string, items []string) (int, error) {
	prompt := promptui.Select{
		HideHelp: true,
		Label:    label,
		Items:    items,
		Size:     11,
		Stdin:    p.Stdin,
		Stdout:   p.Stdout,
	}
	i, _, err := prompt.Run()
	return i, err
}

// Bool implements Asker. An empty answer leaves the toggle untouched.
func (p *Prompter) Bool(label string) (*bool, error) {
	validate := func(input string) error {
		if input == "" {
			return nil
		}
		_, err := form.ParseBool(input)
		return err
	}
	prompt := promptui.Prompt{
		Label:     label + " [y/n]",
		Templates: textTemplates,
		Validate:  validate,
		Stdin:     p.Stdin,
		Stdout:    p.Stdout,
	}
	result, err := prompt.Run()
	if err != nil {
		return nil, err
	}
	if result == "" {
		return nil, nil
	}
	v, _ := form.ParseBool(result)
	return &v, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser wraps w for promptui, which wants to own its output.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}
