package printers

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/dreams/pkg/logging"
)

const defaultWidth = 80

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

// body formats a document body for the terminal.
func (pp *PrettyPrint) body(content string) string {
	if pp.Markdown {
		out, err := renderMarkdown(content, pp.width())
		if err == nil {
			return out
		}
		logging.Warnf("markdown: %v, printing plain text", err)
	}
	return wordwrap.String(content, pp.width())
}

func renderMarkdown(content string, wrap int) (string, error) {
	style := "dark"
	if color.NoColor {
		style = "notty"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return "", err
	}
	out, err := renderer.Render(content)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
