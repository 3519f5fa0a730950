// Package markdown renders doctor reports as markdown, styled for the
// terminal with glamour.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// Renderer renders markdown through glamour
type Renderer struct {
	output io.Writer
	// Style name: "dark", "light", "notty", "auto", or path to custom style
	Style string
	// Width wraps output; 0 keeps glamour's default
	Width int
}

// New creates a markdown renderer with automatic style detection
func New(output io.Writer, width int) *Renderer {
	return &Renderer{output: output, Style: "auto", Width: width}
}

// Document returns the markdown source for report
func Document(report *doctor.Report) string {
	var b strings.Builder
	b.WriteString("# bitdoctor report\n\n")

	s := report.Summary()
	b.WriteString("| Diagnosis | Category | State |\n|---|---|---|\n")
	for _, e := range report.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", e.Name, e.Category, e.State)
	}
	fmt.Fprintf(&b, "\n**%d valid, %d invalid, %d errored, %d errors**\n", s.Valid, s.Invalid, s.Errored, s.Errors)

	for _, e := range report.Entries {
		if !e.Problem() {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n_%s_\n", e.Name, e.Description)
		if e.Error != "" {
			fmt.Fprintf(&b, "\n> %s\n", e.Error)
		}
		if e.Symptoms != "" {
			fmt.Fprintf(&b, "\n### Symptoms\n\n```\n%s\n```\n", strings.TrimSpace(e.Symptoms))
		}
		if e.ManualRemedy != "" {
			fmt.Fprintf(&b, "\n### Manual remedy\n\n```\n%s\n```\n", strings.TrimSpace(e.ManualRemedy))
		}
		if len(e.Errors) > 0 {
			b.WriteString("\n### Errors\n\n")
			for _, msg := range e.Errors {
				fmt.Fprintf(&b, "- `%s`\n", msg)
			}
		}
	}
	return b.String()
}

// RenderReport renders the report document
func (r *Renderer) RenderReport(report *doctor.Report) error {
	return r.render(Document(report))
}

// RenderDiagnoses renders the diagnoses as a table
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	var b strings.Builder
	b.WriteString("# Diagnoses\n\n| ID | Name | Category | Description |\n|---|---|---|---|\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n", info.ID, info.Name, info.Category, info.Description)
	}
	return r.render(b.String())
}

// RenderError renders an error as a quote
func (r *Renderer) RenderError(err error) error {
	return r.render(fmt.Sprintf("> **Error:** %s\n", err))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.render(msg + "\n")
}

func (r *Renderer) render(content string) error {
	if _, err := io.WriteString(r.output, r.style(content)); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

func (r *Renderer) style(content string) string {
	return Style(content, r.Style, r.Width)
}

// Style converts markdown to terminal output with the named glamour style,
// returning content unchanged when glamour cannot render it
func Style(content, styleName string, width int) string {
	var options []glamour.TermRendererOption

	if styleName != "" && styleName != "auto" {
		options = append(options, glamour.WithStylePath(styleName))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
