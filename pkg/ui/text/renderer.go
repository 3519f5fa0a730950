// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport renders one block per diagnosis and a summary line
func (r *Renderer) RenderReport(report *doctor.Report) error {
	var b strings.Builder

	for _, e := range report.Entries {
		fmt.Fprintf(&b, "[%s] %s (%s)\n", e.State, e.Name, e.Category)
		if e.Error != "" {
			fmt.Fprintf(&b, "  error: %s\n", e.Error)
		}
		if e.Symptoms != "" {
			b.WriteString("  symptoms:\n")
			b.WriteString(indent(e.Symptoms, "    "))
		}
		if e.ManualRemedy != "" {
			b.WriteString("  manual remedy:\n")
			b.WriteString(indent(e.ManualRemedy, "    "))
		}
		if len(e.Errors) > 0 {
			b.WriteString("  errors:\n")
			for _, msg := range e.Errors {
				fmt.Fprintf(&b, "    - %s\n", msg)
			}
		}
	}

	s := report.Summary()
	if len(report.Entries) > 0 {
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "summary: %d valid, %d invalid, %d errored, %d errors\n", s.Valid, s.Invalid, s.Errored, s.Errors)

	return r.write(b.String())
}

// RenderDiagnoses renders one line per diagnosis
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	if len(infos) == 0 {
		return r.write("No diagnoses registered\n")
	}

	width := 0
	for _, info := range infos {
		width = max(width, len(info.ID))
	}

	var b strings.Builder
	for _, info := range infos {
		fmt.Fprintf(&b, "%-*s  %s [%s]\n    %s\n", width, info.ID, info.Name, info.Category, info.Description)
	}
	return r.write(b.String())
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.write(fmt.Sprintf("Error: %v\n", err))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(msg + "\n")
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.output, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// indent prefixes every line of s and terminates it with a newline
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n") + "\n"
}
