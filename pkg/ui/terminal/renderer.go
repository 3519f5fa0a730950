// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/style"
)

// Renderer provides rich terminal output using lipgloss and pterm styles
type Renderer struct {
	output io.Writer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{output: w}
}

// RenderReport renders each diagnosis with a state badge, boxing the
// symptoms and remedy of failing ones
func (r *Renderer) RenderReport(report *doctor.Report) error {
	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("bitdoctor"))
	b.WriteString("\n")

	for _, e := range report.Entries {
		fmt.Fprintf(&b, "%s %s %s %s\n",
			style.Indicator(e.State),
			style.StateBadge(e.State),
			style.SubtitleStyle.Render(e.Name),
			style.CategoryStyle.Render("("+e.Category+")"))

		if e.Error != "" {
			b.WriteString(style.Indent(style.ErrorStyle.Render(e.Error), 2))
			b.WriteString("\n")
		}
		if e.Symptoms != "" || e.ManualRemedy != "" {
			body := strings.TrimSpace(e.Symptoms)
			if e.ManualRemedy != "" {
				body += "\n\n" + style.WarningStyle.Render(strings.TrimSpace(e.ManualRemedy))
			}
			b.WriteString(style.Indent(style.BoxStyle.Render(body), 2))
			b.WriteString("\n")
		}
		for _, msg := range e.Errors {
			b.WriteString(style.Indent(style.WarningIndicator+" "+style.MutedStyle.Render(msg), 2))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(summaryLine(report.Summary()))
	b.WriteString("\n")

	return r.write(b.String())
}

func summaryLine(s doctor.Summary) string {
	if s.Healthy {
		return style.SuccessStyle.Render(fmt.Sprintf("All %d diagnoses passed", s.Total))
	}
	parts := []string{
		style.SuccessStyle.Render(fmt.Sprintf("%d valid", s.Valid)),
		style.ErrorStyle.Render(fmt.Sprintf("%d invalid", s.Invalid)),
		style.ErrorStyle.Render(fmt.Sprintf("%d errored", s.Errored)),
	}
	if s.Errors > 0 {
		parts = append(parts, style.WarningStyle.Render(fmt.Sprintf("%d errors", s.Errors)))
	}
	return strings.Join(parts, style.MutedStyle.Render(" · "))
}

// RenderDiagnoses renders the available diagnoses
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	if len(infos) == 0 {
		return r.write(style.MutedStyle.Render("No diagnoses registered") + "\n")
	}

	var b strings.Builder
	b.WriteString(style.TitleStyle.Render("Diagnoses"))
	b.WriteString("\n")
	for _, info := range infos {
		fmt.Fprintf(&b, "%s %s %s\n", style.PendingIndicator, style.Bold(info.ID), style.CategoryStyle.Render("("+info.Category+")"))
		b.WriteString(style.Indent(style.NormalStyle.Render(info.Name)+"\n"+style.MutedStyle.Render(info.Description), 2))
		b.WriteString("\n")
	}
	return r.write(b.String())
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	return r.write(style.RenderError(err) + "\n")
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(style.NormalStyle.Render(msg) + "\n")
}

func (r *Renderer) write(s string) error {
	if _, err := io.WriteString(r.output, s); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}
