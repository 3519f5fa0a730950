// Package ui renders doctor reports. It supports terminal (rich), text
// (plain), JSON, YAML, JUnit XML and markdown output.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/ui/json"
	"github.com/arthur-debert/bitdoctor/pkg/ui/junit"
	"github.com/arthur-debert/bitdoctor/pkg/ui/markdown"
	"github.com/arthur-debert/bitdoctor/pkg/ui/terminal"
	"github.com/arthur-debert/bitdoctor/pkg/ui/text"
	"github.com/arthur-debert/bitdoctor/pkg/ui/yaml"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderReport renders the outcome of a doctor run
	RenderReport(report *doctor.Report) error

	// RenderDiagnoses renders the available diagnoses
	RenderDiagnoses(infos []doctor.Info) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// Options tune renderers that support them
type Options struct {
	// Width wraps markdown output; 0 lets the renderer decide
	Width int
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer, opts Options) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output, opts)
		}
		// Not a file, so nothing to detect
		return NewRenderer(FormatText, output, opts)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	case FormatYAML:
		return yaml.New(output), nil
	case FormatJUnit:
		return junit.New(output), nil
	case FormatMarkdown:
		return markdown.New(output, opts.Width), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
