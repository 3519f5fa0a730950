// Package yaml provides machine-readable YAML output
package yaml

import (
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// Renderer writes YAML documents, one per call
type Renderer struct {
	output io.Writer
}

type reportDocument struct {
	Summary doctor.Summary `yaml:"summary"`
	Entries []doctor.Entry `yaml:"entries"`
}

// New creates a new YAML renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// RenderReport renders the report with a summary block
func (r *Renderer) RenderReport(report *doctor.Report) error {
	return r.encode(reportDocument{Summary: report.Summary(), Entries: report.Entries})
}

// RenderDiagnoses renders the diagnoses as a YAML sequence
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	if infos == nil {
		infos = []doctor.Info{}
	}
	return r.encode(infos)
}

// RenderError renders an error as YAML
func (r *Renderer) RenderError(err error) error {
	return r.encode(map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	})
}

// RenderMessage renders a simple message as YAML
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	encoder := yamlv3.NewEncoder(r.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode YAML")
	}
	return nil
}
