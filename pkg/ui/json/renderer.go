// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	encoder *json.Encoder
}

// reportDocument is the JSON shape of a report
type reportDocument struct {
	Summary doctor.Summary `json:"summary"`
	Entries []doctor.Entry `json:"entries"`
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}
}

// RenderReport renders the report with a summary block
func (r *Renderer) RenderReport(report *doctor.Report) error {
	return r.encode(reportDocument{Summary: report.Summary(), Entries: report.Entries})
}

// RenderDiagnoses renders the diagnoses as a JSON array
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	if infos == nil {
		infos = []doctor.Info{}
	}
	return r.encode(infos)
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	errorObj := map[string]string{
		"error": err.Error(),
		"code":  string(errors.GetErrorCode(err)),
	}
	return r.encode(errorObj)
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encode(map[string]string{"message": msg})
}

func (r *Renderer) encode(v interface{}) error {
	if err := r.encoder.Encode(v); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to encode JSON")
	}
	return nil
}
