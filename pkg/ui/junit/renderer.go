// Package junit renders doctor reports as JUnit XML so CI systems can show
// each diagnosis as a test case.
package junit

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/errors"
)

// Renderer writes JUnit XML
type Renderer struct {
	output io.Writer
}

// New creates a new JUnit renderer
func New(output io.Writer) *Renderer {
	return &Renderer{output: output}
}

// Document builds the JUnit document for report. Diagnoses become test
// cases grouped into one test suite per category, in order of first
// appearance.
func Document(report *doctor.Report) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	s := report.Summary()
	root := doc.CreateElement("testsuites")
	root.CreateAttr("name", "bitdoctor")
	root.CreateAttr("tests", fmt.Sprint(s.Total))
	root.CreateAttr("failures", fmt.Sprint(s.Invalid))
	root.CreateAttr("errors", fmt.Sprint(s.Errored))
	root.CreateAttr("time", seconds(report.Duration()))

	suites := make(map[string]*etree.Element)
	counts := make(map[string][3]int)
	var order []string

	for _, e := range report.Entries {
		suite, ok := suites[e.Category]
		if !ok {
			suite = root.CreateElement("testsuite")
			suite.CreateAttr("name", e.Category)
			suites[e.Category] = suite
			order = append(order, e.Category)
		}
		c := counts[e.Category]
		c[0]++

		tc := suite.CreateElement("testcase")
		tc.CreateAttr("name", e.Name)
		tc.CreateAttr("classname", e.Category+"."+e.ID)
		tc.CreateAttr("time", seconds(e.Duration))

		switch e.State {
		case doctor.Invalid:
			c[1]++
			failure := tc.CreateElement("failure")
			failure.CreateAttr("type", e.State.String())
			failure.CreateAttr("message", firstLine(e.Symptoms))
			failure.SetText(strings.TrimSpace(e.Symptoms + "\n\n" + e.ManualRemedy))
		case doctor.Errored:
			c[2]++
			failure := tc.CreateElement("error")
			failure.CreateAttr("type", e.State.String())
			failure.CreateAttr("message", e.Error)
		}
		if len(e.Errors) > 0 {
			tc.CreateElement("system-err").SetText(strings.Join(e.Errors, "\n"))
		}
		counts[e.Category] = c
	}

	for _, category := range order {
		c := counts[category]
		suite := suites[category]
		suite.CreateAttr("tests", fmt.Sprint(c[0]))
		suite.CreateAttr("failures", fmt.Sprint(c[1]))
		suite.CreateAttr("errors", fmt.Sprint(c[2]))
	}

	doc.Indent(2)
	return doc
}

// RenderReport writes the JUnit document for report
func (r *Renderer) RenderReport(report *doctor.Report) error {
	if _, err := Document(report).WriteTo(r.output); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write JUnit XML")
	}
	return nil
}

// RenderDiagnoses is not supported: JUnit describes runs, not catalogs
func (r *Renderer) RenderDiagnoses(infos []doctor.Info) error {
	return errors.New(errors.ErrInvalidInput, "junit output is only available for doctor runs")
}

// RenderError writes an empty suite carrying the error
func (r *Renderer) RenderError(err error) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("testsuites")
	root.CreateAttr("name", "bitdoctor")
	root.CreateAttr("tests", "0")
	root.CreateAttr("errors", "1")
	root.CreateElement("system-err").SetText(err.Error())
	doc.Indent(2)

	if _, werr := doc.WriteTo(r.output); werr != nil {
		return errors.Wrap(werr, errors.ErrRender, "failed to write JUnit XML")
	}
	return nil
}

// RenderMessage writes msg as an XML comment
func (r *Renderer) RenderMessage(msg string) error {
	if _, err := fmt.Fprintf(r.output, "<!-- %s -->\n", strings.ReplaceAll(msg, "--", "- -")); err != nil {
		return errors.Wrap(err, errors.ErrRender, "failed to write output")
	}
	return nil
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.3f", d.Seconds())
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(s), "\n")
	return line
}
