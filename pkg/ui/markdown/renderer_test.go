package markdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bitdoctor/pkg/doctor"
	"github.com/arthur-debert/bitdoctor/pkg/testutil"
)

func TestDocument(t *testing.T) {
	doc := Document(testutil.SampleReport())

	assert.Contains(t, doc, "# bitdoctor report")
	assert.Contains(t, doc, "| Check invalid link files | bit-core-files | invalid |")
	assert.Contains(t, doc, "**1 valid, 1 invalid, 1 errored, 1 errors**")
	assert.Contains(t, doc, "## Check invalid link files")
	assert.Contains(t, doc, "### Manual remedy\n\n```\nplease delete the following paths:\n/ws/.bit/components/envA\n```")
	assert.Contains(t, doc, "> [DIAGNOSIS_FAILED] diagnosis failed: no workspace")
	// Healthy diagnoses get no section
	assert.NotContains(t, doc, "## Check workspace config")
}

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 120)
	r.Style = "notty"

	require.NoError(t, r.RenderReport(testutil.SampleReport()))
	assert.Contains(t, buf.String(), "Check invalid link files")
	assert.Contains(t, buf.String(), "/ws/.bit/components/envA")
}

func TestRenderDiagnoses(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, 120)
	r.Style = "notty"

	require.NoError(t, r.RenderDiagnoses([]doctor.Info{{ID: "broken-symlinks", Name: "Check invalid link files"}}))
	assert.Contains(t, buf.String(), "broken-symlinks")
}
