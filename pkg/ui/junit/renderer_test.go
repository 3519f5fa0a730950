package junit

import (
	"bytes"
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bitdoctor/pkg/testutil"
)

func TestRenderReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderReport(testutil.SampleReport()))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(buf.Bytes()))

	root := doc.SelectElement("testsuites")
	require.NotNil(t, root)
	assert.Equal(t, "3", root.SelectAttrValue("tests", ""))
	assert.Equal(t, "1", root.SelectAttrValue("failures", ""))
	assert.Equal(t, "1", root.SelectAttrValue("errors", ""))

	suites := root.SelectElements("testsuite")
	require.Len(t, suites, 2)
	assert.Equal(t, "workspace", suites[0].SelectAttrValue("name", ""))
	assert.Equal(t, "bit-core-files", suites[1].SelectAttrValue("name", ""))
	assert.Equal(t, "2", suites[1].SelectAttrValue("tests", ""))

	cases := suites[1].SelectElements("testcase")
	require.Len(t, cases, 2)
	assert.Equal(t, "bit-core-files.broken-symlinks", cases[0].SelectAttrValue("classname", ""))
	assert.Equal(t, "0.005", cases[0].SelectAttrValue("time", ""))

	failure := cases[0].SelectElement("failure")
	require.NotNil(t, failure)
	assert.Equal(t, "the following symlink files point to non-existent paths", failure.SelectAttrValue("message", ""))
	assert.Contains(t, failure.Text(), "please delete the following paths:")
	require.NotNil(t, cases[0].SelectElement("system-err"))

	require.NotNil(t, cases[1].SelectElement("error"))
	assert.Nil(t, suites[0].SelectElement("testcase").SelectElement("failure"))
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf).RenderError(errors.New("no workspace")))
	assert.Contains(t, buf.String(), "<system-err>no workspace</system-err>")
}

func TestRenderDiagnosesUnsupported(t *testing.T) {
	assert.Error(t, New(&bytes.Buffer{}).RenderDiagnoses(nil))
}
