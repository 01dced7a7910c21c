package render_test

import (
	"bytes"
	"testing"

	"crm/src/utils/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBarGraph(t *testing.T) {
	var buf bytes.Buffer
	err := render.RenderBarGraph(&buf, "Pipeline by stage", "Value", []render.BarSeries{
		{Label: "Negotiation", Value: 250000},
		{Label: "Lead", Value: 1200},
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Pipeline by stage")
	assert.Contains(t, html, "Negotiation")
	assert.Contains(t, html, "250000")
}

func TestRenderBarGraphEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.RenderBarGraph(&buf, "Empty", "Value", nil))
	assert.Contains(t, buf.String(), "Empty")
}
