package decay_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2"

	"radon/decay"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G'}

func TestDecayChartRenders(t *testing.T) {
	iso := decay.Rn222()
	times := decay.Times()
	days := decay.Days(times)
	runs := decay.Results()

	graph := runs.DecayChart(days, iso.Analytic(decay.N0, times))
	assert.Equal(t, "Radon-222 Decay: Numerical vs Analytic", graph.Title)

	// one series per run plus the analytic reference
	require.Len(t, graph.Series, len(runs)+1)

	var buf bytes.Buffer
	require.NoError(t, graph.Render(chart.PNG, &buf))
	assert.Equal(t, pngHeader, buf.Bytes()[:4])
}

func TestErrorChartRenders(t *testing.T) {
	runs := decay.Results()

	graph := runs.ErrorChart(decay.Days(decay.Times()))
	assert.Equal(t, "Relative Error vs Time", graph.Title)
	require.Len(t, graph.Series, len(runs))

	var buf bytes.Buffer
	require.NoError(t, graph.Render(chart.PNG, &buf))
	assert.Equal(t, pngHeader, buf.Bytes()[:4])
}
