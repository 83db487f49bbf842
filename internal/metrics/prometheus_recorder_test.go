package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveSiteDuration("LRM", 150*time.Millisecond)
	pr.ObserveGenerationDuration(500 * time.Millisecond)
	pr.IncSiteResult("LRM", ResultSuccess)
	pr.IncSiteResult("EAD", ResultFailed)
	pr.IncGenerationOutcome("partial")
	pr.IncLinkResolution(LinkResolved)
	pr.IncLinkResolution(LinkResolved)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)

	assert.InDelta(t, 1, testutil.ToFloat64(pr.siteResults.WithLabelValues("EAD", string(ResultFailed))), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.links.WithLabelValues(string(LinkResolved))), 0)
}

func TestWriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.IncGenerationOutcome("success")

	path := filepath.Join(t.TempDir(), "stdsites.prom")
	require.NoError(t, pr.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `stdsites_generation_outcomes_total{outcome="success"} 1`))
}

func TestWriteTextfileBadDirectory(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	err := pr.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom"))
	require.Error(t, err)
}
