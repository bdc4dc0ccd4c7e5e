package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/orbital/orbital"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorObserveSample(t *testing.T) {
	c := NewCollector()

	c.ObserveSample(orbital.KindSection, 100, 2*time.Millisecond)
	c.ObserveSample(orbital.KindSection, 50, time.Millisecond)
	c.ObserveSample(orbital.KindProfile, 1000, time.Millisecond)

	if got := testutil.ToFloat64(c.samples.WithLabelValues("section")); got != 2 {
		t.Errorf("Expected 2 section samples, got %g", got)
	}
	if got := testutil.ToFloat64(c.points.WithLabelValues("section")); got != 150 {
		t.Errorf("Expected 150 section points, got %g", got)
	}
	if got := testutil.ToFloat64(c.samples.WithLabelValues("profile")); got != 1 {
		t.Errorf("Expected 1 profile sample, got %g", got)
	}
	if got := testutil.CollectAndCount(c.duration); got != 2 {
		t.Errorf("Expected 2 duration series, got %d", got)
	}
}

func TestCollectorWiredToModel(t *testing.T) {
	c := NewCollector()
	m := orbital.New()
	m.SetObserver(c)

	buf := make([]float64, 64)
	m.RadialProfile(buf)
	if err := m.PlanarSection(buf, 8, 8); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := m.ProjectedField(buf, 8, 8, orbital.View{}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, kind := range []string{"profile", "section", "projected"} {
		if got := testutil.ToFloat64(c.samples.WithLabelValues(kind)); got != 1 {
			t.Errorf("%s: expected 1 sample, got %g", kind, got)
		}
		if got := testutil.ToFloat64(c.points.WithLabelValues(kind)); got != 64 {
			t.Errorf("%s: expected 64 points, got %g", kind, got)
		}
	}

	// Rejected grids are not observed
	_ = m.PlanarSection(buf, 0, 8)
	if got := testutil.ToFloat64(c.samples.WithLabelValues("section")); got != 1 {
		t.Errorf("Expected rejected call to be unobserved, got %g", got)
	}
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector()
	c.ObserveSample(orbital.KindProjected, 10, time.Millisecond)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, _ := io.ReadAll(rec.Body)
	for _, want := range []string{
		`orbital_samples_total{kind="projected"} 1`,
		`orbital_sample_points_total{kind="projected"} 10`,
		"orbital_sample_duration_seconds_bucket",
	} {
		if !strings.Contains(string(body), want) {
			t.Errorf("Expected exposition to contain %q", want)
		}
	}
}
