package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	c := NewCollector()

	c.ObserveSection("page")
	c.ObserveSection("page")
	c.ObserveSection("cube")
	c.ObserveReload(nil)
	c.ObserveReload(errors.New("bad file"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.SectionRenders.WithLabelValues("page")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.SectionRenders.WithLabelValues("cube")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ContentReloads.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ContentReloads.WithLabelValues("failure")))
}

func TestCollectorsAreIndependent(t *testing.T) {
	a := NewCollector()
	b := NewCollector()
	a.ObserveSection("page")
	assert.Equal(t, 0.0, testutil.ToFloat64(b.SectionRenders.WithLabelValues("page")))
}

func TestHandler(t *testing.T) {
	c := NewCollector()
	c.ObserveSection("about")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_section_renders_total{section="about"} 1`)
}
