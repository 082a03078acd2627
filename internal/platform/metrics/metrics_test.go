package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findFamily(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("metric %s not found", name)
	return nil
}

func labelsOf(m *dto.Metric) map[string]string {
	out := map[string]string{}
	for _, lp := range m.GetLabel() {
		out[lp.GetName()] = lp.GetValue()
	}
	return out
}

func TestNewCollector_ReturnsNonNil(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, NewCollector(prometheus.NewRegistry()))
}

func TestNewCollector_DoubleRegisterPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = NewCollector(reg)

	assert.Panics(t, func() { NewCollector(reg) })
}

func TestObserveHTTP(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.ObserveHTTP(http.MethodPost, "/users", http.StatusCreated, 15*time.Millisecond)
	c.ObserveHTTP(http.MethodPost, "/users", http.StatusCreated, 5*time.Millisecond)

	mf := findFamily(t, reg, "admin_http_requests_total")
	require.Len(t, mf.GetMetric(), 1)
	m := mf.GetMetric()[0]
	assert.Equal(t, float64(2), m.GetCounter().GetValue())
	assert.Equal(t, map[string]string{"route": "/users", "method": "POST", "status": "201"}, labelsOf(m))

	hist := findFamily(t, reg, "admin_http_request_duration_seconds")
	require.Len(t, hist.GetMetric(), 1)
	assert.Equal(t, uint64(2), hist.GetMetric()[0].GetHistogram().GetSampleCount())
}

func TestRecordOperation(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordOperation("user", "add", ResultOK)
	c.RecordOperation("user", "add", ResultConflict)
	c.RecordOperation("user", "add", ResultConflict)

	mf := findFamily(t, reg, "admin_resource_operations_total")
	got := map[string]float64{}
	for _, m := range mf.GetMetric() {
		got[labelsOf(m)["result"]] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{ResultOK: 1, ResultConflict: 2}, got)
}

func TestRecordCacheLookup(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordCacheLookup("product", true)
	c.RecordCacheLookup("product", false)
	c.RecordCacheLookup("product", false)

	mf := findFamily(t, reg, "admin_cache_lookups_total")
	got := map[string]float64{}
	for _, m := range mf.GetMetric() {
		got[labelsOf(m)["result"]] = m.GetCounter().GetValue()
	}
	assert.Equal(t, map[string]float64{"hit": 1, "miss": 2}, got)
}

func TestHandler_ServesMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordOperation("user", "deleteAll", ResultOK)

	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `admin_resource_operations_total{operation="deleteAll",resource="user",result="ok"} 1`)
}

func TestResultForStatus(t *testing.T) {
	t.Parallel()

	tests := map[int]string{
		http.StatusOK:                  ResultOK,
		http.StatusCreated:             ResultOK,
		http.StatusBadRequest:          ResultBadRequest,
		http.StatusNotFound:            ResultNotFound,
		http.StatusConflict:            ResultConflict,
		http.StatusUnprocessableEntity: ResultInvalid,
		http.StatusInternalServerError: ResultError,
	}
	for status, want := range tests {
		assert.Equal(t, want, ResultForStatus(status), "status %d", status)
	}
}
