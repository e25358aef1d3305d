package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/calckit/internal/domain"
)

func counterValue(t *testing.T, m *Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, metric := range f.GetMetric() {
			if matches(metric, labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func matches(metric *dto.Metric, labels map[string]string) bool {
	got := map[string]string{}
	for _, lp := range metric.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range labels {
		if got[k] != v {
			return false
		}
	}
	return true
}

func TestObserveCalculation(t *testing.T) {
	m := New()

	m.ObserveCalculation(domain.CalcBMI, "ok")
	m.ObserveCalculation(domain.CalcBMI, "ok")
	m.ObserveCalculation(domain.CalcBMI, string(domain.KindIncomplete))

	name := "calckit_calculations_total"
	assert.Equal(t, 2.0, counterValue(t, m, name, map[string]string{"calculator": "bmi", "outcome": "ok"}))
	assert.Equal(t, 1.0, counterValue(t, m, name, map[string]string{"calculator": "bmi", "outcome": "incomplete"}))
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/v1/calculators/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, id := range []string{"bmi", "age"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calculators/"+id, nil))
		require.Equal(t, http.StatusTeapot, rec.Code)
	}

	got := counterValue(t, m, "calckit_http_requests_total", map[string]string{
		"code":   "418",
		"method": "GET",
		"path":   "/api/v1/calculators/{id}",
	})
	assert.Equal(t, 2.0, got)
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.ObserveCalculation(domain.CalcAge, "ok")

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), `calckit_calculations_total{calculator="age",outcome="ok"} 1`)
}
