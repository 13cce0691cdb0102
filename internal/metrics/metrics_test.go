package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	t.Fatalf("%s metric not found", name)
	return nil
}

func TestNewCollector_ReturnsNonNil(t *testing.T) {
	if NewCollector(prometheus.NewRegistry()) == nil {
		t.Fatal("expected non-nil Collector")
	}
}

func TestRecordLogin_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordLogin(OutcomeSuccess, 10*time.Millisecond)
	c.RecordLogin(OutcomeSuccess, 20*time.Millisecond)
	c.RecordLogin(OutcomeInvalidCredentials, 5*time.Millisecond)

	mf := gather(t, reg, "notes_auth_login_attempts_total")
	got := map[string]float64{}
	for _, m := range mf.GetMetric() {
		got[m.GetLabel()[0].GetValue()] = m.GetCounter().GetValue()
	}
	if got[OutcomeSuccess] != 2 {
		t.Errorf("success = %v, want 2", got[OutcomeSuccess])
	}
	if got[OutcomeInvalidCredentials] != 1 {
		t.Errorf("invalid_credentials = %v, want 1", got[OutcomeInvalidCredentials])
	}

	latency := gather(t, reg, "notes_auth_login_latency_seconds")
	if count := latency.GetMetric()[0].GetHistogram().GetSampleCount(); count != 3 {
		t.Errorf("latency sample count = %d, want 3", count)
	}
}

func TestRecordRegistrationAndStatus(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordRegistration(OutcomeConflict)
	c.RecordHTTPStatus(http.StatusTooManyRequests)
	c.RecordRateLimited()

	if v := gather(t, reg, "notes_auth_registrations_total").GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("registrations = %v, want 1", v)
	}
	status := gather(t, reg, "notes_auth_http_status_total").GetMetric()[0]
	if status.GetLabel()[0].GetValue() != "429" {
		t.Errorf("status label = %q, want 429", status.GetLabel()[0].GetValue())
	}
	if v := gather(t, reg, "notes_auth_rate_limited_total").GetMetric()[0].GetCounter().GetValue(); v != 1 {
		t.Errorf("rate_limited = %v, want 1", v)
	}
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)
	c.RecordLogin(OutcomeSuccess, time.Millisecond)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET metrics: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `notes_auth_login_attempts_total{outcome="success"} 1`) {
		t.Errorf("metrics output missing login counter:\n%s", body)
	}
}
