package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifeskills/internal/adapters/http/perf"
)

func serveTimed(collector *perf.Collector, method, path string, h http.HandlerFunc) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	Timing(collector, time.Second)(h).ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

// TestTiming_RecordsEntry verifies that a request entry is recorded with its label and status.
func TestTiming_RecordsEntry(t *testing.T) {
	collector := perf.NewCollector(10)
	serveTimed(collector, "POST", "/checkin/3/toggle", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	})

	if collector.TotalRecorded() != 1 {
		t.Fatalf("TotalRecorded = %d, want 1", collector.TotalRecorded())
	}
	snap := collector.Snapshot(time.Now().Add(-time.Minute), 10)
	if snap.Requests != 1 || len(snap.SlowestPaths) != 1 {
		t.Fatalf("snapshot = %+v", snap)
	}
	if snap.SlowestPaths[0].Label != "POST /checkin/3/toggle" {
		t.Errorf("Label = %q", snap.SlowestPaths[0].Label)
	}
	if snap.SlowestPaths[0].AvgMs < 0 {
		t.Errorf("AvgMs = %v, want >= 0", snap.SlowestPaths[0].AvgMs)
	}
}

// TestTiming_SkipsStatic verifies static assets are excluded from timing.
func TestTiming_SkipsStatic(t *testing.T) {
	collector := perf.NewCollector(10)
	rr := serveTimed(collector, "GET", "/static/guy7.png", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	if collector.TotalRecorded() != 0 {
		t.Errorf("TotalRecorded = %d, want 0", collector.TotalRecorded())
	}
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

// TestTiming_NilCollector verifies the middleware works without a collector.
func TestTiming_NilCollector(t *testing.T) {
	rr := serveTimed(nil, "GET", "/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	if rr.Code != http.StatusTeapot {
		t.Errorf("status = %d, want 418", rr.Code)
	}
}

// TestTiming_HandlerPanic verifies the deferred record still runs when the handler panics.
func TestTiming_HandlerPanic(t *testing.T) {
	collector := perf.NewCollector(10)
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic to propagate")
		}
		if collector.TotalRecorded() != 1 {
			t.Errorf("TotalRecorded = %d, want 1", collector.TotalRecorded())
		}
	}()
	serveTimed(collector, "GET", "/boom", func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
}

// TestTiming_PoolNoStateLeak verifies a pooled writer does not carry a previous status.
func TestTiming_PoolNoStateLeak(t *testing.T) {
	collector := perf.NewCollector(10)
	serveTimed(collector, "GET", "/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	rr := serveTimed(collector, "GET", "/ok", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	if rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
}

// BenchmarkTiming measures per-request overhead.
func BenchmarkTiming(b *testing.B) {
	collector := perf.NewCollector(perf.DefaultRingSize)
	handler := Timing(collector, time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	req := httptest.NewRequest("GET", "/checkin", nil)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}
}
