package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"termswap/internal/core/version"
	phttp "termswap/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func get(t *testing.T, fn func(*stdhttp.Request) (any, error)) []byte {
	t.Helper()
	out, err := fn(httptest.NewRequest(stdhttp.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	b, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestHealthReflectsTerms(t *testing.T) {
	started := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	h := &handlers{
		deps: Deps{ServiceName: "termswap-api", StartedAt: started, Terms: func() int { return 0 }},
		now:  func() time.Time { return started.Add(5 * time.Minute) },
	}
	var hr HealthResponse
	_ = json.Unmarshal(get(t, h.health), &hr)
	if hr.OK || hr.Terms != 0 || hr.Now != "2026-10-17T09:05:00Z" {
		t.Fatalf("empty dictionary should be unhealthy: %+v", hr)
	}

	h.deps.Terms = func() int { return 48 }
	_ = json.Unmarshal(get(t, h.health), &hr)
	if !hr.OK || hr.Terms != 48 {
		t.Fatalf("unexpected health: %+v", hr)
	}

	h.deps.Modules = func() []string { return []string{"convert", "meta"} }
	var sr ServiceResponse
	_ = json.Unmarshal(get(t, h.service), &sr)
	if sr.Uptime != 300 || sr.Name != "termswap-api" || len(sr.Modules) != 2 {
		t.Fatalf("unexpected service: %+v", sr)
	}
}

func TestRoutesMounted(t *testing.T) {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{ServiceName: "termswap-api", StartedAt: time.Now()})

	for _, p := range []string{"/health", "/version", "/service"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, p, nil))
		if rec.Code != stdhttp.StatusOK {
			t.Fatalf("%s = %d", p, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/version", nil))
	var env struct {
		Data version.BuildInfo `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil || env.Data.Service != "termswap-api" {
		t.Fatalf("version body: %s (%v)", rec.Body.String(), err)
	}
}
