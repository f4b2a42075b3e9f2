package http

import (
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "termswap/internal/platform/errors"

	"github.com/go-chi/chi/v5"
)

type echoReq struct {
	Text string `json:"text" validate:"required"`
}

func newRouter() (Router, stdhttp.Handler) {
	m := chi.NewRouter()
	return AdaptChi(m), m
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	return env
}

func TestPostJSON_Envelope(t *testing.T) {
	r, h := newRouter()
	r.Route("/api", func(api Router) {
		PostJSON(api, "/echo", func(_ *stdhttp.Request, in echoReq) (any, error) {
			return map[string]string{"text": strings.ToUpper(in.Text)}, nil
		})
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/api/echo", strings.NewReader(`{"text":"abc"}`)))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Status != "OK" || env.Data.(map[string]any)["text"] != "ABC" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestPostJSON_ValidationError(t *testing.T) {
	r, h := newRouter()
	PostJSON(r, "/echo", func(_ *stdhttp.Request, in echoReq) (any, error) { return in, nil })

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodPost, "/echo", strings.NewReader(`{}`)))
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decode(t, rec)
	if env.Code != perr.ErrorCodeValidation || env.Field != "text" || env.Data != nil {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestGetJSON_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{perr.NotFoundf("nope"), stdhttp.StatusNotFound},
		{perr.Configf("empty source"), stdhttp.StatusUnprocessableEntity},
		{errors.New("plain"), stdhttp.StatusInternalServerError},
	}
	for _, c := range cases {
		r, h := newRouter()
		GetJSON(r, "/x", func(*stdhttp.Request) (any, error) { return nil, c.err })
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/x", nil))
		if rec.Code != c.status {
			t.Fatalf("%v: status = %d, want %d", c.err, rec.Code, c.status)
		}
		if env := decode(t, rec); env.StatusCode != c.status || env.Error == "" {
			t.Fatalf("%v: envelope = %+v", c.err, env)
		}
	}
}

func TestHandle_NoContentAndHeaders(t *testing.T) {
	r, h := newRouter()
	r.Get("/empty", Handle(func(*stdhttp.Request) Response {
		return Response{Status: stdhttp.StatusNoContent, Header: stdhttp.Header{"X-Run": {"1"}}}
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/empty", nil))
	if rec.Code != stdhttp.StatusNoContent || rec.Body.Len() != 0 || rec.Header().Get("X-Run") != "1" {
		t.Fatalf("code=%d body=%q headers=%v", rec.Code, rec.Body.String(), rec.Header())
	}
}

func TestGroupUsesMiddleware(t *testing.T) {
	r, h := newRouter()
	r.Group(func(g Router) {
		g.Use(func(next stdhttp.Handler) stdhttp.Handler {
			return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				w.Header().Set("X-Group", "yes")
				next.ServeHTTP(w, req)
			})
		})
		GetJSON(g, "/in", func(*stdhttp.Request) (any, error) { return "ok", nil })
	})
	GetJSON(r, "/out", func(*stdhttp.Request) (any, error) { return "ok", nil })

	for path, want := range map[string]string{"/in": "yes", "/out": ""} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, path, nil))
		if got := rec.Header().Get("X-Group"); got != want {
			t.Fatalf("%s: X-Group = %q, want %q", path, got, want)
		}
	}
}

func TestMountProfiler(t *testing.T) {
	r, h := newRouter()
	MountProfiler(r, "/debug", false)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", rec.Code)
	}

	r, h = newRouter()
	MountProfiler(r, "/debug", true)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, "/debug/pprof/", nil))
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("profiler index = %d", rec.Code)
	}
}
