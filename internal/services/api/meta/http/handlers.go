// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"termswap/internal/core/version"
	"termswap/internal/modkit/httpkit"
)

// TermsCounter reports how many terms the running service compiled
type TermsCounter func() int

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Terms       TermsCounter    // optional
	Modules     func() []string // optional, names of the mounted modules
}

type handlers struct {
	deps Deps
	now  func() time.Time
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d, now: time.Now}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"       example:"true"`
	Service string `json:"service"  example:"termswap-api"`
	Terms   int    `json:"terms"    example:"48"`
	Started string `json:"started"  example:"2026-10-17T09:00:00Z"`
	Now     string `json:"now"      example:"2026-10-17T09:05:00Z"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string   `json:"name"    example:"termswap-api"`
	Started string   `json:"started" example:"2026-10-17T09:00:00Z"`
	Uptime  int64    `json:"uptime"  example:"300"`
	Modules []string `json:"modules" example:"api-convert,convert,meta"`
}

// GET /meta/health
// ok is false when no terms are loaded; the service would change nothing
func (h *handlers) health(_ *http.Request) (any, error) {
	resp := HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     h.now().UTC().Format(time.RFC3339),
	}
	if h.deps.Terms != nil {
		resp.Terms = h.deps.Terms()
		resp.OK = resp.Terms > 0
	}
	return resp, nil
}

// GET /meta/version
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(h.deps.ServiceName), nil
}

// GET /meta/service
func (h *handlers) service(_ *http.Request) (any, error) {
	resp := ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(h.now().Sub(h.deps.StartedAt) / time.Second),
		Modules: []string{},
	}
	if h.deps.Modules != nil {
		resp.Modules = h.deps.Modules()
	}
	return resp, nil
}
