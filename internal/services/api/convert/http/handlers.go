// Package http provides http transport for convert
package http

import (
	"fmt"
	stdhttp "net/http"
	"strings"
	"unicode"

	"termswap/internal/modkit/httpkit"
	perr "termswap/internal/platform/errors"
	"termswap/internal/platform/net/http/bind"
	"termswap/internal/services/api/convert/domain"
	cdom "termswap/internal/services/convert/domain"
)

// Deps are the handler dependencies
type Deps struct {
	Converter cdom.ConverterPort
	MaxBatch  int
	MaxBytes  int64
}

type handlers struct{ deps Deps }

func init() {
	if err := registerRules(); err != nil {
		panic(fmt.Sprintf("convert http: %v", err))
	}
}

// names end up in log lines and CLI-style reports; keep them on one line
func registerRules() error {
	err := bind.RegisterValidation("singleline", "{0} must be a single line", func(fl bind.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsControl)
	})
	if err != nil {
		return fmt.Errorf("register singleline: %w", err)
	}
	return nil
}

// Register mounts the convert routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	opts := httpkit.JSONOptions{MaxBytes: d.MaxBytes}

	httpkit.PostJSON(r, "/check", h.check, opts)
	httpkit.PostJSON(r, "/fix", h.fix, opts)
	httpkit.Get(r, "/terms/stats", h.termStats)
}

// POST /convert/check
// body: domain.BatchInput, returns convert/domain.Summary
func (h *handlers) check(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.run(r, in, false)
}

// POST /convert/fix
// like check, each result also carries the fixed text
func (h *handlers) fix(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.run(r, in, true)
}

func (h *handlers) run(r *stdhttp.Request, in domain.BatchInput, fix bool) (any, error) {
	if h.deps.MaxBatch > 0 && len(in.Documents) > h.deps.MaxBatch {
		return nil, perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "documents must have at most %d items", h.deps.MaxBatch),
			"documents",
		)
	}
	return h.deps.Converter.Run(r.Context(), in.ToDocuments(), fix)
}

// GET /convert/terms/stats
func (h *handlers) termStats(_ *stdhttp.Request) (any, error) {
	return h.deps.Converter.Terms(), nil
}
