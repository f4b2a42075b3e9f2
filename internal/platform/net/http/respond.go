// Package http provides the router seam, server and JSON response helpers
package http

import (
	"encoding/json"
	stdhttp "net/http"

	perr "termswap/internal/platform/errors"
	pnet "termswap/internal/platform/net"
)

// Envelope is the standard response body for all endpoints
type Envelope = pnet.Wire

// JSON writes v as application/json with the given status
func JSON(w stdhttp.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondError maps a project error into an envelope and writes it
func RespondError(w stdhttp.ResponseWriter, r *stdhttp.Request, err error) {
	Response{Body: err}.write(w, r)
}

// Response is returned by return-style handlers
type Response struct {
	Status int
	Body   any // an error body selects the error envelope
	Header stdhttp.Header
}

// Handle adapts a Response-returning handler to net/http
func Handle(h func(r *stdhttp.Request) Response) stdhttp.HandlerFunc {
	return func(w stdhttp.ResponseWriter, r *stdhttp.Request) { h(r).write(w, r) }
}

func (resp Response) write(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	for k, vv := range resp.Header {
		for _, v := range vv {
			w.Header().Add(k, v)
		}
	}
	status := resp.Status
	if status == 0 {
		status = stdhttp.StatusOK
	}
	if status == stdhttp.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	reqID := pnet.RequestID(r.Context())
	var env Envelope
	if err, ok := resp.Body.(error); ok && err != nil {
		status, env = pnet.Error(err, reqID)
	} else {
		status, env = pnet.Reply(status, resp.Body, reqID)
	}
	JSON(w, status, env)
}

// OK returns a 200 response
func OK(data any) Response { return Response{Status: stdhttp.StatusOK, Body: data} }

// Error returns a response that maps err to status and envelope
func Error(err error) Response { return Response{Body: err} }

// NotFoundJSON answers unmatched paths with the error envelope
func NotFoundJSON(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	RespondError(w, r, perr.NotFoundf("no route for %s %s", r.Method, r.URL.Path))
}

// MethodNotAllowedJSON answers a known path hit with the wrong method
func MethodNotAllowedJSON(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	err := perr.InvalidArgf("method %s not allowed on %s", r.Method, r.URL.Path)
	status, env := pnet.Fail(stdhttp.StatusMethodNotAllowed, err, pnet.RequestID(r.Context()))
	JSON(w, status, env)
}
