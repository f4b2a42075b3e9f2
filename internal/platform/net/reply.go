package net

import (
	"net/http"

	perr "termswap/internal/platform/errors"
)

// Wire is the envelope every transport writes. Data and the error fields
// are mutually exclusive
type Wire struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

func envelope(status int, reqID string) Wire {
	return Wire{StatusCode: status, Status: http.StatusText(status), RequestID: reqID}
}

// Reply wraps data with an explicit status
func Reply(status int, data any, reqID string) (int, Wire) {
	w := envelope(status, reqID)
	w.Data = data
	return status, w
}

// OK is Reply with 200
func OK(data any, reqID string) (int, Wire) { return Reply(http.StatusOK, data, reqID) }

// Error maps err to its status and wire fields. A nil err is a plain 200
func Error(err error, reqID string) (int, Wire) {
	if err == nil {
		return OK(nil, reqID)
	}
	return Fail(perr.HTTPStatus(err), err, reqID)
}

// Fail is Error with the status forced, for transport-level failures such
// as 405 that have no error code of their own
func Fail(status int, err error, reqID string) (int, Wire) {
	e := perr.WireFrom(err)
	w := envelope(status, reqID)
	w.Code, w.Error, w.Field = e.Code, e.Message, e.Field
	return status, w
}
