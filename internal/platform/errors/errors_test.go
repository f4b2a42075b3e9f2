package errors

import (
	"context"
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusCode(t *testing.T) {
	cases := []struct {
		code ErrorCode
		want int
	}{
		{ErrorCodeNotFound, http.StatusNotFound},
		{ErrorCodeInvalidArgument, http.StatusUnprocessableEntity},
		{ErrorCodeConfiguration, http.StatusUnprocessableEntity},
		{ErrorCodeEncoding, http.StatusUnprocessableEntity},
		{ErrorCodeConflict, http.StatusConflict},
		{ErrorCodeValidation, http.StatusBadRequest},
		{ErrorCodeJSON, http.StatusBadRequest},
		{ErrorCodeTooManyRequests, http.StatusTooManyRequests},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{ErrorCodeCanceled, http.StatusRequestTimeout},
		{ErrorCodePanic, http.StatusInternalServerError},
		{ErrorCodeUnknown, http.StatusInternalServerError},
		{9999, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatusCode(c.code); got != c.want {
			t.Fatalf("HTTPStatusCode(%v) = %d, want %d", c.code, got, c.want)
		}
	}
}

func TestCodeString(t *testing.T) {
	if ErrorCodeConfiguration.String() != "configuration" || ErrorCodeCanceled.String() != "canceled" {
		t.Fatalf("names: %s %s", ErrorCodeConfiguration, ErrorCodeCanceled)
	}
	if got := ErrorCode(9999).String(); got != "code(9999)" {
		t.Fatalf("unknown code = %q", got)
	}
}

func TestErrorRendering(t *testing.T) {
	var nilErr *Error
	if nilErr.Error() != "<nil>" {
		t.Fatalf("nil *Error = %q", nilErr.Error())
	}

	src := stderrs.New("unexpected EOF")
	cases := []struct {
		err  error
		want string
	}{
		{Newf(ErrorCodeJSON, "bad json at %d", 12), "bad json at 12"},
		{Wrapf(src, ErrorCodeEncoding, "decode %s", "big5"), "decode big5: unexpected EOF"},
		{WithOp(Configf("empty source"), "matcher.Build"), "matcher.Build: empty source"},
		{WithOp(Wrap(src, ErrorCodeJSON, "parse"), "termpack.LoadFile a.json"), "termpack.LoadFile a.json: parse: unexpected EOF"},
	}
	for _, c := range cases {
		if got := c.err.Error(); got != c.want {
			t.Fatalf("Error() = %q, want %q", got, c.want)
		}
	}
}

func TestCopyOnWrite(t *testing.T) {
	base := Configf("empty source")
	withField := WithField(base, "terms")
	withOp := WithOp(withField, "matcher.Build")

	if e, _ := As(base); e.Field() != "" || e.Op() != "" {
		t.Fatalf("original mutated: %+v", e)
	}
	e, ok := As(withOp)
	if !ok || e.Field() != "terms" || e.Op() != "matcher.Build" || e.Code() != ErrorCodeConfiguration {
		t.Fatalf("mutators lost data: %+v", e)
	}

	foreign := stderrs.New("plain")
	if WithField(foreign, "x") != foreign || WithOp(foreign, "y") != foreign {
		t.Fatalf("foreign errors must pass through unchanged")
	}
}

func TestAsAndUnwrap(t *testing.T) {
	src := stderrs.New("root")
	wrapped := fmt.Errorf("loading: %w", Wrap(src, ErrorCodeNotFound, "term set"))

	e, ok := As(wrapped)
	if !ok || e.Code() != ErrorCodeNotFound {
		t.Fatalf("As through fmt wrapping failed")
	}
	if !stderrs.Is(wrapped, src) {
		t.Fatalf("cause should stay reachable")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}
}

func TestWire(t *testing.T) {
	if w := WireFrom(nil); w != (Wire{}) {
		t.Fatalf("WireFrom(nil) = %+v", w)
	}
	if w := WireFrom(stderrs.New("boom")); w.Code != ErrorCodeUnknown || w.Message != "boom" {
		t.Fatalf("foreign wire = %+v", w)
	}
	err := WithOp(WithField(Wrapf(stderrs.New("secret path"), ErrorCodeEncoding, "decode big5"), "encoding"), "textcodec.Decode")
	if w := WireFrom(err); w.Code != ErrorCodeEncoding || w.Message != "decode big5" || w.Field != "encoding" {
		t.Fatalf("wire should hide op and cause: %+v", w)
	}
	if HTTPStatus(err) != http.StatusUnprocessableEntity {
		t.Fatalf("HTTPStatus = %d", HTTPStatus(err))
	}
}

func TestSugarCodes(t *testing.T) {
	cases := map[ErrorCode]error{
		ErrorCodeNotFound:        NotFoundf("x"),
		ErrorCodeInvalidArgument: InvalidArgf("x"),
		ErrorCodeConfiguration:   Configf("x"),
		ErrorCodeEncoding:        Encodingf("x"),
		ErrorCodeJSON:            JSONErrf("x"),
		ErrorCodePanic:           PanicErrf("x"),
	}
	for want, err := range cases {
		if !IsCode(err, want) {
			t.Fatalf("%v: got %v", want, CodeOf(err))
		}
	}
}

func TestCanceled(t *testing.T) {
	if CodeOf(context.Canceled) != ErrorCodeCanceled {
		t.Fatalf("context.Canceled should map to Canceled")
	}
	if CodeOf(fmt.Errorf("run: %w", context.DeadlineExceeded)) != ErrorCodeCanceled {
		t.Fatalf("wrapped deadline should map to Canceled")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatalf("nil should be Unknown")
	}
}
