package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"termswap/internal/core/matcher"
	perr "termswap/internal/platform/errors"
	phttp "termswap/internal/platform/net/http"
	cdom "termswap/internal/services/convert/domain"
	"termswap/internal/services/convert/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Code       perr.ErrorCode  `json:"code"`
	Error      string          `json:"error"`
	Field      string          `json:"field"`
	Data       json.RawMessage `json:"data"`
}

func newMux(t *testing.T, maxBatch int) stdhttp.Handler {
	t.Helper()
	idx, err := matcher.BuildIndex(map[string]string{"软件": "軟體", "用户": "使用者"})
	require.NoError(t, err)
	svc := service.New(idx, cdom.TermsInfo{Sources: []string{"cn"}}, service.DefaultConfig())

	mux := chi.NewRouter()
	mux.Route("/convert", func(r chi.Router) {
		Register(phttp.AdaptChi(r), Deps{Converter: svc, MaxBatch: maxBatch})
	})
	return mux
}

func do(t *testing.T, h stdhttp.Handler, method, path, body string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func TestCheck(t *testing.T) {
	code, env := do(t, newMux(t, 10), stdhttp.MethodPost, "/convert/check",
		`{"documents":[{"name":"a.txt","text":"用户的软件"},{"name":"b.txt","text":"nothing"}]}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var sum cdom.Summary
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	assert.NotEmpty(t, sum.RunID)
	assert.Equal(t, 2, sum.Issues)
	assert.Equal(t, 1, sum.Skipped)
	require.Len(t, sum.Results, 2)
	assert.Equal(t, "a.txt", sum.Results[0].Name)
	assert.Nil(t, sum.Results[0].Fixed)
	assert.Equal(t, 1, sum.Results[0].Issues[1].Line)
	assert.Equal(t, 4, sum.Results[0].Issues[1].Column)
}

func TestFix(t *testing.T) {
	code, env := do(t, newMux(t, 10), stdhttp.MethodPost, "/convert/fix",
		`{"documents":[{"text":"用户的软件"}]}`)
	require.Equal(t, stdhttp.StatusOK, code)

	var sum cdom.Summary
	require.NoError(t, json.Unmarshal(env.Data, &sum))
	require.NotNil(t, sum.Results[0].Fixed)
	assert.Equal(t, "使用者的軟體", *sum.Results[0].Fixed)
	assert.Equal(t, 1, sum.Modified)
}

func TestValidation(t *testing.T) {
	mux := newMux(t, 2)
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"missing documents", `{}`, "documents"},
		{"empty documents", `{"documents":[]}`, "documents"},
		{"missing text", `{"documents":[{"name":"a"}]}`, "documents[0].text"},
		{"multi-line name", `{"documents":[{"name":"a\nb","text":"软件"}]}`, "documents[0].name"},
		{"too many", `{"documents":[{"text":"a"},{"text":"b"},{"text":"c"}]}`, "documents"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, env := do(t, mux, stdhttp.MethodPost, "/convert/check", c.body)
			assert.Equal(t, stdhttp.StatusBadRequest, code)
			assert.Equal(t, perr.ErrorCodeValidation, env.Code)
			assert.Equal(t, c.field, env.Field)
		})
	}

	code, env := do(t, mux, stdhttp.MethodPost, "/convert/fix", `{"documents":`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeJSON, env.Code)
}

func TestRegisterRules(t *testing.T) {
	require.NoError(t, registerRules())

	code, env := do(t, newMux(t, 0), stdhttp.MethodPost, "/convert/check", `{"documents":[{"name":"a\tb","text":"软件"}]}`)
	assert.Equal(t, stdhttp.StatusBadRequest, code)
	assert.Equal(t, "documents[0].name", env.Field)
	assert.Contains(t, env.Error, "single line")
}

func TestTermStats(t *testing.T) {
	code, env := do(t, newMux(t, 0), stdhttp.MethodGet, "/convert/terms/stats", "")
	require.Equal(t, stdhttp.StatusOK, code)

	var info cdom.TermsInfo
	require.NoError(t, json.Unmarshal(env.Data, &info))
	assert.Equal(t, 2, info.Loaded)
	assert.Equal(t, []string{"cn"}, info.Sources)
}

type canceledConverter struct{ cdom.ConverterPort }

func (canceledConverter) Run(context.Context, []cdom.Document, bool) (cdom.Summary, error) {
	return cdom.Summary{}, perr.Wrap(context.DeadlineExceeded, perr.ErrorCodeCanceled, "convert: run canceled")
}

func TestRunErrorMapsToEnvelope(t *testing.T) {
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), Deps{Converter: canceledConverter{}})
	code, env := do(t, mux, stdhttp.MethodPost, "/check", `{"documents":[{"text":"软件"}]}`)
	assert.Equal(t, stdhttp.StatusRequestTimeout, code)
	assert.Equal(t, perr.ErrorCodeCanceled, env.Code)
}
