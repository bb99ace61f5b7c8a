package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.thinkinpower.net/cardcheck/mod"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e
}

func TestClassifyRoute(t *testing.T) {
	r := newTestEngine()

	rec := doJSON(t, r, http.MethodGet, "/cardcheck/classify/4242424242424242", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	e := decode(t, rec)
	assert.Equal(t, mod.ResponseCodeSuccess, e.Code)
	var result mod.ClassifyResult
	require.NoError(t, json.Unmarshal(e.Data, &result))
	assert.Equal(t, "visa", result.Type)

	rec = doJSON(t, r, http.MethodGet, "/cardcheck/classify/1234567812345678", nil)
	assert.Equal(t, mod.ResponseCodeNotFound, decode(t, rec).Code)
}

func TestValidateRoute(t *testing.T) {
	r := newTestEngine()

	testCases := []struct {
		name      string
		req       mod.ValidateRequest
		wantValid bool
		wantType  string
	}{
		{
			name:      "valid visa",
			req:       mod.ValidateRequest{Number: "4242 4242 4242 4242"},
			wantValid: true,
			wantType:  "visa",
		},
		{
			name:      "allow-list admits",
			req:       mod.ValidateRequest{Number: "4242424242424242", Types: []string{"visa", "mastercard"}},
			wantValid: true,
			wantType:  "visa",
		},
		{
			name: "allow-list excludes",
			req:  mod.ValidateRequest{Number: "4242424242424242", Types: []string{"mastercard", "amex"}},
		},
		{
			name: "bad checksum",
			req:  mod.ValidateRequest{Number: "4242424242424241"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/cardcheck/validate", tc.req)
			require.Equal(t, http.StatusOK, rec.Code)
			e := decode(t, rec)
			require.Equal(t, mod.ResponseCodeSuccess, e.Code)
			var result mod.ValidateResult
			require.NoError(t, json.Unmarshal(e.Data, &result))
			assert.Equal(t, tc.wantValid, result.Valid)
			assert.Equal(t, tc.wantType, result.Type)
		})
	}
}

func TestValidateRouteBadRequest(t *testing.T) {
	r := newTestEngine()

	rec := doJSON(t, r, http.MethodPost, "/cardcheck/validate", gin.H{})
	assert.Equal(t, mod.ResponseCodeMissingParams, decode(t, rec).Code)

	req := httptest.NewRequest(http.MethodPost, "/cardcheck/validate", bytes.NewBufferString("{not json"))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, mod.ResponseCodeInvalidParams, decode(t, rec).Code)
}

func TestCheckRoute(t *testing.T) {
	r := newTestEngine()

	testCases := []struct {
		name     string
		req      mod.ValidateRequest
		wantCode int
	}{
		{"valid", mod.ValidateRequest{Number: "4242424242424242"}, mod.ResponseCodeSuccess},
		{"type not allowed", mod.ValidateRequest{Number: "9999999999999999"}, mod.ResponseCodeTypeNotAllowed},
		{"pattern mismatch", mod.ValidateRequest{Number: "4242424242424242", Types: []string{"mastercard"}}, mod.ResponseCodePatternMismatch},
		{"length mismatch", mod.ValidateRequest{Number: "42424242424242"}, mod.ResponseCodeLengthMismatch},
		{"luhn failed", mod.ValidateRequest{Number: "4242424242424241"}, mod.ResponseCodeLuhnFailed},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/cardcheck/check", tc.req)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tc.wantCode, decode(t, rec).Code)
		})
	}
}

func TestCvcRoute(t *testing.T) {
	r := newTestEngine()

	assertValid := func(path string, want bool) {
		rec := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		e := decode(t, rec)
		require.Equal(t, mod.ResponseCodeSuccess, e.Code)
		var result struct {
			Valid bool `json:"valid"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &result))
		assert.Equal(t, want, result.Valid, path)
	}

	assertValid("/cardcheck/cvc/visa/123", true)
	assertValid("/cardcheck/cvc/visa/1234", false)
	assertValid("/cardcheck/cvc/amex/1234", true)
	assertValid("/cardcheck/cvc/atmcard/123", false)
}

func TestExpiryRoute(t *testing.T) {
	r := newTestEngine()

	assertValid := func(path string, want bool) {
		rec := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		e := decode(t, rec)
		require.Equal(t, mod.ResponseCodeSuccess, e.Code)
		var result struct {
			Valid bool `json:"valid"`
		}
		require.NoError(t, json.Unmarshal(e.Data, &result))
		assert.Equal(t, want, result.Valid, path)
	}

	assertValid("/cardcheck/expiry/2099/12", true)
	assertValid("/cardcheck/expiry/2001/12", false)
	assertValid("/cardcheck/expiry/2099/13", false)
	assertValid("/cardcheck/expiry/abcd/12", false)
}

func TestMetricsRoute(t *testing.T) {
	r := newTestEngine()

	rec := doJSON(t, r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
