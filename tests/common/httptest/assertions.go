//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"cashdrawer-api/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and decodes a 2xx body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	require.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())
	if target == nil || expectedStatus < 200 || expectedStatus >= 300 {
		return
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "response: %s", w.Body.String())
}

// AssertErrorResponse checks the status, the statusCode echoed in the body and,
// when expectedMsg is set, that the error message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code, "response: %s", w.Body.String())

	var resp httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "response: %s", w.Body.String()) {
		return
	}
	assert.Equal(t, expectedStatus, resp.Status)
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
}

// AssertHeaderSet checks that each header is present with a non-empty value.
func AssertHeaderSet(t *testing.T, w *httptest.ResponseRecorder, keys ...string) {
	t.Helper()
	for _, k := range keys {
		assert.NotEmpty(t, w.Header().Get(k), "header %s missing", k)
	}
}
