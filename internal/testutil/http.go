package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/interbanking/backend/internal/interfaces/http/dto"
)

// APIResponse mirrors dto.Response with a raw data payload so callers can
// decode it into the type they expect.
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *dto.ErrorInfo  `json:"error,omitempty"`
}

// Request describes one call made through Do.
type Request struct {
	Method  string
	Path    string
	Body    any
	Headers map[string]string
}

// Do serves req on handler and returns the recorded response. A string Body
// is sent as is, anything else is JSON encoded.
func Do(t *testing.T, handler http.Handler, req Request) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	switch b := req.Body.(type) {
	case nil:
	case string:
		body = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err, "Failed to marshal request body")
		body = bytes.NewReader(payload)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	r := httptest.NewRequest(method, req.Path, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

// ParseResponse decodes the response envelope.
func ParseResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to parse response: %s", w.Body.String())
	return resp
}

// DataAs decodes the data field of a successful response into T.
func DataAs[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	resp := AssertSuccessResponse(t, w)
	var data T
	require.NoError(t, json.Unmarshal(resp.Data, &data), "Failed to parse data: %s", string(resp.Data))
	return data
}

// AssertSuccessResponse checks that the envelope reports success.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()

	resp := ParseResponse(t, w)
	assert.True(t, resp.Success, "Expected success response, got: %s", w.Body.String())
	assert.Nil(t, resp.Error)
	return resp
}

// AssertErrorResponse checks status, error code and, when message is not
// empty, the error message.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, status int, code, message string) *dto.ErrorInfo {
	t.Helper()

	assert.Equal(t, status, w.Code, "Unexpected status: %s", w.Body.String())
	resp := ParseResponse(t, w)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error, "Expected error payload")
	assert.Equal(t, code, resp.Error.Code)
	if message != "" {
		assert.Equal(t, message, resp.Error.Message)
	}
	return resp.Error
}
