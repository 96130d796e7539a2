//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// envelope mirrors the uniform response shape so assertions can unwrap the
// data payload without each test redeclaring it.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus < 200 || expectedStatus >= 300 {
		return
	}

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.True(t, env.Success, "Response envelope should report success")

	if targetStruct != nil {
		err = json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode data payload: %s", w.Body.String()))
	}
}

// AssertSuccessMessage checks a success envelope that carries a confirmation
// message instead of (or alongside) a data payload.
func AssertSuccessMessage(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.True(t, env.Success, "Response envelope should report success")

	if expectedMsg != "" {
		assert.Contains(t, env.Message, expectedMsg, "Response message doesn't contain expected text")
	}
}

// AssertListCount checks the count field on a list envelope and decodes the
// data payload when a target is given.
func AssertListCount(t *testing.T, w *httptest.ResponseRecorder, expectedStatus, expectedCount int, targetStruct any) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	assert.True(t, env.Success, "Response envelope should report success")

	if assert.NotNil(t, env.Count, "List envelope should carry a count") {
		assert.Equal(t, expectedCount, *env.Count)
	}

	if targetStruct != nil {
		err = json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode data payload: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, errorResponse.Success, "Error envelope should report failure")

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}
