package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggingMiddleware_CapturesRequestDetails(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	// Create a test handler
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("test response"))
	})

	// Wrap with logging middleware
	loggingHandler := loggingMiddleware(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	loggingHandler.ServeHTTP(w, req)

	// Check logs contain expected information
	logs := helper.GetLogs()
	assert.Contains(t, logs, "GET")
	assert.Contains(t, logs, "/test-path")
	assert.Contains(t, logs, "200")
}

func TestLoggingMiddleware_CapturesStatusCode(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	testCases := []int{
		http.StatusOK,
		http.StatusBadRequest,
		http.StatusMethodNotAllowed,
		http.StatusBadGateway,
	}

	for _, statusCode := range testCases {
		helper.ClearLogs()

		code := statusCode
		loggingHandler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(code)
		}))

		req := httptest.NewRequest("GET", "/test", nil)
		w := httptest.NewRecorder()

		loggingHandler.ServeHTTP(w, req)

		assert.Contains(t, helper.GetLogs(), fmt.Sprintf("%d", code), "Log line should carry the written status")
	}
}

func TestLoggingMiddleware_MeasuresResponseTime(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	loggingHandler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	loggingHandler.ServeHTTP(w, req)

	logs := helper.GetLogs()
	assert.True(t, strings.Contains(logs, "ms") || strings.Contains(logs, "µs") || strings.Contains(logs, "ns") || strings.Contains(logs, "s"),
		"Logs should contain duration with time unit")
}

func TestLoggingMiddleware_CallsNextHandler(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	called := false
	loggingHandler := loggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("response"))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	loggingHandler.ServeHTTP(w, req)

	assert.True(t, called, "Next handler should be called")
	assert.Equal(t, "response", w.Body.String())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecoveryMiddleware_ConvertsPanicToEnvelope(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	recoveryHandler := recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something unexpected")
	}))

	req := httptest.NewRequest("GET", "/api/yaps?username=alice", nil)
	w := httptest.NewRecorder()

	recoveryHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// Panic detail goes to the log, not the caller
	assert.Contains(t, helper.GetLogs(), "something unexpected")
	assert.NotContains(t, w.Body.String(), "something unexpected")
}

func TestRecoveryMiddleware_PassesThroughNormally(t *testing.T) {
	helper := SetupTestEnv()
	defer helper.RestoreEnv()

	recoveryHandler := recoveryMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("fine"))
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	recoveryHandler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
}
