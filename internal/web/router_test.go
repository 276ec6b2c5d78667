package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adalang/adafront/internal/adapter"
	"github.com/adalang/adafront/internal/diagnostics"
)

func TestAnalyzeEndpointReturnsResult(t *testing.T) {
	router := NewRouter(diagnostics.NewNop())

	body, err := json.Marshal(analyzeRequest{Source: "procedure P is begin end P;"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var result adapter.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Tokens)
}

func TestAnalyzeEndpointRejectsMalformedBody(t *testing.T) {
	router := NewRouter(diagnostics.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeEndpointWithParseTree(t *testing.T) {
	router := NewRouter(diagnostics.NewNop())

	body, err := json.Marshal(analyzeRequest{
		Source:         "procedure P is begin end P;",
		BuildParseTree: true,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var result adapter.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.Tree)
}
