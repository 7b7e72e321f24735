package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithBaseURL(t *testing.T) {
	c, err := NewWithBaseURL("http://localhost:8080/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)

	_, err = NewWithBaseURL("localhost:8080", 0)
	assert.Error(t, err)

	_, err = NewWithBaseURL("ftp://example.com", 0)
	assert.Error(t, err)
}

func TestDoJSON_RoundTrip(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "peoplectl-test", r.Header.Get("User-Agent"))

		var in map[string]any
		_ = json.NewDecoder(r.Body).Decode(&in)
		_ = json.NewEncoder(w).Encode(map[string]any{"echo": in["name"]})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, 0)
	require.NoError(t, err)
	c.UserAgent = "peoplectl-test"

	var out struct {
		Echo string `json:"echo"`
	}
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "create", map[string]any{"name": "Хлопчик"}, &out))
	assert.Equal(t, "Хлопчик", out.Echo)
}

func TestDoJSON_ErrorDetail(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail":"Person wasn't found"}`))
	}))
	defer ts.Close()

	c := New(0)
	err := c.DoJSON(context.Background(), http.MethodDelete, ts.URL+"/delete/x", nil, nil)
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, StatusCode(err))
	var herr *HTTPError
	require.ErrorAs(t, err, &herr)
	assert.Equal(t, "Person wasn't found", herr.Detail)
	assert.Contains(t, err.Error(), "detail=Person wasn't found")
}

func TestDoJSON_RelativeWithoutBaseURL(t *testing.T) {
	err := New(0).DoJSON(context.Background(), http.MethodGet, "/pets", nil, nil)
	assert.EqualError(t, err, "httpclient: relative path requires BaseURL")
}
