package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func probe(t *testing.T) (int, map[string]interface{}) {
	t.Helper()
	w := httptest.NewRecorder()
	Handler(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return w.Code, body
}

func TestHandlerBackendUp(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer backend.Close()
	t.Setenv("API_BASE_URL", backend.URL)

	code, body := probe(t)
	if code != http.StatusOK || body["status"] != "ok" || body["path"] != "/api/health" {
		t.Errorf("got %d %v", code, body)
	}
}

func TestHandlerBackendDown(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	backend.Close()
	t.Setenv("API_BASE_URL", backend.URL)

	code, body := probe(t)
	if code != http.StatusServiceUnavailable || body["status"] != "degraded" {
		t.Errorf("got %d %v", code, body)
	}
}
