package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return SetupRouter()
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	testRouter().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestEval(t *testing.T) {
	body := `{"expr": "2 * (1/10)", "digits": 3}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/eval", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	testRouter().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp evalResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Value != "0.200" {
		t.Errorf("value = %q, want %q", resp.Value, "0.200")
	}
	if resp.ID == "" {
		t.Error("response is missing a request id")
	}
}

func TestEvalRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing expr", `{"digits": 3}`, http.StatusBadRequest},
		{"digit cap", `{"expr": "pi", "digits": 100000}`, http.StatusBadRequest},
		{"negative digits", `{"expr": "pi", "digits": -1}`, http.StatusBadRequest},
		{"parse error", `{"expr": "foo(", "digits": 3}`, http.StatusUnprocessableEntity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/eval", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			testRouter().ServeHTTP(w, req)
			if w.Code != tc.code {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tc.code, w.Body.String())
			}
		})
	}
}
