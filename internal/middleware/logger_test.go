package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/saffron-menu/pkg/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func TestLogger(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		wantLevel  string
		wantStatus float64
	}{
		{name: "ok request", status: http.StatusOK, wantLevel: "INFO", wantStatus: 200},
		{name: "not found", status: http.StatusNotFound, wantLevel: "INFO", wantStatus: 404},
		{name: "server error", status: http.StatusInternalServerError, wantLevel: "ERROR", wantStatus: 500},
		{name: "implicit ok", status: 0, wantLevel: "INFO", wantStatus: 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := logger.NewWithWriter("info", &buf)

			testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
			})
			handler := chimiddleware.RequestID(Logger(log)(testHandler))

			req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != int(tt.wantStatus) {
				t.Errorf("status = %d, want %v", w.Code, tt.wantStatus)
			}

			var record map[string]any
			if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
				t.Fatalf("failed to decode log record: %v", err)
			}

			if record["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %s", record["level"], tt.wantLevel)
			}
			if record["status"] != tt.wantStatus {
				t.Errorf("status field = %v, want %v", record["status"], tt.wantStatus)
			}
			if record["path"] != "/api/menu" {
				t.Errorf("path = %v, want /api/menu", record["path"])
			}
			if record["bytes"] != float64(0) {
				t.Errorf("bytes = %v, want 0", record["bytes"])
			}
			if id, _ := record["request_id"].(string); id == "" {
				t.Error("request_id is empty")
			}
		})
	}
}
