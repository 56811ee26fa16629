package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezkam/hostitask/internal/application/tasks"
	"github.com/rezkam/hostitask/internal/chat"
	"github.com/rezkam/hostitask/internal/infrastructure/http/handler"
	"github.com/rezkam/hostitask/internal/infrastructure/persistence/memory"
)

func newTestServer(t *testing.T, cfg ServerConfig) *APIServer {
	t.Helper()
	svc, err := tasks.NewService(memory.NewStore(memory.WithSeed(memory.SampleTasks())))
	require.NoError(t, err)
	return NewAPIServer(handler.NewRouter(svc, chat.NewHub()), cfg)
}

func TestAPIServer_Routes(t *testing.T) {
	srv := newTestServer(t, ServerConfig{})

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK, `"status":"ok"`},
		{"api mounted", http.MethodGet, "/api/v1/tasks", "", http.StatusOK, `"total_count":5`},
		{"labels", http.MethodGet, "/api/v1/labels?lang=ka", "", http.StatusOK, `"lang":"ka"`},
		{"unknown route", http.MethodGet, "/api/v2/tasks", "", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAPIServer_RejectsOversizedBody(t *testing.T) {
	srv := newTestServer(t, ServerConfig{MaxBodyBytes: 64})

	body := `{"description":"` + strings.Repeat("x", 128) + `","department":"kitchen","urgency":"urgent","guest_contact":"1"}`
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Contains(t, w.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestAPIServer_Addr(t *testing.T) {
	assert.Equal(t, ":8081", newTestServer(t, ServerConfig{}).Addr())
	assert.Equal(t, "127.0.0.1:9000", newTestServer(t, ServerConfig{Host: "127.0.0.1", Port: "9000"}).Addr())
}

func TestServerConfig_WithDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   ServerConfig
		want ServerConfig
	}{
		{
			name: "zero config",
			in:   ServerConfig{},
			want: ServerConfig{
				Port:              DefaultPort,
				ReadTimeout:       DefaultReadTimeout,
				WriteTimeout:      DefaultWriteTimeout,
				IdleTimeout:       DefaultIdleTimeout,
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
				MaxHeaderBytes:    DefaultMaxHeaderBytes,
				MaxBodyBytes:      DefaultMaxBodyBytes,
			},
		},
		{
			name: "explicit values kept, negatives replaced",
			in: ServerConfig{
				Host:         "127.0.0.1",
				Port:         "9000",
				ReadTimeout:  3 * time.Second,
				WriteTimeout: -time.Second,
				MaxBodyBytes: 4096,
			},
			want: ServerConfig{
				Host:              "127.0.0.1",
				Port:              "9000",
				ReadTimeout:       3 * time.Second,
				WriteTimeout:      DefaultWriteTimeout,
				IdleTimeout:       DefaultIdleTimeout,
				ReadHeaderTimeout: DefaultReadHeaderTimeout,
				MaxHeaderBytes:    DefaultMaxHeaderBytes,
				MaxBodyBytes:      4096,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.withDefaults())
		})
	}
}
