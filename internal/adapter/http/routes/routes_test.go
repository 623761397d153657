package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"motomind/internal/adapter/http/handlers/mocks"
	"motomind/internal/adapter/http/middleware"
	"motomind/internal/domain/catalog"
	"motomind/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	records := mocks.NewMockIRecordUseCase(ctrl)
	conn := mocks.NewMockIConnectionUseCase(ctrl)
	auth := middleware.NewJWTManager("secret", time.Hour)
	r := NewRouter(Dependencies{Records: records, Connection: conn, Catalog: catalog.Default(), Auth: auth})

	conn.EXPECT().Status(gomock.Any(), "ws-9").Return(entities.DisconnectedSession("ws-9"), nil)
	tok, _ := auth.Generate("ws-9")

	cases := []struct {
		name   string
		method string
		target string
		token  string
		status int
	}{
		{name: "ping", method: http.MethodGet, target: "/v1/ping", status: http.StatusOK},
		{name: "catalog is public", method: http.MethodGet, target: "/v1/catalog", status: http.StatusOK},
		{name: "metrics", method: http.MethodGet, target: "/metrics", status: http.StatusOK},
		{name: "records need auth", method: http.MethodGet, target: "/v1/records", status: http.StatusUnauthorized},
		{name: "connection with token", method: http.MethodGet, target: "/v1/connection", token: tok, status: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.target, nil)
			if tc.token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.token)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, w.Code)
			}
		})
	}
}
