package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"gateapp-http-service/internal/domain/models"
	"gateapp-http-service/internal/domain/services"
	"gateapp-http-service/internal/domain/services/container"
	"gateapp-http-service/internal/infrastructure/config"
)

func testRouter(t *testing.T) (*gin.Engine, *container.ServiceContainer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecretKey:   "test-secret",
		PassTTLMinutes: 60,
		RedisHost:      "localhost",
		RedisPort:      "6379",
	}
	c := container.NewServiceContainer(nil, cfg)
	t.Cleanup(c.Close)

	r := gin.New()
	SetupRoutes(r, c)
	return r, c
}

func tokenFor(t *testing.T, c *container.ServiceContainer, role string) string {
	t.Helper()
	jwtService := c.GetService("jwt").(services.InterfaceJWTService)
	user := &models.User{Username: "tester", Role: role}
	user.ID = 1

	token, err := jwtService.GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestPing(t *testing.T) {
	r, _ := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "pong") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestVisitorRoutesRequireAuth(t *testing.T) {
	r, _ := testRouter(t)

	for _, path := range []string{"/api/visitors/requests", "/api/visitors/summary", "/api/daylog"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token = %d, want 401", path, w.Code)
		}
	}
}

func TestDecisionRequiresAdminRole(t *testing.T) {
	r, c := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/visitors/requests/api-7", strings.NewReader(`{"action":"approve"}`))
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, c, "security"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("security-role decision = %d, want 401", w.Code)
	}
}

func TestDayLogWithToken(t *testing.T) {
	r, c := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/daylog?date=2026-08-29", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, c, "security"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data struct {
			Date  string `json:"date"`
			Count int    `json:"count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Date != "2026-08-29" || envelope.Data.Count == 0 {
		t.Errorf("unexpected day log payload: %+v", envelope.Data)
	}
}

func TestListVisitorsBadStatus(t *testing.T) {
	r, c := testRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/visitors/requests?status=archived", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(t, c, "admin"))
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for unknown status tab", w.Code)
	}
}
