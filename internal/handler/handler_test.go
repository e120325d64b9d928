package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/msomdec/autoshop/internal/handler"
	"github.com/msomdec/autoshop/internal/repository/sqlite"
	"github.com/msomdec/autoshop/internal/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, service.NewUserService(db.Users()), service.NewCarService(db.Cars()))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// doJSON issues a request with a JSON body and decodes a JSON response into
// out when it is non-nil.
func doJSON(t *testing.T, method, url string, body any, out any) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func createCar(t *testing.T, srv *httptest.Server, company, model string) map[string]any {
	t.Helper()
	var car map[string]any
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/cars",
		map[string]string{"company": company, "model": model}, &car)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create car: expected 201, got %d", resp.StatusCode)
	}
	return car
}

func createUser(t *testing.T, srv *httptest.Server, email string, carID any) map[string]any {
	t.Helper()
	var user map[string]any
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/users",
		map[string]any{"name": "Ann", "email": email, "password": "secret", "carId": carID}, &user)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create user: expected 201, got %d", resp.StatusCode)
	}
	return user
}
