package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

// initTestApp wires a full App against a stub backend and a temp device DB,
// the same way the root command's pre-run does.
func initTestApp(t *testing.T, backend http.HandlerFunc) *App {
	t.Helper()
	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	t.Setenv("JOBPORTAL_API_URL", srv.URL)
	t.Setenv("JOBPORTAL_DEVICE_DB", filepath.Join(t.TempDir(), "device.db"))

	app := &App{}
	if err := app.init(filepath.Join(t.TempDir(), "no-config.yaml")); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(app.close)
	return app
}

func TestUnauthorizedClearsPersistedToken(t *testing.T) {
	app := initTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "jwt expired"})
	})

	if err := app.device.SaveToken("persisted-tok"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	app.client.SetToken("persisted-tok")

	err := app.client.Do(context.Background(), http.MethodGet, "/auth/me", nil, nil, nil)
	if err == nil {
		t.Fatal("expected 401 error")
	}

	if got := app.client.Token(); got != "" {
		t.Errorf("in-memory token after 401 = %q, want empty", got)
	}
	tok, readErr := app.device.Token()
	if readErr != nil {
		t.Fatalf("read token: %v", readErr)
	}
	if tok != "" {
		t.Errorf("persisted token after 401 = %q, want empty", tok)
	}
}

func TestInitWiresContainers(t *testing.T) {
	app := initTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	})

	if app.cfg == nil || app.client == nil || app.device == nil {
		t.Fatal("core wiring incomplete")
	}
	if app.auth == nil || app.jobs == nil || app.bot == nil {
		t.Fatal("container wiring incomplete")
	}
}
