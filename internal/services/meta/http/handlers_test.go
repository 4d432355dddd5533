package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"langshim/internal/core/version"
	phttp "langshim/internal/platform/net/http"
	"langshim/internal/platform/testkit"
)

func get(t *testing.T, h http.Handler, path string, into any) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("%s: status %d", path, rec.Code)
	}
	env := struct {
		Data json.RawMessage `json:"data"`
	}{}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(env.Data, into); err != nil {
		t.Fatal(err)
	}
}

func TestMetaRoutes(t *testing.T) {
	started := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	testkit.Swap(t, &now, func() time.Time { return started.Add(90*time.Minute + 300*time.Millisecond) })

	r := phttp.AdaptChi(chi.NewRouter())
	Register(r, "langshim-api", "script", started)

	var info ServiceInfo
	get(t, r.Mux(), "/service", &info)
	if info.Engine != "script" || info.Uptime != "1h30m0s" || !info.StartedAt.Equal(started) {
		t.Fatalf("info = %+v", info)
	}

	var bi version.BuildInfo
	get(t, r.Mux(), "/version", &bi)
	if bi.Version == "" || bi.GoVersion == "" {
		t.Fatalf("build info = %+v", bi)
	}
}
