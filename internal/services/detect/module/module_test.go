package module

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"langshim/internal/core/engine/script"
	"langshim/internal/core/marshal"
	"langshim/internal/modkit"
	"langshim/internal/platform/config"
	phttp "langshim/internal/platform/net/http"
)

func TestNew_ReadsConfig(t *testing.T) {
	t.Setenv("T_MAX_TEXT_BYTES", "32")
	t.Setenv("T_MAX_CHUNKS", "1")
	m := New(modkit.Deps{Cfg: config.New().Prefix("T_"), Engine: script.New()})
	if m.Name() != "detect" || m.Prefix() != "/v1" || m.Service().MaxTextBytes() != 32 {
		t.Fatalf("module = %s %s %d", m.Name(), m.Prefix(), m.Service().MaxTextBytes())
	}
}

func TestMountRoutes(t *testing.T) {
	m := New(modkit.Deps{Cfg: config.New().Prefix("T_UNSET_"), Engine: script.New(), Alloc: marshal.HeapAllocator{}},
		modkit.WithRegister(func(r phttp.Router) {
			r.Get("/extra", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
		}))
	srv := phttp.NewServer(config.New().Prefix("T_UNSET_"))
	modkit.Mount(srv.Router(), m)

	rec := httptest.NewRecorder()
	srv.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/detect", strings.NewReader(`{"text":"hello there"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("detect status %d: %s", rec.Code, rec.Body.String())
	}
	rec = httptest.NewRecorder()
	srv.Router().Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/extra", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("extra status %d", rec.Code)
	}
}
