// Package http exposes the detect service over the platform router
package http

import (
	"net/http"
	"strings"
	"sync"

	"langshim/internal/core/lang"
	phttp "langshim/internal/platform/net/http"
	"langshim/internal/platform/net/http/bind"
	"langshim/internal/services/detect/domain"
)

type handlers struct {
	svc  domain.ServicePort
	opts bind.JSONOptions
}

var registerTags = sync.OnceValue(func() error {
	return bind.RegisterValidation("lang_code", func(fl bind.FieldLevel) bool {
		code := fl.Field().String()
		return lang.FromCode(code) != lang.UnknownLanguage || strings.EqualFold(strings.TrimSpace(code), lang.UnknownLanguage.Code())
	}, "{0} must be a known language code")
})

// BodyLimit sizes the JSON body cap for a text cap. Escaping can expand text
// up to six times ("é"), plus room for the other fields
func BodyLimit(maxText int) int64 { return int64(maxText)*6 + 4096 }

// Register mounts detect routes on r. maxText bounds the request body
func Register(r phttp.Router, svc domain.ServicePort, maxText int) {
	if err := registerTags(); err != nil {
		panic(err)
	}
	opts := bind.DefaultJSONOptions()
	opts.MaxBytes = BodyLimit(maxText)
	h := &handlers{svc: svc, opts: opts}

	phttp.PostJSON(r, "/detect", h.detect, h.opts)
	phttp.GetJSON(r, "/languages", h.languages)
}

func (h *handlers) detect(r *http.Request, in domain.DetectInput) (any, error) {
	return h.svc.Detect(r.Context(), in)
}

func (h *handlers) languages(r *http.Request) (any, error) {
	rows, err := h.svc.Languages(r.Context())
	if err != nil {
		return nil, err
	}
	return map[string]any{"engine": h.svc.EngineName(), "languages": rows}, nil
}
