// Package http serves build and runtime metadata
package http

import (
	"net/http"
	"time"

	"langshim/internal/core/version"
	phttp "langshim/internal/platform/net/http"
)

// ServiceInfo is the GET /service payload
type ServiceInfo struct {
	Name      string    `json:"name"`
	Engine    string    `json:"engine"`
	StartedAt time.Time `json:"started_at"`
	Uptime    string    `json:"uptime"`
}

var now = time.Now // seam

// Register mounts /version and /service on r
func Register(r phttp.Router, name, engine string, started time.Time) {
	phttp.GetJSON(r, "/version", func(*http.Request) (any, error) {
		return version.Info(), nil
	})
	phttp.GetJSON(r, "/service", func(*http.Request) (any, error) {
		return ServiceInfo{
			Name:      name,
			Engine:    engine,
			StartedAt: started.UTC(),
			Uptime:    now().Sub(started).Truncate(time.Second).String(),
		}, nil
	})
}
