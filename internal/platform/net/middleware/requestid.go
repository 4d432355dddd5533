package middleware

import (
	"net/http"
	"strings"

	pnet "langshim/internal/platform/net"

	"github.com/google/uuid"
)

// RequestIDHeader carries the request id both ways
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLen = 128

// newID is a seam for tests
var newID = uuid.NewString

// RequestID keeps a well formed inbound X-Request-ID or mints a uuid, stores
// it on the context and echoes it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
			if !validID(id) {
				id = newID()
			}
			w.Header().Set(RequestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
		})
	}
}

// validID accepts printable ASCII with no spaces, up to maxRequestIDLen
func validID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c <= ' ' || c > '~' {
			return false
		}
	}
	return true
}
