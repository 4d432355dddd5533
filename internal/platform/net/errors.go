package net

import (
	"net/http"

	perr "langshim/internal/platform/errors"
)

// HTTPStatus maps a project error to http status
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	return perr.HTTPStatus(err)
}

// RetryAfter is the Retry-After value in seconds for err, 0 when a retry
// would not help
func RetryAfter(err error) int {
	if perr.Retryable(err) {
		return 1
	}
	return 0
}
