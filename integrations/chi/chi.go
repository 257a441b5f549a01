// Package chi provides thin adapters for using win-status with the chi router.
//
// Chi uses standard net/http handlers, so win-status works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	winstatus "github.com/blackwell-systems/win-status"
)

// RequestID is a convenience wrapper around winstatus.RequestID
// that returns a standard net/http middleware for chi.
//
// Chi can use winstatus.RequestID directly; this exists for clarity.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.RequestID)
func RequestID(next http.Handler) http.Handler {
	return winstatus.RequestID(next)
}
