package winstatus

import (
	"encoding/json"
	"errors"
	"net/http"
)

const (
	// HeaderRequestID is the standard header name for request IDs.
	HeaderRequestID = "X-Request-Id"
)

// Envelope is the JSON body Write renders for a status failure.
type Envelope struct {
	Kind      string `json:"kind"`
	Code      string `json:"code,omitempty"`
	Ok        bool   `json:"ok"`
	Severity  string `json:"severity,omitempty"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Write renders err as a JSON status envelope with an HTTP status
// derived from the carried code. A nil error writes 204 with no body;
// errors that carry no status value render as a generic failure.
func Write(w http.ResponseWriter, r *http.Request, err error) {
	if err == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	env, status := envelope(err)
	if env.RequestID == "" {
		env.RequestID = RequestIDFromRequest(r)
	}
	if env.RequestID != "" {
		w.Header().Set(HeaderRequestID, env.RequestID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(env)
}

func envelope(err error) (Envelope, int) {
	var w32 *StatusError[Win32]
	if errors.As(err, &w32) {
		st := w32.Status()
		return Envelope{
			Kind:    "win32",
			Code:    hex32(uint32(st)),
			Ok:      st.Ok(),
			Message: err.Error(),
		}, HTTPStatus(st)
	}

	var nt *StatusError[NT]
	if errors.As(err, &nt) {
		st := nt.Status()
		return Envelope{
			Kind:     "ntstatus",
			Code:     hex32(uint32(st)),
			Ok:       st.Ok(),
			Severity: st.Severity().String(),
			Message:  err.Error(),
		}, HTTPStatus(st)
	}

	var hr *StatusError[HR]
	if errors.As(err, &hr) {
		st := hr.Status()
		return Envelope{
			Kind:    "hresult",
			Code:    hex32(uint32(st)),
			Ok:      st.Ok(),
			Message: err.Error(),
		}, HTTPStatus(st)
	}

	return Envelope{
		Kind:    "error",
		Message: err.Error(),
	}, http.StatusInternalServerError
}
