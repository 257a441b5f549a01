//go:build !windows

package winstatus

// Only Windows keeps a per-thread last-error slot. Elsewhere the fetch
// reports ERROR_CALL_NOT_IMPLEMENTED so that sentinel matches still
// surface as failures instead of vacuous successes.
func platformLastError() Win32 { return Win32CallNotImplemented }
