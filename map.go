package winstatus

import (
	"net/http"
	"syscall"
)

// HRFromWin32 maps a Win32 error code into the HRESULT space, the
// HRESULT_FROM_WIN32 mapping: success maps to S_OK, everything else
// lands in FACILITY_WIN32 with the failure bit set.
func HRFromWin32(w Win32) HR {
	if w == Win32Success {
		return SOK
	}
	return HR(uint32(w)&0xFFFF | facilityWin32<<16 | 0x80000000)
}

// HRFromNT maps an NTSTATUS into the HRESULT space by setting the NT
// facility bit, the HRESULT_FROM_NT mapping.
func HRFromNT(s NT) HR { return HR(uint32(s) | facilityNTBit) }

// FromErrno converts a raw syscall error number. On Windows,
// syscall.Errno values are Win32 error codes already.
func FromErrno(e syscall.Errno) Win32 { return Win32(e) }

// HTTPStatus suggests an HTTP response status for a status value.
// Success codes map to 200; failures without a closer match map to
// 500. FACILITY_WIN32 HRESULTs are judged by the Win32 code they wrap.
func HTTPStatus[T Status](v T) int {
	switch s := any(v).(type) {
	case Win32:
		return win32HTTPStatus(s)
	case NT:
		return ntHTTPStatus(s)
	case HR:
		return hrHTTPStatus(s)
	}
	return http.StatusInternalServerError
}

func win32HTTPStatus(w Win32) int {
	switch w {
	case Win32Success:
		return http.StatusOK
	case Win32FileNotFound, Win32PathNotFound:
		return http.StatusNotFound
	case Win32AccessDenied:
		return http.StatusForbidden
	case Win32InvalidParameter:
		return http.StatusBadRequest
	case Win32NotSupported, Win32CallNotImplemented:
		return http.StatusNotImplemented
	case Win32FileExists, Win32AlreadyExists:
		return http.StatusConflict
	case Win32WaitTimeout, Win32Timeout:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func ntHTTPStatus(s NT) int {
	switch s {
	case StatusObjectNameNotFound, StatusNoSuchFile:
		return http.StatusNotFound
	case StatusAccessDenied:
		return http.StatusForbidden
	case StatusInvalidParameter:
		return http.StatusBadRequest
	case StatusNotImplemented, StatusNotSupported:
		return http.StatusNotImplemented
	case StatusObjectNameCollision:
		return http.StatusConflict
	case StatusIOTimeout:
		return http.StatusGatewayTimeout
	}
	if s.Ok() {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}

func hrHTTPStatus(h HR) int {
	if w, ok := h.Win32(); ok {
		return win32HTTPStatus(w)
	}
	switch h {
	case ENotImpl:
		return http.StatusNotImplemented
	}
	if h.Ok() {
		return http.StatusOK
	}
	return http.StatusInternalServerError
}
