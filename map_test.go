package winstatus

import (
	"net/http"
	"syscall"
	"testing"
)

func TestHRFromWin32(t *testing.T) {
	tests := []struct {
		in   Win32
		want HR
	}{
		{Win32Success, SOK},
		{Win32AccessDenied, EAccessDenied},
		{Win32InvalidHandle, EHandle},
		{Win32OutOfMemory, EOutOfMemory},
		{Win32InvalidParameter, EInvalidArg},
		{Win32FileNotFound, HR(0x80070002)},
	}

	for _, tt := range tests {
		if got := HRFromWin32(tt.in); got != tt.want {
			t.Errorf("HRFromWin32(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestHRFromWin32RoundTrip(t *testing.T) {
	h := HRFromWin32(Win32FileNotFound)
	w, ok := h.Win32()
	if !ok {
		t.Fatal("expected the mapped HRESULT to carry a win32 code")
	}
	if w != Win32FileNotFound {
		t.Errorf("expected ERROR_FILE_NOT_FOUND back, got %s", w)
	}
}

func TestHRFromNT(t *testing.T) {
	tests := []struct {
		in   NT
		want HR
	}{
		{StatusAccessViolation, HR(0xD0000005)},
		{StatusObjectNameNotFound, HR(0xD0000034)},
		{StatusSuccess, HR(0x10000000)},
	}

	for _, tt := range tests {
		if got := HRFromNT(tt.in); got != tt.want {
			t.Errorf("HRFromNT(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}

	// The mapped value keeps the NTSTATUS severity judgment.
	if HRFromNT(StatusAccessViolation).Ok() {
		t.Error("a mapped error status should still fail")
	}
}

func TestFromErrno(t *testing.T) {
	if got := FromErrno(syscall.Errno(5)); got != Win32AccessDenied {
		t.Errorf("expected ERROR_ACCESS_DENIED, got %s", got)
	}
	if got := FromErrno(syscall.Errno(0)); !got.Ok() {
		t.Errorf("expected success, got %s", got)
	}
}

func TestHTTPStatusWin32(t *testing.T) {
	tests := []struct {
		code Win32
		want int
	}{
		{Win32Success, http.StatusOK},
		{Win32FileNotFound, http.StatusNotFound},
		{Win32PathNotFound, http.StatusNotFound},
		{Win32AccessDenied, http.StatusForbidden},
		{Win32InvalidParameter, http.StatusBadRequest},
		{Win32CallNotImplemented, http.StatusNotImplemented},
		{Win32AlreadyExists, http.StatusConflict},
		{Win32WaitTimeout, http.StatusGatewayTimeout},
		{Win32InvalidHandle, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%s): expected %d, got %d", tt.code, tt.want, got)
		}
	}
}

func TestHTTPStatusNT(t *testing.T) {
	tests := []struct {
		code NT
		want int
	}{
		{StatusSuccess, http.StatusOK},
		{StatusObjectNameExists, http.StatusOK},
		{StatusBufferOverflow, http.StatusOK},
		{StatusObjectNameNotFound, http.StatusNotFound},
		{StatusAccessDenied, http.StatusForbidden},
		{StatusInvalidParameter, http.StatusBadRequest},
		{StatusNotImplemented, http.StatusNotImplemented},
		{StatusObjectNameCollision, http.StatusConflict},
		{StatusIOTimeout, http.StatusGatewayTimeout},
		{StatusUnsuccessful, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%s): expected %d, got %d", tt.code, tt.want, got)
		}
	}
}

func TestHTTPStatusHR(t *testing.T) {
	tests := []struct {
		code HR
		want int
	}{
		{SOK, http.StatusOK},
		{SFalse, http.StatusOK},
		{ENotImpl, http.StatusNotImplemented},
		{EFail, http.StatusInternalServerError},
		// FACILITY_WIN32 failures are judged by the wrapped code.
		{EAccessDenied, http.StatusForbidden},
		{EInvalidArg, http.StatusBadRequest},
		{HR(0x80070002), http.StatusNotFound},
	}

	for _, tt := range tests {
		if got := HTTPStatus(tt.code); got != tt.want {
			t.Errorf("HTTPStatus(%s): expected %d, got %d", tt.code, tt.want, got)
		}
	}
}
