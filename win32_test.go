package winstatus

import "testing"

func TestWin32Ok(t *testing.T) {
	if !Win32Success.Ok() {
		t.Error("ERROR_SUCCESS should be ok")
	}
	if Win32FileNotFound.Ok() {
		t.Error("ERROR_FILE_NOT_FOUND should not be ok")
	}
	if Win32(0xFFFFFFFF).Ok() {
		t.Error("arbitrary nonzero code should not be ok")
	}
}

func TestWin32ZeroValue(t *testing.T) {
	var w Win32
	if !w.Ok() {
		t.Error("zero value should be ok")
	}
	if w != Win32Success {
		t.Error("zero value should equal Win32Success")
	}
}

func TestWin32String(t *testing.T) {
	tests := []struct {
		code Win32
		want string
	}{
		{Win32Success, "win32 error 0"},
		{Win32AccessDenied, "win32 error 5"},
		{Win32Timeout, "win32 error 1460"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String(%d): expected %q, got %q", uint32(tt.code), tt.want, got)
		}
	}
}
