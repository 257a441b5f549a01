package winstatus

import "fmt"

// Win32 is a Win32 error code, the kind reported through the calling
// thread's last-error slot (GetLastError). Zero is the only success
// value.
type Win32 uint32

// Ok reports whether w is ERROR_SUCCESS.
func (w Win32) Ok() bool { return w == Win32Success }

func (w Win32) String() string {
	return fmt.Sprintf("win32 error %d", uint32(w))
}
