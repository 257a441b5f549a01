//go:build windows

package winstatus

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"
)

func platformLastError() Win32 {
	var errno syscall.Errno
	if errors.As(windows.GetLastError(), &errno) {
		return Win32(errno)
	}
	return Win32Success
}
