package winstatus

import "fmt"

// HR is an HRESULT. The high bit is the severity flag: clear means
// success, set means failure.
type HR uint32

// Ok reports whether h is a success HRESULT. It is the same test as
// Succeeded.
func (h HR) Ok() bool { return h.Succeeded() }

// Succeeded reports whether the severity bit is clear (the SUCCEEDED
// macro).
func (h HR) Succeeded() bool { return uint32(h)&0x80000000 == 0 }

// Failed reports whether the severity bit is set (the FAILED macro).
func (h HR) Failed() bool { return !h.Succeeded() }

// Facility returns the 11-bit facility field.
func (h HR) Facility() uint16 { return uint16(uint32(h) >> 16 & 0x07FF) }

// Code returns the low 16-bit code field.
func (h HR) Code() uint16 { return uint16(h) }

// IsWin32 reports whether h is a FACILITY_WIN32 failure, the shape
// produced by the HRFromWin32 mapping.
func (h HR) IsWin32() bool { return h.Failed() && h.Facility() == facilityWin32 }

// Win32 extracts the Win32 error code from a FACILITY_WIN32 failure,
// undoing the HRFromWin32 mapping. The second result is false when h
// did not come from that mapping.
func (h HR) Win32() (Win32, bool) {
	if !h.IsWin32() {
		return Win32Success, false
	}
	return Win32(h.Code()), true
}

func (h HR) String() string {
	return fmt.Sprintf("HRESULT %s", hex32(uint32(h)))
}
