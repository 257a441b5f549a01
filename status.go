// Package winstatus provides typed, checkable representations of the
// three Windows status code families: Win32 error codes, NTSTATUS
// values, and HRESULTs.
// Each family keeps its own success rule, and the Unique wrapper turns
// "did anyone look at this status" into an enforced runtime invariant.
package winstatus

import "fmt"

// Status is the closed set of status code families understood by this
// package. All three are 32-bit codes; they differ only in how success
// is judged.
type Status interface {
	Win32 | NT | HR

	// Ok reports whether the code counts as success under its
	// family's rule.
	Ok() bool

	String() string
}

func hex32(v uint32) string {
	return fmt.Sprintf("0x%08X", v)
}
