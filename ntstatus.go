package winstatus

import "fmt"

// NT is an NTSTATUS value. The top two bits carry the severity class;
// everything below them is facility and code.
type NT uint32

// Severity is the two-bit NTSTATUS severity class.
type Severity uint8

const (
	SeveritySuccess Severity = iota
	SeverityInformational
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityInformational:
		return "informational"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// Severity returns the value's severity class.
func (s NT) Severity() Severity { return Severity(uint32(s) >> 30) }

// Ok reports whether s is anything other than an error-class status.
// Informational and warning statuses count as success; callers that
// care about the distinction should ask Severity directly.
func (s NT) Ok() bool { return s.Severity() != SeverityError }

// IsSuccess reports whether s is in the success class.
func (s NT) IsSuccess() bool { return s.Severity() == SeveritySuccess }

// IsInformational reports whether s is in the informational class.
func (s NT) IsInformational() bool { return s.Severity() == SeverityInformational }

// IsWarning reports whether s is in the warning class.
func (s NT) IsWarning() bool { return s.Severity() == SeverityWarning }

// IsError reports whether s is in the error class.
func (s NT) IsError() bool { return s.Severity() == SeverityError }

// Facility returns the 12-bit facility field.
func (s NT) Facility() uint16 { return uint16(uint32(s) >> 16 & 0x0FFF) }

// Code returns the low 16-bit status code.
func (s NT) Code() uint16 { return uint16(s) }

func (s NT) String() string {
	return fmt.Sprintf("NTSTATUS %s", hex32(uint32(s)))
}
