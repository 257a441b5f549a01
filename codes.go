package winstatus

// Well-known Win32 error codes from winerror.h.
const (
	Win32Success            Win32 = 0    // ERROR_SUCCESS
	Win32FileNotFound       Win32 = 2    // ERROR_FILE_NOT_FOUND
	Win32PathNotFound       Win32 = 3    // ERROR_PATH_NOT_FOUND
	Win32AccessDenied       Win32 = 5    // ERROR_ACCESS_DENIED
	Win32InvalidHandle      Win32 = 6    // ERROR_INVALID_HANDLE
	Win32NotEnoughMemory    Win32 = 8    // ERROR_NOT_ENOUGH_MEMORY
	Win32OutOfMemory        Win32 = 14   // ERROR_OUTOFMEMORY
	Win32NotSupported       Win32 = 50   // ERROR_NOT_SUPPORTED
	Win32FileExists         Win32 = 80   // ERROR_FILE_EXISTS
	Win32InvalidParameter   Win32 = 87   // ERROR_INVALID_PARAMETER
	Win32CallNotImplemented Win32 = 120  // ERROR_CALL_NOT_IMPLEMENTED
	Win32InsufficientBuffer Win32 = 122  // ERROR_INSUFFICIENT_BUFFER
	Win32AlreadyExists      Win32 = 183  // ERROR_ALREADY_EXISTS
	Win32MoreData           Win32 = 234  // ERROR_MORE_DATA
	Win32WaitTimeout        Win32 = 258  // WAIT_TIMEOUT
	Win32OperationAborted   Win32 = 995  // ERROR_OPERATION_ABORTED
	Win32IOPending          Win32 = 997  // ERROR_IO_PENDING
	Win32Timeout            Win32 = 1460 // ERROR_TIMEOUT
)

// Well-known NTSTATUS values from ntstatus.h, spanning all four
// severity classes.
const (
	StatusSuccess               NT = 0x00000000 // STATUS_SUCCESS
	StatusPending               NT = 0x00000103 // STATUS_PENDING
	StatusObjectNameExists      NT = 0x40000000 // STATUS_OBJECT_NAME_EXISTS
	StatusBufferOverflow        NT = 0x80000005 // STATUS_BUFFER_OVERFLOW
	StatusNoMoreFiles           NT = 0x80000006 // STATUS_NO_MORE_FILES
	StatusUnsuccessful          NT = 0xC0000001 // STATUS_UNSUCCESSFUL
	StatusNotImplemented        NT = 0xC0000002 // STATUS_NOT_IMPLEMENTED
	StatusAccessViolation       NT = 0xC0000005 // STATUS_ACCESS_VIOLATION
	StatusInvalidHandle         NT = 0xC0000008 // STATUS_INVALID_HANDLE
	StatusInvalidParameter      NT = 0xC000000D // STATUS_INVALID_PARAMETER
	StatusNoSuchFile            NT = 0xC000000F // STATUS_NO_SUCH_FILE
	StatusAccessDenied          NT = 0xC0000022 // STATUS_ACCESS_DENIED
	StatusBufferTooSmall        NT = 0xC0000023 // STATUS_BUFFER_TOO_SMALL
	StatusObjectNameNotFound    NT = 0xC0000034 // STATUS_OBJECT_NAME_NOT_FOUND
	StatusObjectNameCollision   NT = 0xC0000035 // STATUS_OBJECT_NAME_COLLISION
	StatusInsufficientResources NT = 0xC000009A // STATUS_INSUFFICIENT_RESOURCES
	StatusIOTimeout             NT = 0xC00000B5 // STATUS_IO_TIMEOUT
	StatusNotSupported          NT = 0xC00000BB // STATUS_NOT_SUPPORTED
)

// Well-known HRESULT values from winerror.h.
const (
	SOK           HR = 0x00000000 // S_OK
	SFalse        HR = 0x00000001 // S_FALSE
	ENotImpl      HR = 0x80004001 // E_NOTIMPL
	ENoInterface  HR = 0x80004002 // E_NOINTERFACE
	EPointer      HR = 0x80004003 // E_POINTER
	EAbort        HR = 0x80004004 // E_ABORT
	EFail         HR = 0x80004005 // E_FAIL
	EUnexpected   HR = 0x8000FFFF // E_UNEXPECTED
	EAccessDenied HR = 0x80070005 // E_ACCESSDENIED
	EHandle       HR = 0x80070006 // E_HANDLE
	EOutOfMemory  HR = 0x8007000E // E_OUTOFMEMORY
	EInvalidArg   HR = 0x80070057 // E_INVALIDARG
)

const (
	facilityWin32 = 7          // FACILITY_WIN32
	facilityNTBit = 0x10000000 // FACILITY_NT_BIT
)
