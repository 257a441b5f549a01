package winstatus

// A Deferred handler folds a raw call result into a (status, result)
// pair without interrupting control flow. The caller decides later what
// to do with the status, typically by handing it to Wrap.
type Deferred[R comparable] func(r R) (Win32, R)

// A Checked handler passes the raw call result through and reports
// failure as an error.
type Checked[R comparable] func(r R) (R, error)

// lastError reads the calling thread's most recent Win32 error code.
// Tests substitute it to exercise handlers deterministically.
var lastError = platformLastError

// LastErrorIf builds a Deferred handler for calls that signal failure
// by returning invalid and park the detail in the thread's last-error
// slot. On any other result the status half of the pair is
// Win32Success and the slot is not consulted.
func LastErrorIf[R comparable](invalid R) Deferred[R] {
	return func(r R) (Win32, R) {
		if r == invalid {
			return lastError(), r
		}
		return Win32Success, r
	}
}

// CheckLastErrorIf builds a Checked handler with the same sentinel rule
// as LastErrorIf. When the sentinel matches, the returned error carries
// whatever the last-error slot held, even if that turns out to be
// ERROR_SUCCESS; the error's Ok method reports that case.
func CheckLastErrorIf[R comparable](invalid R) Checked[R] {
	return func(r R) (R, error) {
		if r == invalid {
			return r, NewStatusError(lastError())
		}
		return r, nil
	}
}

// CheckNT interprets a raw NTSTATUS and returns an error only for the
// error severity class. Informational and warning statuses pass.
func CheckNT(code uint32) error {
	if st := NT(code); !st.Ok() {
		return NewStatusError(st)
	}
	return nil
}

// CheckHR interprets a raw HRESULT and returns an error only when the
// failure bit is set.
func CheckHR(code uint32) error {
	if st := HR(code); !st.Ok() {
		return NewStatusError(st)
	}
	return nil
}
