package winstatus

import (
	"fmt"
	"os"
	"runtime"
)

// Unique owns a single status value together with the obligation to
// inspect it. The obligation is discharged by Ok, Err, Is, Equal or
// Release; Peek looks without discharging. Dropping a wrapper that
// still owes an inspection terminates the process, as does reusing one
// through Reset or Set.
//
// The zero value is an empty wrapper: it holds its family's zero code
// and owes nothing. Wrappers are not synchronized and must not be
// copied after first use; transfer ownership with Move.
type Unique[T Status] struct {
	noCopy noCopy

	value T
	armed bool
}

// Wrap places v under an inspection obligation. The obligation is
// created even when v is a success code; success is cheap to confirm
// and forgetting to look is the defect being hunted.
func Wrap[T Status](v T) *Unique[T] {
	u := &Unique[T]{value: v}
	u.arm()
	return u
}

// Ok discharges the obligation and reports whether the contained value
// is a success code.
func (u *Unique[T]) Ok() bool {
	u.disarm()
	return u.value.Ok()
}

// Err discharges the obligation and returns nil for a success code, or
// a *StatusError carrying the contained value otherwise.
func (u *Unique[T]) Err() error {
	u.disarm()
	if u.value.Ok() {
		return nil
	}
	return NewStatusError(u.value)
}

// Is discharges the obligation and reports whether the contained value
// equals v.
func (u *Unique[T]) Is(v T) bool {
	u.disarm()
	return u.value == v
}

// Equal discharges both wrappers' obligations and reports whether they
// contain the same code.
func Equal[T Status](a, b *Unique[T]) bool {
	a.disarm()
	b.disarm()
	return a.value == b.value
}

// Peek returns the contained value without discharging the obligation.
func (u *Unique[T]) Peek() T { return u.value }

// Checked reports whether the wrapper currently owes an inspection.
// Like Peek it does not discharge anything.
func (u *Unique[T]) Checked() bool { return !u.armed }

// Release discharges the obligation and hands the contained value to
// the caller, leaving the wrapper empty. Responsibility for acting on
// the value moves with it.
func (u *Unique[T]) Release() T {
	v := u.value
	var zero T
	u.value = zero
	u.disarm()
	return v
}

// Reset empties an already-inspected wrapper so it can be reused.
// Calling it while an inspection is still owed would silently destroy
// evidence, so that is a fault and terminates the process.
func (u *Unique[T]) Reset() {
	u.mustBeChecked("Reset")
	var zero T
	u.value = zero
}

// Set installs v and arms a fresh obligation. Like Reset it must not
// be called while an inspection is still owed.
func (u *Unique[T]) Set(v T) {
	u.mustBeChecked("Set")
	u.value = v
	u.arm()
}

// Move transfers the contained value, and the obligation if one is
// pending, to a new wrapper. The source is left empty and owing
// nothing.
func (u *Unique[T]) Move() *Unique[T] {
	dst := &Unique[T]{value: u.value}
	if u.armed {
		dst.arm()
	}
	var zero T
	u.value = zero
	u.disarm()
	return dst
}

func (u *Unique[T]) arm() {
	u.armed = true
	runtime.SetFinalizer(u, (*Unique[T]).finalize)
}

func (u *Unique[T]) disarm() {
	if u.armed {
		u.armed = false
		runtime.SetFinalizer(u, nil)
	}
}

func (u *Unique[T]) finalize() {
	if u.armed {
		fatalf("unchecked %v was dropped", u.value)
	}
}

func (u *Unique[T]) mustBeChecked(op string) {
	if u.armed {
		fatalf("%s would discard unchecked %v", op, u.value)
	}
}

// fatalf reports a usage fault and terminates the process. Discarding
// a status nobody looked at is a defect in the calling code, not a
// condition it can recover from.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "winstatus: "+format+"\n", args...)
	os.Exit(2)
}

// noCopy triggers the copylocks vet check on values embedding it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
