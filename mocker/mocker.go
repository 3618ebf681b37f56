// Package mocker helps unit tests substitute package-level functions and
// variables for mock ones.
package mocker

// ReplaceItem swaps *orgVal for newVal and returns a function that restores
// the original. Use as
//
//	defer mocker.ReplaceItem(&orgVal, newVal)()
//
// - note the extra brackets.
func ReplaceItem[T any](orgVal *T, newVal T) func() {
	saveVal := *orgVal
	*orgVal = newVal
	return func() { *orgVal = saveVal }
}

// Restorer collects the undo functions of several substitutions so a test can
// revert them all with one deferred call, in reverse order of substitution.
type Restorer struct {
	undos []func()
}

// Add registers one undo function.
func (r *Restorer) Add(undo func()) {
	r.undos = append(r.undos, undo)
}

// Restore runs the registered undo functions, last first.
func (r *Restorer) Restore() {
	for i := len(r.undos) - 1; i >= 0; i-- {
		r.undos[i]()
	}
	r.undos = nil
}
