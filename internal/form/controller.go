// Package form implements the submit lifecycle shared by the contact and
// order forms: field values, per-field error messages, and an
// editing/submitting/success state machine with double-submit protection.
package form

import (
	"context"
	"errors"
	"sync"
	"time"
)

// State describes where a form sits in its submit lifecycle.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateSuccess
)

var (
	// ErrSubmitInProgress is returned when Submit is called while an
	// earlier submit is still in flight; the trigger is simply ignored.
	ErrSubmitInProgress = errors.New("submit already in progress")
	// ErrInvalid is returned when validation blocks the submit. No I/O
	// happens in that case; the field errors carry the detail.
	ErrInvalid = errors.New("form has validation errors")
)

// Controller drives one form instance. Each page owns its controller
// exclusively; the mutex only guards against overlapping submit triggers.
type Controller struct {
	// SuccessFor is how long the success state stays visible before the
	// form reverts to editing. Zero means the caller reverts manually.
	SuccessFor time.Duration
	// FailureNotice is the generic message surfaced when the write fails.
	FailureNotice string

	mu     sync.Mutex
	schema Schema
	values map[string]string
	errors map[string]string
	state  State
	notice string
}

func NewController(schema Schema) *Controller {
	return &Controller{
		schema: schema,
		values: make(map[string]string),
		errors: make(map[string]string),
		state:  StateEditing,
	}
}

// SetField records a new value. Any error previously shown for the field
// is cleared immediately; re-validation only happens on the next submit
// attempt.
func (f *Controller) SetField(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[name] = value
	delete(f.errors, name)
}

// Field returns the current value for name.
func (f *Controller) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[name]
}

// Values returns a snapshot of every field value.
func (f *Controller) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.values)
}

// Errors returns a snapshot of the recorded field errors.
func (f *Controller) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyMap(f.errors)
}

func (f *Controller) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Notice returns the generic failure notice, or "" when there is none.
func (f *Controller) Notice() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notice
}

// Validate runs every rule and replaces the recorded error map. It returns
// an empty map iff the form is valid.
func (f *Controller) Validate() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *Controller) validateLocked() map[string]string {
	errs := make(map[string]string)
	for name, rules := range f.schema {
		for _, rule := range rules {
			if msg := rule(f.values[name]); msg != "" {
				errs[name] = msg
				break
			}
		}
	}
	f.errors = errs
	return copyMap(errs)
}

// Submit validates and, when clean, runs op with a snapshot of the values.
// Invalid forms abort before any I/O. While a submit is in flight further
// calls return ErrSubmitInProgress so only one write is ever issued.
//
// On success the values are cleared and the form shows its success state
// for SuccessFor before reverting to editing. On failure the typed values
// are kept so the visitor can retry without re-typing.
func (f *Controller) Submit(ctx context.Context, op func(ctx context.Context, values map[string]string) error) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if errs := f.validateLocked(); len(errs) > 0 {
		f.mu.Unlock()
		return ErrInvalid
	}
	f.state = StateSubmitting
	f.notice = ""
	snapshot := copyMap(f.values)
	f.mu.Unlock()

	err := op(ctx, snapshot)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateEditing
		f.notice = f.FailureNotice
		return err
	}

	f.values = make(map[string]string)
	f.errors = make(map[string]string)
	f.state = StateSuccess
	if f.SuccessFor > 0 {
		time.AfterFunc(f.SuccessFor, f.Reset)
	}
	return nil
}

// Reset returns a successful form to the editing state.
func (f *Controller) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StateSuccess {
		f.state = StateEditing
	}
}

func copyMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
