package form

import (
	"context"
	"errors"
	"testing"
	"time"
)

func testSchema() Schema {
	return Schema{
		"name":  {Required("name is required")},
		"email": {Required("email is required"), Email("email is not valid")},
	}
}

func TestValidate_AllEmpty(t *testing.T) {
	f := NewController(testSchema())

	errs := f.Validate()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if errs["name"] != "name is required" || errs["email"] != "email is required" {
		t.Fatalf("unexpected messages: %v", errs)
	}
}

func TestValidate_EmailFormat(t *testing.T) {
	f := NewController(testSchema())
	f.SetField("name", "Jean")

	f.SetField("email", "not-an-email")
	if errs := f.Validate(); errs["email"] != "email is not valid" {
		t.Fatalf("expected format error, got %v", errs)
	}

	f.SetField("email", "a@b.co")
	if errs := f.Validate(); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidate_WhitespaceOnlyIsEmpty(t *testing.T) {
	f := NewController(testSchema())
	f.SetField("name", "   ")
	f.SetField("email", "a@b.co")

	if errs := f.Validate(); errs["name"] != "name is required" {
		t.Fatalf("whitespace-only value passed validation: %v", errs)
	}
}

func TestSetField_ClearsErrorEagerly(t *testing.T) {
	f := NewController(testSchema())
	f.Validate()
	if len(f.Errors()) != 2 {
		t.Fatalf("expected recorded errors")
	}

	// typing into the field clears its error without re-validating
	f.SetField("email", "x")
	errs := f.Errors()
	if _, ok := errs["email"]; ok {
		t.Fatalf("email error should be cleared on edit: %v", errs)
	}
	if _, ok := errs["name"]; !ok {
		t.Fatalf("name error should remain: %v", errs)
	}
}

func TestSubmit_InvalidFormDoesNoIO(t *testing.T) {
	f := NewController(testSchema())

	calls := 0
	err := f.Submit(context.Background(), func(context.Context, map[string]string) error {
		calls++
		return nil
	})
	if err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if calls != 0 {
		t.Fatalf("op must not run on invalid form")
	}
	if f.State() != StateEditing {
		t.Fatalf("expected editing state, got %v", f.State())
	}
}

func TestSubmit_SuccessClearsValues(t *testing.T) {
	f := NewController(testSchema())
	f.SetField("name", "Jean")
	f.SetField("email", "jean@example.com")

	err := f.Submit(context.Background(), func(context.Context, map[string]string) error {
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State() != StateSuccess {
		t.Fatalf("expected success state, got %v", f.State())
	}
	if f.Field("name") != "" || f.Field("email") != "" {
		t.Fatalf("values should be cleared after success")
	}
}

func TestSubmit_FailureKeepsValues(t *testing.T) {
	f := NewController(testSchema())
	f.FailureNotice = "Une erreur est survenue. Veuillez réessayer."
	f.SetField("name", "Jean")
	f.SetField("email", "jean@example.com")

	wantErr := errors.New("remote write failed")
	err := f.Submit(context.Background(), func(context.Context, map[string]string) error {
		return wantErr
	})
	if err != wantErr {
		t.Fatalf("expected op error, got %v", err)
	}
	if f.State() != StateEditing {
		t.Fatalf("expected editing state after failure, got %v", f.State())
	}
	if f.Field("name") != "Jean" {
		t.Fatalf("values must be preserved for retry")
	}
	if f.Notice() == "" {
		t.Fatalf("expected failure notice")
	}
}

func TestSubmit_DoubleSubmitIssuesOneWrite(t *testing.T) {
	f := NewController(testSchema())
	f.SetField("name", "Jean")
	f.SetField("email", "jean@example.com")

	started := make(chan struct{})
	release := make(chan struct{})
	writes := 0

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background(), func(context.Context, map[string]string) error {
			writes++
			close(started)
			<-release
			return nil
		})
	}()

	<-started
	// the first submit is still in flight; the second trigger is ignored
	err := f.Submit(context.Background(), func(context.Context, map[string]string) error {
		writes++
		return nil
	})
	if err != ErrSubmitInProgress {
		t.Fatalf("expected ErrSubmitInProgress, got %v", err)
	}

	close(release)
	if err := <-done; err != nil {
		t.Fatalf("first submit failed: %v", err)
	}
	if writes != 1 {
		t.Fatalf("expected exactly one write, got %d", writes)
	}
}

func TestSuccessAutoRevertsToEditing(t *testing.T) {
	f := NewController(testSchema())
	f.SuccessFor = 10 * time.Millisecond
	f.SetField("name", "Jean")
	f.SetField("email", "jean@example.com")

	if err := f.Submit(context.Background(), func(context.Context, map[string]string) error {
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State() != StateSuccess {
		t.Fatalf("expected success state")
	}

	deadline := time.Now().Add(time.Second)
	for f.State() != StateEditing {
		if time.Now().After(deadline) {
			t.Fatalf("success state never reverted to editing")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
