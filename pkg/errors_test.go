package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestKindErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		kind error
	}{
		{name: "not found", err: NotFound("client '%s' not found", "c-1"), kind: ErrNotFound},
		{name: "invalid argument", err: InvalidArgument("duplicate question"), kind: ErrInvalidArgument},
		{name: "conflict", err: Conflict("stale version"), kind: ErrConflict},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := fmt.Errorf("%w: extra", tc.err)
			if !errors.Is(wrapped, tc.kind) {
				t.Fatalf("expected %v to wrap %v", wrapped, tc.kind)
			}
			if !errors.Is(wrapped, tc.err) {
				t.Fatalf("expected %v to wrap the sentinel", wrapped)
			}
		})
	}

	if got := NotFound("client '%s' not found", "c-1").Error(); got != "client 'c-1' not found" {
		t.Fatalf("unexpected reason: %q", got)
	}
	if errors.Is(InvalidArgument("x"), ErrNotFound) {
		t.Fatalf("kinds must not overlap")
	}
}

func TestAppError(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap its cause")
	}
	body := appErr.ToHTTPError()
	if body.Code != "INTERNAL_ERROR" || body.Message != "An internal error occurred" {
		t.Fatalf("unexpected body: %+v", body)
	}

	simple := NewDomainErrorSimple("NOT_FOUND", "Budget request not found", http.StatusNotFound)
	if simple.Error() != "NOT_FOUND: Budget request not found" {
		t.Fatalf("unexpected error string: %s", simple.Error())
	}
}
