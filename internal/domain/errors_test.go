package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_StringAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("socket closed")
	e := Wrap(KindInfrastructure, "db_unavailable", "database unavailable", cause)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause to be reachable via errors.Is")
	}
	if got := e.Error(); got == "" || got == cause.Error() {
		t.Fatalf("unexpected error string: %q", got)
	}
}

func TestIs_MatchesCode(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("handler: %w", ErrEmailAlreadyExists())
	if !Is(err, "email_already_exists") {
		t.Fatalf("expected code match through wrapping")
	}
	if Is(err, "user_not_found") {
		t.Fatalf("unexpected code match")
	}
	if Is(errors.New("plain"), "user_not_found") {
		t.Fatalf("plain error must not match")
	}
}

func TestErrInvalidField_CarriesMeta(t *testing.T) {
	t.Parallel()

	e := ErrInvalidField("email", "invalid format")
	if e.Meta["field"] != "email" || e.Meta["reason"] != "invalid format" {
		t.Fatalf("unexpected meta: %+v", e.Meta)
	}
	if e.Kind != KindValidation {
		t.Fatalf("expected validation kind, got %s", e.Kind)
	}
}

func TestUserUpdate_Empty(t *testing.T) {
	t.Parallel()

	if !(UserUpdate{}).Empty() {
		t.Fatalf("zero update should be empty")
	}
	name := "Jane"
	if (UserUpdate{Name: &name}).Empty() {
		t.Fatalf("update with name should not be empty")
	}
}
