package handler

import (
	"strings"
	"testing"
)

func TestValidator_FieldMessages(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		Username: "",
		Email:    "not-an-email",
		Password: "p@ss",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatalf("expected validation error")
	}

	msg := err.Error()
	for _, want := range []string{
		"username is required",
		"email must be a valid email",
		"role must be one of: basic staff admin",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestValidator_Passes(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&createUserRequest{
		Username: "stella",
		Email:    "stella@x.com",
		Password: "p@ss",
		Role:     "staff",
	})
	if err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}
