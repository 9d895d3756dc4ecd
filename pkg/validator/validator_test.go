package validator

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Name  string `json:"user_name" validate:"max=5"`
	Topic string `json:"topic" validate:"required"`
}

func TestValidateAndDescribe(t *testing.T) {
	v := New()

	if err := v.Validate(&sample{Name: "bob", Topic: "x"}); err != nil {
		t.Fatalf("expected valid sample, got %v", err)
	}

	err := v.Validate(&sample{Name: "toolongname", Topic: "x"})
	if err == nil {
		t.Fatalf("expected max violation")
	}
	if got := Describe(err); got != "user_name must be at most 5 characters" {
		t.Fatalf("unexpected description %q", got)
	}

	err = v.Validate(&sample{})
	if got := Describe(err); !strings.Contains(got, "topic is required") {
		t.Fatalf("unexpected description %q", got)
	}

	if got := Describe(errors.New("plain")); got != "plain" {
		t.Fatalf("non-validation errors must pass through, got %q", got)
	}
}
