package inputval_test

import (
	"strings"
	"testing"

	"github.com/habitloop/circlehub/internal/app/system/inputval"
)

type sampleInput struct {
	Name     string `validate:"required,max=10" label:"Circle name"`
	Email    string `validate:"omitempty,email" label:"Email"`
	Privacy  string `validate:"omitempty,oneof=public private" label:"Privacy"`
	Password string `validate:"omitempty,min=8" label:"Password"`
}

func TestValidate_OK(t *testing.T) {
	res := inputval.Validate(sampleInput{Name: "fine"})
	if res.HasErrors() {
		t.Errorf("unexpected errors: %v", res.Errors)
	}
	if res.First() != "" {
		t.Errorf("First on clean result: %q", res.First())
	}
}

func TestValidate_Messages(t *testing.T) {
	tests := []struct {
		name string
		in   sampleInput
		want string
	}{
		{"required", sampleInput{}, "Circle name is required"},
		{"max", sampleInput{Name: strings.Repeat("x", 11)}, "Circle name must be at most 10 characters"},
		{"email", sampleInput{Name: "ok", Email: "nope"}, "Email must be a valid email address"},
		{"oneof", sampleInput{Name: "ok", Privacy: "secret"}, "Privacy must be one of: public, private"},
		{"min", sampleInput{Name: "ok", Password: "short"}, "Password must be at least 8 characters"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := inputval.Validate(tc.in)
			if !res.HasErrors() {
				t.Fatal("expected errors")
			}
			if res.First() != tc.want {
				t.Errorf("First = %q, want %q", res.First(), tc.want)
			}
		})
	}
}
