package normalize_test

import (
	"reflect"
	"testing"

	"github.com/habitloop/circlehub/internal/app/system/normalize"
)

func TestName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  Morning  Runners  ", "Morning Runners"},
		{"one\ttwo\nthree", "one two three"},
		{"plain", "plain"},
		{"   ", ""},
		{"", ""},
	}
	for _, tc := range tests {
		if got := normalize.Name(tc.in); got != tc.want {
			t.Errorf("Name(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStringSlice(t *testing.T) {
	got := normalize.StringSlice([]string{" run ", "", "  ", "read"})
	want := []string{"run", "read"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StringSlice = %v, want %v", got, want)
	}
}
