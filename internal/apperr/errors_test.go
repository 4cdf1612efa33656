package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestCode(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), CodeFailure},
		{"parse", Parse(errors.New("bad toml")), CodeData},
		{"wrapped config", fmt.Errorf("load: %w", Config(errors.New("port"))), CodeConfig},
		{"not found", NotFound(errors.New("template.html")), CodeNoInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Code(tc.err); got != tc.want {
				t.Errorf("Code = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestErrorIsKindAndCause(t *testing.T) {
	cause := errors.New("what is required")
	err := fmt.Errorf("loader: doing/a.toml: %w", Invalid(cause))

	if !errors.Is(err, ErrInvalid) {
		t.Error("expected errors.Is(err, ErrInvalid)")
	}
	if !errors.Is(err, cause) {
		t.Error("expected errors.Is(err, cause)")
	}
	if errors.Is(err, ErrParse) {
		t.Error("did not expect ErrParse")
	}
	if got := err.Error(); got != "loader: doing/a.toml: invalid record: what is required" {
		t.Errorf("message = %q", got)
	}
}
