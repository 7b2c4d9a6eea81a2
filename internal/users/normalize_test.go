package users_test

import (
	"testing"

	"usermgmt/internal/users"
)

func TestNormalizeEmail(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
		ok   bool
	}{
		{name: "plain", in: "a@b.com", out: "a@b.com", ok: true},
		{name: "lowercase domain only", in: "Ann@Example.COM", out: "Ann@example.com", ok: true},
		{name: "trim whitespace", in: "  a@b.com\t", out: "a@b.com", ok: true},
		{name: "plus addressing", in: "ann+tag@b.com", out: "ann+tag@b.com", ok: true},
		{name: "empty", in: "   ", ok: false},
		{name: "missing at", in: "ann.example.com", ok: false},
		{name: "display name", in: "Ann <a@b.com>", ok: false},
		{name: "domain without dot", in: "a@localhost", ok: false},
		{name: "two addresses", in: "a@b.com, c@d.com", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := users.NormalizeEmail(tc.in)
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}

				return
			}
			if got != tc.out {
				t.Fatalf("got %q, want %q", got, tc.out)
			}
		})
	}
}
