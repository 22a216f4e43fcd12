package atlasshift

import (
	"errors"
	"testing"
)

func TestAddDelta(t *testing.T) {
	cases := []struct {
		lit   string
		delta int64
		want  string
	}{
		{"5", 1, "6"},
		{"-1", 1, "0"},
		{"0", -3, "-3"},
		{"9223372036854775807", 1, "9223372036854775808"},
		{"123456789012345678901234567890", 1, "123456789012345678901234567891"},
		{"5.0", 1, "6.0"},
		{"1.5", 1, "2.5"},
		{"-1.0", 1, "0.0"},
		{"0.25", 0, "0.25"},
		{"1e2", 1, "101.0"},
		{"1E2", 1, "101.0"},
		{"1e16", 1, "1e+16"},
		{"0.00001", 0, "1e-05"},
		{"0.0001", 0, "0.0001"},
	}
	for _, tc := range cases {
		got, err := AddDelta(tc.lit, tc.delta)
		if err != nil {
			t.Fatalf("AddDelta(%q, %d): %v", tc.lit, tc.delta, err)
		}
		if got != tc.want {
			t.Fatalf("AddDelta(%q, %d) = %q, want %q", tc.lit, tc.delta, got, tc.want)
		}
	}
}

func TestAddDelta_Errors(t *testing.T) {
	if _, err := AddDelta("abc", 1); err == nil {
		t.Fatalf("expected error for non-number")
	}
	if _, err := AddDelta("1e400", 1); !errors.Is(err, errNotFinite) {
		t.Fatalf("expected errNotFinite, got %v", err)
	}
}
